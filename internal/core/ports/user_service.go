package ports

import (
	"context"
	"time"

	"github.com/identityservice/identity-service/internal/core/domain"
)

// CreateUserInput carries the fields accepted on user creation. The
// password arrives in plaintext and is hashed by the service before it
// reaches any repository.
type CreateUserInput struct {
	Username  string
	Password  string
	Firstname string
	Lastname  string
	Dob       time.Time
}

// UpdateUserInput is a partial update: nil fields leave the stored value
// untouched.
type UpdateUserInput struct {
	Firstname *string
	Lastname  *string
	Dob       *time.Time
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, username string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, username string) error
}
