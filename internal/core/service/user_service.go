package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/identityservice/identity-service/internal/core/domain"
	"github.com/identityservice/identity-service/internal/core/ports"
)

// UserService implements the user lifecycle: create with default role,
// list, read, partial update, delete.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, logger: logger}
}

// Create hashes the password and persists the user. The default role is
// attached only when it already exists in the store. The existence check
// here is advisory; the unique index on username is the safety net against
// a concurrent create racing the same name.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	exists, err := s.users.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExisted
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var roles []string
	if ok, err := s.roles.ExistsByName(ctx, domain.RoleDefault); err == nil && ok {
		roles = append(roles, domain.RoleDefault)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Firstname:    input.Firstname,
		Lastname:     input.Lastname,
		Dob:          input.Dob,
		Roles:        roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("username", input.Username).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("user created")
	return created, nil
}

func (s *UserService) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

// Update applies a partial merge: only non-nil input fields replace stored
// values. The write is guarded by the version read here, so a concurrent
// update surfaces as domain.ErrStaleVersion rather than silently losing
// fields.
func (s *UserService) Update(ctx context.Context, username string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if input.Firstname != nil {
		user.Firstname = *input.Firstname
	}
	if input.Lastname != nil {
		user.Lastname = *input.Lastname
	}
	if input.Dob != nil {
		user.Dob = *input.Dob
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to update user")
		return nil, err
	}

	s.logger.Info().Str("username", username).Int("version", updated.Version).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, username string) error {
	if err := s.users.Delete(ctx, username); err != nil {
		return err
	}
	s.logger.Info().Str("username", username).Msg("user deleted")
	return nil
}
