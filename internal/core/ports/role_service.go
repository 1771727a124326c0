package ports

import (
	"context"

	"github.com/identityservice/identity-service/internal/core/domain"
)

type CreateRoleInput struct {
	Name        string
	Description string
	Permissions []string
}

// UpdateRoleInput is a partial update keyed by role name.
type UpdateRoleInput struct {
	Description *string
	Permissions *[]string
}

type RoleService interface {
	Create(ctx context.Context, input CreateRoleInput) (*domain.Role, error)
	GetAll(ctx context.Context) ([]domain.Role, error)
	Update(ctx context.Context, name string, input UpdateRoleInput) (*domain.Role, error)
	Delete(ctx context.Context, name string) error
}

type CreatePermissionInput struct {
	Name        string
	Description string
}

type UpdatePermissionInput struct {
	Description *string
}

type PermissionService interface {
	Create(ctx context.Context, input CreatePermissionInput) (*domain.Permission, error)
	GetAll(ctx context.Context) ([]domain.Permission, error)
	Update(ctx context.Context, name string, input UpdatePermissionInput) (*domain.Permission, error)
	Delete(ctx context.Context, name string) error
}
