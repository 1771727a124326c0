package ports

import (
	"context"

	"github.com/identityservice/identity-service/internal/core/domain"
)

// RoleRepository defines the persistence contract for roles.
// Delete detaches the role from every user holding it; cascading is the
// store's responsibility, not the service's.
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	FindAll(ctx context.Context) ([]domain.Role, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Delete(ctx context.Context, name string) error
}

// PermissionRepository defines the persistence contract for permissions.
// Delete detaches the permission from every role granting it.
type PermissionRepository interface {
	Create(ctx context.Context, permission *domain.Permission) (*domain.Permission, error)
	FindByName(ctx context.Context, name string) (*domain.Permission, error)
	FindAll(ctx context.Context) ([]domain.Permission, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, permission *domain.Permission) (*domain.Permission, error)
	Delete(ctx context.Context, name string) error
}
