package ports

import (
	"context"

	"github.com/identityservice/identity-service/internal/core/domain"
)

// RoleCache is a best-effort read-through cache over the full role list.
// Get returns ok=false on miss or backend error; callers fall through to
// the repository.
type RoleCache interface {
	Get(ctx context.Context) (roles []domain.Role, ok bool)
	Set(ctx context.Context, roles []domain.Role) error
	Invalidate(ctx context.Context) error
}
