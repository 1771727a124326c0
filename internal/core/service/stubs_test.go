package service

import (
	"context"

	"github.com/identityservice/identity-service/internal/core/domain"
)

// In-memory repository stubs shared by the service tests. They mirror the
// store contracts, including stale-version detection and duplicate
// rejection.

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Roles = append([]string(nil), u.Roles...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExisted
	}
	copy := cloneUser(user)
	copy.ID = user.Username
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	var users []domain.User
	for _, u := range r.users {
		users = append(users, *cloneUser(u))
	}
	return users, nil
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	stored, ok := r.users[user.Username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if stored.Version != user.Version {
		return nil, domain.ErrStaleVersion
	}
	copy := cloneUser(user)
	copy.Version++
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) Delete(_ context.Context, username string) error {
	if _, ok := r.users[username]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, username)
	return nil
}

type stubRoleRepo struct {
	roles map[string]*domain.Role
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{roles: make(map[string]*domain.Role)}
}

func cloneRole(r *domain.Role) *domain.Role {
	if r == nil {
		return nil
	}
	clone := *r
	clone.Permissions = append([]string(nil), r.Permissions...)
	return &clone
}

func (r *stubRoleRepo) Create(_ context.Context, role *domain.Role) (*domain.Role, error) {
	if _, exists := r.roles[role.Name]; exists {
		return nil, domain.ErrRoleExisted
	}
	r.roles[role.Name] = cloneRole(role)
	return cloneRole(role), nil
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	role, ok := r.roles[name]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	return cloneRole(role), nil
}

func (r *stubRoleRepo) FindAll(_ context.Context) ([]domain.Role, error) {
	var roles []domain.Role
	for _, role := range r.roles {
		roles = append(roles, *cloneRole(role))
	}
	return roles, nil
}

func (r *stubRoleRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	_, ok := r.roles[name]
	return ok, nil
}

func (r *stubRoleRepo) Update(_ context.Context, role *domain.Role) (*domain.Role, error) {
	if _, ok := r.roles[role.Name]; !ok {
		return nil, domain.ErrRoleNotFound
	}
	r.roles[role.Name] = cloneRole(role)
	return cloneRole(role), nil
}

func (r *stubRoleRepo) Delete(_ context.Context, name string) error {
	if _, ok := r.roles[name]; !ok {
		return domain.ErrRoleNotFound
	}
	delete(r.roles, name)
	return nil
}

type stubPermissionRepo struct {
	permissions map[string]*domain.Permission
	// roleRepo lets the stub mimic the store-owned cascade: deleting a
	// permission detaches it from every role.
	roleRepo *stubRoleRepo
}

func newStubPermissionRepo(roles *stubRoleRepo) *stubPermissionRepo {
	return &stubPermissionRepo{permissions: make(map[string]*domain.Permission), roleRepo: roles}
}

func (r *stubPermissionRepo) Create(_ context.Context, p *domain.Permission) (*domain.Permission, error) {
	if _, exists := r.permissions[p.Name]; exists {
		return nil, domain.ErrPermissionExisted
	}
	copy := *p
	r.permissions[p.Name] = &copy
	return &copy, nil
}

func (r *stubPermissionRepo) FindByName(_ context.Context, name string) (*domain.Permission, error) {
	p, ok := r.permissions[name]
	if !ok {
		return nil, domain.ErrPermissionNotFound
	}
	copy := *p
	return &copy, nil
}

func (r *stubPermissionRepo) FindAll(_ context.Context) ([]domain.Permission, error) {
	var permissions []domain.Permission
	for _, p := range r.permissions {
		permissions = append(permissions, *p)
	}
	return permissions, nil
}

func (r *stubPermissionRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	_, ok := r.permissions[name]
	return ok, nil
}

func (r *stubPermissionRepo) Update(_ context.Context, p *domain.Permission) (*domain.Permission, error) {
	if _, ok := r.permissions[p.Name]; !ok {
		return nil, domain.ErrPermissionNotFound
	}
	copy := *p
	r.permissions[p.Name] = &copy
	return &copy, nil
}

func (r *stubPermissionRepo) Delete(_ context.Context, name string) error {
	if _, ok := r.permissions[name]; !ok {
		return domain.ErrPermissionNotFound
	}
	delete(r.permissions, name)
	if r.roleRepo != nil {
		for _, role := range r.roleRepo.roles {
			kept := role.Permissions[:0]
			for _, p := range role.Permissions {
				if p != name {
					kept = append(kept, p)
				}
			}
			role.Permissions = kept
		}
	}
	return nil
}

type stubRoleCache struct {
	roles   []domain.Role
	cached  bool
	sets    int
	flushes int
}

func (c *stubRoleCache) Get(_ context.Context) ([]domain.Role, bool) {
	if !c.cached {
		return nil, false
	}
	return c.roles, true
}

func (c *stubRoleCache) Set(_ context.Context, roles []domain.Role) error {
	c.roles = roles
	c.cached = true
	c.sets++
	return nil
}

func (c *stubRoleCache) Invalidate(_ context.Context) error {
	c.roles = nil
	c.cached = false
	c.flushes++
	return nil
}
