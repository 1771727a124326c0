package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/identityservice/identity-service/internal/core/domain"
	"github.com/identityservice/identity-service/internal/core/ports"
)

// RoleService implements the role lifecycle. Reads go through a best-effort
// cache; every mutation invalidates it.
type RoleService struct {
	roles  ports.RoleRepository
	cache  ports.RoleCache
	logger zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, cache ports.RoleCache, logger zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, cache: cache, logger: logger}
}

func (s *RoleService) Create(ctx context.Context, input ports.CreateRoleInput) (*domain.Role, error) {
	exists, err := s.roles.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrRoleExisted
	}

	role := &domain.Role{
		Name:        input.Name,
		Description: input.Description,
		Permissions: input.Permissions,
	}

	created, err := s.roles.Create(ctx, role)
	if err != nil {
		s.logger.Error().Err(err).Str("role", input.Name).Msg("failed to create role")
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("role", created.Name).Msg("role created")
	return created, nil
}

func (s *RoleService) GetAll(ctx context.Context) ([]domain.Role, error) {
	if roles, ok := s.cache.Get(ctx); ok {
		return roles, nil
	}

	roles, err := s.roles.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, roles); err != nil {
		s.logger.Warn().Err(err).Msg("role cache set failed")
	}
	return roles, nil
}

func (s *RoleService) Update(ctx context.Context, name string, input ports.UpdateRoleInput) (*domain.Role, error) {
	role, err := s.roles.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		role.Description = *input.Description
	}
	if input.Permissions != nil {
		role.Permissions = *input.Permissions
	}

	updated, err := s.roles.Update(ctx, role)
	if err != nil {
		s.logger.Error().Err(err).Str("role", name).Msg("failed to update role")
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("role", name).Msg("role updated")
	return updated, nil
}

func (s *RoleService) Delete(ctx context.Context, name string) error {
	if err := s.roles.Delete(ctx, name); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.logger.Info().Str("role", name).Msg("role deleted")
	return nil
}

func (s *RoleService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("role cache invalidation failed")
	}
}
