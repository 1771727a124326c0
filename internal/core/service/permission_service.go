package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/identityservice/identity-service/internal/core/domain"
	"github.com/identityservice/identity-service/internal/core/ports"
)

// PermissionService implements the permission lifecycle. Deleting a
// permission detaches it from every role; the repository owns that
// cascade.
type PermissionService struct {
	permissions ports.PermissionRepository
	logger      zerolog.Logger
}

func NewPermissionService(permissions ports.PermissionRepository, logger zerolog.Logger) *PermissionService {
	return &PermissionService{permissions: permissions, logger: logger}
}

func (s *PermissionService) Create(ctx context.Context, input ports.CreatePermissionInput) (*domain.Permission, error) {
	exists, err := s.permissions.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrPermissionExisted
	}

	created, err := s.permissions.Create(ctx, &domain.Permission{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("permission", input.Name).Msg("failed to create permission")
		return nil, err
	}

	s.logger.Info().Str("permission", created.Name).Msg("permission created")
	return created, nil
}

func (s *PermissionService) GetAll(ctx context.Context) ([]domain.Permission, error) {
	return s.permissions.FindAll(ctx)
}

func (s *PermissionService) Update(ctx context.Context, name string, input ports.UpdatePermissionInput) (*domain.Permission, error) {
	permission, err := s.permissions.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		permission.Description = *input.Description
	}

	updated, err := s.permissions.Update(ctx, permission)
	if err != nil {
		s.logger.Error().Err(err).Str("permission", name).Msg("failed to update permission")
		return nil, err
	}

	s.logger.Info().Str("permission", name).Msg("permission updated")
	return updated, nil
}

func (s *PermissionService) Delete(ctx context.Context, name string) error {
	if err := s.permissions.Delete(ctx, name); err != nil {
		return err
	}
	s.logger.Info().Str("permission", name).Msg("permission deleted")
	return nil
}
