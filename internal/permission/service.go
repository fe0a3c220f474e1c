package permission

import (
	"log/slog"

	errors "github.com/frahmantamala/organization-management/internal"
	permissionDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/permission"
)

type RepositoryAPI interface {
	Create(p *permissionDatamodel.Permission) error
	GetByCodeAndResource(code, resourceType string) (*permissionDatamodel.Permission, error)
	GetByCode(code string) (*permissionDatamodel.Permission, error)
	GetAll() ([]*permissionDatamodel.Permission, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create adds a catalog entry. The (code, resource_type) pair is unique;
// re-creating an existing pair is a conflict.
func (s *Service) Create(dto CreatePermissionDTO) (*Permission, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	existing, err := s.repo.GetByCodeAndResource(dto.Code, dto.ResourceType)
	if err != nil {
		s.logger.Error("failed to check permission code", "code", dto.Code, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("permission code already exists for this resource type", errors.ErrCodePermissionExists)
	}

	data := &permissionDatamodel.Permission{
		Name:         dto.Name,
		Code:         dto.Code,
		ResourceType: dto.ResourceType,
	}
	if err := s.repo.Create(data); err != nil {
		s.logger.Error("failed to create permission", "code", dto.Code, "error", err)
		return nil, err
	}

	s.logger.Info("permission created", "permission_id", data.ID, "code", data.Code)
	return FromDataModel(data), nil
}

// GetByCode is the read-only lookup the role and user modules use.
func (s *Service) GetByCode(code string) (*Permission, error) {
	data, err := s.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, errors.ErrPermissionNotFound
	}
	return FromDataModel(data), nil
}

func (s *Service) GetAll() ([]*Permission, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list permissions", "error", err)
		return nil, err
	}

	perms := make([]*Permission, 0, len(rows))
	for _, row := range rows {
		perms = append(perms, FromDataModel(row))
	}
	return perms, nil
}
