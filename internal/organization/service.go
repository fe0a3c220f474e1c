package organization

import (
	"log/slog"

	errors "github.com/frahmantamala/organization-management/internal"
	orgDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/organization"
)

type RepositoryAPI interface {
	Create(org *orgDatamodel.Organization) error
	GetByID(id int64) (*orgDatamodel.Organization, error)
	GetByName(name string) (*orgDatamodel.Organization, error)
	GetAll() ([]*orgDatamodel.Organization, error)
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

// Create registers a new tenant. Organization names are unique across the
// whole system, not per caller.
func (s *Service) Create(dto CreateOrganizationDTO) (*Organization, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	existing, err := s.repo.GetByName(dto.Name)
	if err != nil {
		s.logger.Error("failed to check organization name", "name", dto.Name, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewValidationError("organization name already exists", errors.ErrCodeOrganizationExists)
	}

	org := NewOrganization(dto.Name, dto.Industry, dto.Address, dto.ContactEmail)
	data := ToDataModel(org)
	if err := s.repo.Create(data); err != nil {
		s.logger.Error("failed to create organization", "name", dto.Name, "error", err)
		return nil, err
	}

	s.logger.Info("organization created", "organization_id", data.ID, "name", data.Name)
	return FromDataModel(data), nil
}

func (s *Service) GetByID(id int64) (*Organization, error) {
	data, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, errors.ErrOrganizationNotFound
	}
	return FromDataModel(data), nil
}

func (s *Service) GetAll() ([]*Organization, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list organizations", "error", err)
		return nil, err
	}

	orgs := make([]*Organization, 0, len(rows))
	for _, row := range rows {
		orgs = append(orgs, FromDataModel(row))
	}
	return orgs, nil
}
