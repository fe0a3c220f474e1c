package role

import (
	"log/slog"

	errors "github.com/frahmantamala/organization-management/internal"
	orgDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/organization"
	roleDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/role"
)

type RepositoryAPI interface {
	CreateRole(role *roleDatamodel.Role) error
	GetRoleByID(id int64) (*roleDatamodel.Role, error)
	GetRolesByOrganization(orgID int64) ([]*roleDatamodel.Role, error)
	AttachRolePermissions(roleID int64, permissionIDs []int64) error
	GetOrganizationByID(id int64) (*orgDatamodel.Organization, error)

	CreateDesignation(d *roleDatamodel.Designation) error
	GetDesignationByID(id int64) (*roleDatamodel.Designation, error)
	AttachDesignationPermissions(designationID int64, permissionIDs []int64) error
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

func (s *Service) CreateRole(dto CreateRoleDTO) (*Role, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	org, err := s.repo.GetOrganizationByID(dto.OrganizationID)
	if err != nil {
		s.logger.Error("failed to load organization", "organization_id", dto.OrganizationID, "error", err)
		return nil, err
	}
	if org == nil {
		return nil, errors.ErrOrganizationNotFound
	}

	data := &roleDatamodel.Role{
		Name:           dto.Name,
		OrganizationID: dto.OrganizationID,
	}
	if err := s.repo.CreateRole(data); err != nil {
		s.logger.Error("failed to create role", "name", dto.Name, "organization_id", dto.OrganizationID, "error", err)
		return nil, err
	}

	s.logger.Info("role created", "role_id", data.ID, "name", data.Name, "organization_id", data.OrganizationID)
	return FromDataModel(data), nil
}

// AttachPermissions adds permissions to a role's set. The operation is an
// idempotent union: already-attached permissions are ignored.
func (s *Service) AttachPermissions(roleID int64, dto AttachPermissionsDTO) (*Role, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	existing, err := s.repo.GetRoleByID(roleID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.ErrRoleNotFound
	}

	if err := s.repo.AttachRolePermissions(roleID, dto.PermissionIDs); err != nil {
		s.logger.Error("failed to attach role permissions", "role_id", roleID, "error", err)
		return nil, err
	}

	updated, err := s.repo.GetRoleByID(roleID)
	if err != nil {
		return nil, err
	}
	return FromDataModel(updated), nil
}

// Permissions returns exactly the role's attached set; there is no
// inheritance between roles.
func (s *Service) Permissions(roleID int64) ([]string, error) {
	data, err := s.repo.GetRoleByID(roleID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, errors.ErrRoleNotFound
	}
	return FromDataModel(data).Permissions, nil
}

func (s *Service) RolesForOrganization(orgID int64) ([]*Role, error) {
	rows, err := s.repo.GetRolesByOrganization(orgID)
	if err != nil {
		s.logger.Error("failed to list roles", "organization_id", orgID, "error", err)
		return nil, err
	}

	roles := make([]*Role, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, FromDataModel(row))
	}
	return roles, nil
}

// CreateDesignation ties a named position to a role inside one
// organization. The role must belong to the same organization; the
// storage layer stays permissive, so the check lives here.
func (s *Service) CreateDesignation(dto CreateDesignationDTO) (*Designation, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	roleData, err := s.repo.GetRoleByID(dto.RoleID)
	if err != nil {
		return nil, err
	}
	if roleData == nil {
		return nil, errors.ErrRoleNotFound
	}
	if roleData.OrganizationID != dto.OrganizationID {
		return nil, errors.NewValidationError("role belongs to a different organization", errors.ErrCodeRoleOrganizationMismatch)
	}

	data := &roleDatamodel.Designation{
		Name:           dto.Name,
		OrganizationID: dto.OrganizationID,
		RoleID:         dto.RoleID,
	}
	if err := s.repo.CreateDesignation(data); err != nil {
		s.logger.Error("failed to create designation", "name", dto.Name, "error", err)
		return nil, err
	}

	s.logger.Info("designation created", "designation_id", data.ID, "name", data.Name, "role_id", data.RoleID)
	return DesignationFromDataModel(data), nil
}

// AttachDesignationPermissions adds extra permissions to a designation.
// The set is independent of the role's own; no read path unions them.
func (s *Service) AttachDesignationPermissions(designationID int64, dto AttachPermissionsDTO) (*Designation, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	existing, err := s.repo.GetDesignationByID(designationID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("Designation not found", errors.ErrCodeDesignationNotFound)
	}

	if err := s.repo.AttachDesignationPermissions(designationID, dto.PermissionIDs); err != nil {
		s.logger.Error("failed to attach designation permissions", "designation_id", designationID, "error", err)
		return nil, err
	}

	updated, err := s.repo.GetDesignationByID(designationID)
	if err != nil {
		return nil, err
	}
	return DesignationFromDataModel(updated), nil
}
