package role

import (
	errors "github.com/frahmantamala/organization-management/internal"
	"github.com/frahmantamala/organization-management/internal/core/common/validation"
)

type CreateRoleDTO struct {
	Name           string `json:"name"`
	OrganizationID int64  `json:"-"`
}

func (d CreateRoleDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required()
	v.Field("organization_id", d.OrganizationID).Required()
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	if !RoleName(d.Name).Valid() {
		return errors.NewValidationError("role name must be one of super_admin, admin, basic_user", errors.ErrCodeInvalidRoleName)
	}
	return nil
}

type AttachPermissionsDTO struct {
	PermissionIDs []int64 `json:"permission_ids"`
}

func (d AttachPermissionsDTO) Validate() *errors.AppError {
	if len(d.PermissionIDs) == 0 {
		return errors.NewValidationError("permission_ids must not be empty", errors.ErrCodeValidationFailed)
	}
	return nil
}

type CreateDesignationDTO struct {
	Name           string `json:"name"`
	RoleID         int64  `json:"role_id"`
	OrganizationID int64  `json:"-"`
}

func (d CreateDesignationDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required().MaxLength(255)
	v.Field("role_id", d.RoleID).Required()
	v.Field("organization_id", d.OrganizationID).Required()
	return v.Validate()
}

type RolePermissionsResponse struct {
	RoleID      int64    `json:"role_id"`
	Permissions []string `json:"permissions"`
}
