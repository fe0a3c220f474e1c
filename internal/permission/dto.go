package permission

import (
	errors "github.com/frahmantamala/organization-management/internal"
	"github.com/frahmantamala/organization-management/internal/core/common/validation"
)

type CreatePermissionDTO struct {
	Name         string `json:"name"`
	Code         string `json:"code"`
	ResourceType string `json:"resource_type,omitempty"`
}

func (d CreatePermissionDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required().MaxLength(255)
	v.Field("code", d.Code).Required().MaxLength(100)
	v.Field("resource_type", d.ResourceType).MaxLength(100)
	return v.Validate()
}

type PermissionsResponse struct {
	Permissions []*Permission `json:"permissions"`
}
