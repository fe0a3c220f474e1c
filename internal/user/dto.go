package user

import (
	errors "github.com/frahmantamala/organization-management/internal"
	"github.com/frahmantamala/organization-management/internal/core/common/validation"
)

type RegisterDTO struct {
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	Mobile         *string `json:"mobile,omitempty"`
	OrganizationID *int64  `json:"organization_id,omitempty"`
}

func (d RegisterDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("username", d.Username).Required().MaxLength(150)
	v.Field("email", d.Email).Required().Email()
	v.Field("password", d.Password).Required().MinLength(8)
	if d.Mobile != nil {
		v.Field("mobile", *d.Mobile).MaxLength(15)
	}
	return v.Validate()
}

type AssignRoleDTO struct {
	RoleID int64 `json:"role_id"`
}

func (d AssignRoleDTO) Validate() *errors.AppError {
	if d.RoleID == 0 {
		return errors.NewValidationError("role_id is required", errors.ErrCodeValidationFailed)
	}
	return nil
}

type PermissionsResponse struct {
	UserID      int64    `json:"user_id"`
	Permissions []string `json:"permissions"`
}
