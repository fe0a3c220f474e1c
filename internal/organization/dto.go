package organization

import (
	errors "github.com/frahmantamala/organization-management/internal"
	"github.com/frahmantamala/organization-management/internal/core/common/validation"
)

type CreateOrganizationDTO struct {
	Name         string `json:"name"`
	Industry     string `json:"industry"`
	Address      string `json:"address"`
	ContactEmail string `json:"contact_email"`
}

func (d CreateOrganizationDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required().MaxLength(255)
	v.Field("industry", d.Industry).Required().MaxLength(255)
	v.Field("address", d.Address).Required()
	v.Field("contact_email", d.ContactEmail).Required().Email()
	return v.Validate()
}

type OrganizationResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Industry     string `json:"industry"`
	ContactEmail string `json:"contact_email"`
}

type OrganizationsResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
}

func (o *Organization) ToResponse() OrganizationResponse {
	return OrganizationResponse{
		ID:           o.ID,
		Name:         o.Name,
		Industry:     o.Industry,
		ContactEmail: o.ContactEmail,
	}
}
