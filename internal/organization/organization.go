package organization

import (
	"time"

	orgDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/organization"
)

// Organization is a tenant boundary: it owns its roles and designations,
// and users may belong to at most one of them.
type Organization struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Industry     string    `json:"industry"`
	Address      string    `json:"address"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewOrganization(name, industry, address, contactEmail string) *Organization {
	return &Organization{
		Name:         name,
		Industry:     industry,
		Address:      address,
		ContactEmail: contactEmail,
		CreatedAt:    time.Now(),
	}
}

func ToDataModel(o *Organization) *orgDatamodel.Organization {
	return &orgDatamodel.Organization{
		ID:           o.ID,
		Name:         o.Name,
		Industry:     o.Industry,
		Address:      o.Address,
		ContactEmail: o.ContactEmail,
		CreatedAt:    o.CreatedAt,
	}
}

func FromDataModel(o *orgDatamodel.Organization) *Organization {
	return &Organization{
		ID:           o.ID,
		Name:         o.Name,
		Industry:     o.Industry,
		Address:      o.Address,
		ContactEmail: o.ContactEmail,
		CreatedAt:    o.CreatedAt,
	}
}
