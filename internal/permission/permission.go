package permission

import (
	"time"

	permissionDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/permission"
)

// Permission is a named, coded capability, optionally scoped to a resource
// type. Other components reference catalog entries by code.
type Permission struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	ResourceType string    `json:"resource_type,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToDataModel(p *Permission) *permissionDatamodel.Permission {
	return &permissionDatamodel.Permission{
		ID:           p.ID,
		Name:         p.Name,
		Code:         p.Code,
		ResourceType: p.ResourceType,
		CreatedAt:    p.CreatedAt,
	}
}

func FromDataModel(p *permissionDatamodel.Permission) *Permission {
	return &Permission{
		ID:           p.ID,
		Name:         p.Name,
		Code:         p.Code,
		ResourceType: p.ResourceType,
		CreatedAt:    p.CreatedAt,
	}
}
