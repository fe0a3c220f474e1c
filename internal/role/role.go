package role

import (
	"time"

	roleDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/role"
)

// RoleName is a closed enumeration; roles are always one of these three,
// scoped to a single organization.
type RoleName string

const (
	RoleSuperAdmin RoleName = "super_admin"
	RoleAdmin      RoleName = "admin"
	RoleBasicUser  RoleName = "basic_user"
)

func (n RoleName) Valid() bool {
	switch n {
	case RoleSuperAdmin, RoleAdmin, RoleBasicUser:
		return true
	}
	return false
}

// DefaultPermissionCodes returns the permission codes granted to a fresh
// role assignment. all=true means the entire catalog (super_admin). The
// literal rule set is business policy; matching is by stable code.
func DefaultPermissionCodes(name RoleName) (codes []string, all bool) {
	switch name {
	case RoleSuperAdmin:
		return nil, true
	case RoleAdmin:
		return []string{"view_reports", "create_tasks"}, false
	case RoleBasicUser:
		return []string{"view_reports"}, false
	}
	return nil, false
}

type Role struct {
	ID             int64     `json:"id"`
	Name           RoleName  `json:"name"`
	OrganizationID int64     `json:"organization_id"`
	Permissions    []string  `json:"permissions"`
	CreatedAt      time.Time `json:"created_at"`
}

type Designation struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	OrganizationID int64     `json:"organization_id"`
	RoleID         int64     `json:"role_id"`
	Permissions    []string  `json:"permissions"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromDataModel(r *roleDatamodel.Role) *Role {
	codes := make([]string, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		codes = append(codes, p.Code)
	}
	return &Role{
		ID:             r.ID,
		Name:           RoleName(r.Name),
		OrganizationID: r.OrganizationID,
		Permissions:    codes,
		CreatedAt:      r.CreatedAt,
	}
}

func DesignationFromDataModel(d *roleDatamodel.Designation) *Designation {
	codes := make([]string, 0, len(d.Permissions))
	for _, p := range d.Permissions {
		codes = append(codes, p.Code)
	}
	return &Designation{
		ID:             d.ID,
		Name:           d.Name,
		OrganizationID: d.OrganizationID,
		RoleID:         d.RoleID,
		Permissions:    codes,
		CreatedAt:      d.CreatedAt,
	}
}
