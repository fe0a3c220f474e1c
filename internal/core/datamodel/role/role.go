package role

import (
	"time"

	permissionDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/permission"
)

type Role struct {
	ID             int64                             `gorm:"primaryKey"`
	Name           string                            `gorm:"column:name;not null;index:idx_roles_org_name"`
	OrganizationID int64                             `gorm:"column:organization_id;not null;index:idx_roles_org_name"`
	Permissions    []permissionDatamodel.Permission  `gorm:"many2many:role_permissions"`
	CreatedAt      time.Time                         `gorm:"column:created_at;autoCreateTime"`
}

func (Role) TableName() string {
	return "roles"
}

// UserRole joins a user to a role. Its permission set is materialized at
// assignment time and never re-evaluated against the catalog.
type UserRole struct {
	ID          int64                            `gorm:"primaryKey"`
	UserID      int64                            `gorm:"column:user_id;not null;uniqueIndex:idx_user_roles_user_role"`
	RoleID      int64                            `gorm:"column:role_id;not null;uniqueIndex:idx_user_roles_user_role"`
	Permissions []permissionDatamodel.Permission `gorm:"many2many:user_role_permissions"`
	CreatedAt   time.Time                        `gorm:"column:created_at;autoCreateTime"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

type Designation struct {
	ID             int64                            `gorm:"primaryKey"`
	Name           string                           `gorm:"column:name;not null"`
	OrganizationID int64                            `gorm:"column:organization_id;not null;index"`
	RoleID         int64                            `gorm:"column:role_id;not null;index"`
	Permissions    []permissionDatamodel.Permission `gorm:"many2many:designation_permissions"`
	CreatedAt      time.Time                        `gorm:"column:created_at;autoCreateTime"`
}

func (Designation) TableName() string {
	return "designations"
}
