package permission

import "time"

// Permission is a catalog entry. ResourceType is empty for unscoped
// permissions; the (code, resource_type) pair is unique.
type Permission struct {
	ID           int64     `gorm:"primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	Code         string    `gorm:"column:code;not null;uniqueIndex:idx_permissions_code_resource"`
	ResourceType string    `gorm:"column:resource_type;not null;default:'';uniqueIndex:idx_permissions_code_resource"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Permission) TableName() string {
	return "permissions"
}
