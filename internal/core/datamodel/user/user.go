package user

import "time"

type User struct {
	ID             int64     `gorm:"primaryKey"`
	Username       string    `gorm:"column:username;uniqueIndex;not null"`
	Email          string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash   string    `gorm:"column:password_hash;not null"`
	Mobile         *string   `gorm:"column:mobile"`
	OrganizationID *int64    `gorm:"column:organization_id;index"`
	// no gorm default: with one, gorm drops an explicit false from the
	// INSERT and the column default writes invited users as active
	IsActive       bool      `gorm:"column:is_active"`
	IsApproved     bool      `gorm:"column:is_approved;default:false"`
	IsInvited      bool      `gorm:"column:is_invited;default:false"`
	IsStaff        bool      `gorm:"column:is_staff;default:false"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
