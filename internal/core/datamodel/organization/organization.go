package organization

import "time"

type Organization struct {
	ID           int64     `gorm:"primaryKey"`
	Name         string    `gorm:"column:name;uniqueIndex;not null"`
	Industry     string    `gorm:"column:industry"`
	Address      string    `gorm:"column:address"`
	ContactEmail string    `gorm:"column:contact_email"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Organization) TableName() string {
	return "organizations"
}
