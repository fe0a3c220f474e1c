package invitation

import "time"

// Invitation tracks the invite lifecycle of a user. The token is issued
// once and immutable; there is exactly one invitation per invited user.
type Invitation struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex;not null"`
	Token     string    `gorm:"column:token;uniqueIndex;not null"`
	Accepted  bool      `gorm:"column:accepted;default:false"`
	InvitedBy *int64    `gorm:"column:invited_by"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Invitation) TableName() string {
	return "invitations"
}
