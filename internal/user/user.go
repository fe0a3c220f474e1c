package user

import (
	"time"

	userDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/user"
)

// User is a directory account. A user belongs to at most one organization
// and carries the approval flags driven by the invitation workflow.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Mobile         *string   `json:"mobile,omitempty"`
	OrganizationID *int64    `json:"organization_id,omitempty"`
	IsActive       bool      `json:"is_active"`
	IsApproved     bool      `json:"is_approved"`
	IsInvited      bool      `json:"is_invited"`
	IsStaff        bool      `json:"is_staff"`
	Permissions    []string  `json:"permissions,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (u *User) HasPermission(permission string) bool {
	for _, p := range u.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// PendingApproval reports whether the user sits in the invited, not yet
// approved state the approval transition acts on.
func (u *User) PendingApproval() bool {
	return u.IsInvited && !u.IsApproved
}

func ToDataModel(u *User) *userDatamodel.User {
	return &userDatamodel.User{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		Mobile:         u.Mobile,
		OrganizationID: u.OrganizationID,
		IsActive:       u.IsActive,
		IsApproved:     u.IsApproved,
		IsInvited:      u.IsInvited,
		IsStaff:        u.IsStaff,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		Mobile:         u.Mobile,
		OrganizationID: u.OrganizationID,
		IsActive:       u.IsActive,
		IsApproved:     u.IsApproved,
		IsInvited:      u.IsInvited,
		IsStaff:        u.IsStaff,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

type UserRole struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	RoleID      int64     `json:"role_id"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
}
