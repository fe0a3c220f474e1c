package invitation

import (
	"time"

	invitationDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/invitation"
)

// Invitation tracks the invite -> accept -> approve lifecycle of a user.
// The token is issued once at invite time and never changes.
type Invitation struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Token     string    `json:"token"`
	Accepted  bool      `json:"accepted"`
	InvitedBy *int64    `json:"invited_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromDataModel(inv *invitationDatamodel.Invitation) *Invitation {
	return &Invitation{
		ID:        inv.ID,
		UserID:    inv.UserID,
		Token:     inv.Token,
		Accepted:  inv.Accepted,
		InvitedBy: inv.InvitedBy,
		CreatedAt: inv.CreatedAt,
	}
}

// AcceptResult reports the outcome of an accept call. An already-accepted
// invitation is an informational outcome, not an error.
type AcceptResult struct {
	AlreadyAccepted bool   `json:"already_accepted"`
	Message         string `json:"message"`
}

// ApproveResult reports the outcome of an approval. Approved=false with a
// message means the user was not in an approvable state; the call is a no-op.
type ApproveResult struct {
	Approved bool   `json:"approved"`
	Message  string `json:"message"`
}
