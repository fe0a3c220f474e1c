package invitation

type InvitationResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Token     string `json:"token"`
	Accepted  bool   `json:"accepted"`
	InvitedBy *int64 `json:"invited_by,omitempty"`
}

type InvitationsResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
	Total       int                  `json:"total"`
}

func ToResponse(inv *Invitation) InvitationResponse {
	return InvitationResponse{
		ID:        inv.ID,
		UserID:    inv.UserID,
		Token:     inv.Token,
		Accepted:  inv.Accepted,
		InvitedBy: inv.InvitedBy,
	}
}
