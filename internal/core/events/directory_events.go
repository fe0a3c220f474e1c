package events

import (
	"fmt"
	"time"
)

const (
	EventUserInvited        = "user.invited"
	EventInvitationAccepted = "invitation.accepted"
	EventUserApproved       = "user.approved"
)

func NewUserInvitedEvent(userID int64, username, email string, invitedBy *int64) BaseEvent {
	data := map[string]interface{}{
		"user_id":  userID,
		"username": username,
		"email":    email,
	}
	if invitedBy != nil {
		data["invited_by"] = *invitedBy
	}
	return BaseEvent{
		ID:        fmt.Sprintf("%s-%d-%d", EventUserInvited, userID, time.Now().UnixNano()),
		Type:      EventUserInvited,
		Timestamp: time.Now(),
		Data:      data,
	}
}

func NewInvitationAcceptedEvent(userID int64, token string) BaseEvent {
	return BaseEvent{
		ID:        fmt.Sprintf("%s-%d-%d", EventInvitationAccepted, userID, time.Now().UnixNano()),
		Type:      EventInvitationAccepted,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"user_id": userID,
			"token":   token,
		},
	}
}

func NewUserApprovedEvent(userID int64, approvedBy int64) BaseEvent {
	return BaseEvent{
		ID:        fmt.Sprintf("%s-%d-%d", EventUserApproved, userID, time.Now().UnixNano()),
		Type:      EventUserApproved,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"user_id":     userID,
			"approved_by": approvedBy,
		},
	}
}
