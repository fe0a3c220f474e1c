package invitation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	errors "github.com/frahmantamala/organization-management/internal"
	invitationDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/invitation"
	userDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/user"
	"github.com/frahmantamala/organization-management/internal/core/events"
	"github.com/frahmantamala/organization-management/internal/user"
)

type RepositoryAPI interface {
	Create(inv *invitationDatamodel.Invitation) error
	GetByUserID(userID int64) (*invitationDatamodel.Invitation, error)
	SetAccepted(invitationID int64) error
	GetAll() ([]*invitationDatamodel.Invitation, error)

	GetUserByID(userID int64) (*userDatamodel.User, error)
	// ApproveUser flips is_approved and is_active inside one transaction
	// holding a row lock, and reports whether this call made the transition.
	ApproveUser(userID int64) (*userDatamodel.User, bool, error)
}

// DirectoryAPI is the slice of the user directory the workflow needs.
type DirectoryAPI interface {
	RegisterInvited(dto user.RegisterDTO) (*user.User, error)
}

type Service struct {
	repo      RepositoryAPI
	directory DirectoryAPI
	bus       *events.EventBus
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, directory DirectoryAPI, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		directory: directory,
		bus:       bus,
		logger:    logger,
	}
}

// Invite creates the inactive account and its invitation. Duplicate
// username/email surfaces as a validation error from the directory; a
// second invitation for the same user is a conflict.
func (s *Service) Invite(dto user.RegisterDTO, inviterID int64) (*Invitation, error) {
	invited, err := s.directory.RegisterInvited(dto)
	if err != nil {
		return nil, err
	}

	data := &invitationDatamodel.Invitation{
		UserID:    invited.ID,
		Token:     uuid.NewString(),
		InvitedBy: &inviterID,
	}
	if err := s.repo.Create(data); err != nil {
		if isDuplicateKey(err) {
			return nil, errors.NewConflictError("invitation already exists for this user", errors.ErrCodeInvitationExists)
		}
		s.logger.Error("failed to create invitation", "user_id", invited.ID, "error", err)
		return nil, err
	}

	s.publish(events.NewUserInvitedEvent(invited.ID, invited.Username, invited.Email, data.InvitedBy))
	s.logger.Info("user invited", "user_id", invited.ID, "username", invited.Username, "invited_by", inviterID)
	return FromDataModel(data), nil
}

// Accept marks the caller's invitation as accepted. Accepting twice is
// reported, not treated as a failure.
func (s *Service) Accept(currentUserID int64) (*AcceptResult, error) {
	inv, err := s.repo.GetByUserID(currentUserID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, errors.ErrInvitationNotFound
	}

	if inv.Accepted {
		return &AcceptResult{AlreadyAccepted: true, Message: "Already accepted."}, nil
	}

	if err := s.repo.SetAccepted(inv.ID); err != nil {
		s.logger.Error("failed to accept invitation", "invitation_id", inv.ID, "error", err)
		return nil, err
	}

	s.publish(events.NewInvitationAcceptedEvent(currentUserID, inv.Token))
	s.logger.Info("invitation accepted", "user_id", currentUserID, "invitation_id", inv.ID)
	return &AcceptResult{Message: "Invitation accepted. Awaiting admin approval."}, nil
}

// Approve activates an invited user. The staff gate runs before this is
// reached. Approval does not require the invitation to have been accepted;
// that matches the historical behavior and is asserted in tests. Racing
// approvers are serialized by the repository's row lock; the loser gets
// the no-op result.
func (s *Service) Approve(userID, approverID int64) (*ApproveResult, error) {
	existing, err := s.repo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.ErrUserNotFound
	}

	approved, transitioned, err := s.repo.ApproveUser(userID)
	if err != nil {
		s.logger.Error("failed to approve user", "user_id", userID, "error", err)
		return nil, err
	}
	if !transitioned {
		return &ApproveResult{Approved: false, Message: "Invalid action or already approved."}, nil
	}

	s.publish(events.NewUserApprovedEvent(userID, approverID))
	s.logger.Info("user approved", "user_id", userID, "approved_by", approverID)
	return &ApproveResult{Approved: true, Message: fmt.Sprintf("User %s approved.", approved.Username)}, nil
}

func (s *Service) GetAll() ([]*Invitation, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list invitations", "error", err)
		return nil, err
	}

	invs := make([]*Invitation, 0, len(rows))
	for _, row := range rows {
		invs = append(invs, FromDataModel(row))
	}
	return invs, nil
}

// isDuplicateKey matches the unique-violation wording of postgres
// ("duplicate key value violates unique constraint") and sqlite
// ("UNIQUE constraint failed").
func isDuplicateKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

func (s *Service) publish(event events.BaseEvent) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(context.Background(), event); err != nil {
		s.logger.Warn("event publish failed", "event_type", event.EventType(), "error", err)
	}
}
