package postgres

import (
	invitationDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/invitation"
	userDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/user"
	"github.com/frahmantamala/organization-management/internal/invitation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) invitation.RepositoryAPI {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(inv *invitationDatamodel.Invitation) error {
	return r.db.Create(inv).Error
}

func (r *InvitationRepository) GetByUserID(userID int64) (*invitationDatamodel.Invitation, error) {
	var inv invitationDatamodel.Invitation
	err := r.db.Where("user_id = ?", userID).First(&inv).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *InvitationRepository) SetAccepted(invitationID int64) error {
	return r.db.Model(&invitationDatamodel.Invitation{}).
		Where("id = ?", invitationID).
		Update("accepted", true).Error
}

func (r *InvitationRepository) GetAll() ([]*invitationDatamodel.Invitation, error) {
	var invs []*invitationDatamodel.Invitation
	err := r.db.Order("created_at DESC").Find(&invs).Error
	return invs, err
}

func (r *InvitationRepository) GetUserByID(userID int64) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.Where("id = ?", userID).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// ApproveUser re-reads the row under FOR UPDATE so concurrent approvals
// serialize; only the call that observes the pending state performs the
// transition.
func (r *InvitationRepository) ApproveUser(userID int64) (*userDatamodel.User, bool, error) {
	var u userDatamodel.User
	transitioned := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", userID).
			First(&u).Error; err != nil {
			return err
		}

		if !u.IsInvited || u.IsApproved {
			return nil
		}

		if err := tx.Model(&userDatamodel.User{}).
			Where("id = ?", userID).
			Updates(map[string]interface{}{
				"is_approved": true,
				"is_active":   true,
			}).Error; err != nil {
			return err
		}

		u.IsApproved = true
		u.IsActive = true
		transitioned = true
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &u, transitioned, nil
}
