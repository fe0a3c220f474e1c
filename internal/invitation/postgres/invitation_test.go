package postgres_test

import (
	"testing"

	invitationDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/invitation"
	userDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/user"
	"github.com/frahmantamala/organization-management/internal/invitation"
	invitationPostgres "github.com/frahmantamala/organization-management/internal/invitation/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestInvitationPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Invitation Postgres Suite")
}

var _ = Describe("Invitation Repository", func() {
	var (
		db   *gorm.DB
		repo invitation.RepositoryAPI
	)

	createUser := func(username string) *userDatamodel.User {
		u := &userDatamodel.User{
			Username:     username,
			Email:        username + "@example.com",
			PasswordHash: "hash",
		}
		Expect(db.Create(u).Error).To(Succeed())
		return u
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&userDatamodel.User{}, &invitationDatamodel.Invitation{})
		Expect(err).NotTo(HaveOccurred())

		repo = invitationPostgres.NewInvitationRepository(db)
	})

	Describe("Create", func() {
		It("should persist an invitation with its token", func() {
			u := createUser("bob")

			inv := &invitationDatamodel.Invitation{UserID: u.ID, Token: "token-1"}
			Expect(repo.Create(inv)).To(Succeed())
			Expect(inv.ID).To(BeNumerically(">", 0))
			Expect(inv.CreatedAt).NotTo(BeZero())
		})

		It("should reject a second invitation for the same user", func() {
			u := createUser("bob")

			Expect(repo.Create(&invitationDatamodel.Invitation{UserID: u.ID, Token: "token-1"})).To(Succeed())

			err := repo.Create(&invitationDatamodel.Invitation{UserID: u.ID, Token: "token-2"})
			Expect(err).To(HaveOccurred())
		})

		It("should reject a duplicate token", func() {
			first := createUser("bob")
			second := createUser("carol")

			Expect(repo.Create(&invitationDatamodel.Invitation{UserID: first.ID, Token: "token-1"})).To(Succeed())

			err := repo.Create(&invitationDatamodel.Invitation{UserID: second.ID, Token: "token-1"})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetByUserID", func() {
		It("should return nil when the user has no invitation", func() {
			inv, err := repo.GetByUserID(42)
			Expect(err).NotTo(HaveOccurred())
			Expect(inv).To(BeNil())
		})
	})

	Describe("SetAccepted", func() {
		It("should flip the accepted flag", func() {
			u := createUser("bob")
			inv := &invitationDatamodel.Invitation{UserID: u.ID, Token: "token-1"}
			Expect(repo.Create(inv)).To(Succeed())

			Expect(repo.SetAccepted(inv.ID)).To(Succeed())

			stored, err := repo.GetByUserID(u.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Accepted).To(BeTrue())
		})
	})

	Describe("GetUserByID", func() {
		It("should return nil for an unknown user", func() {
			u, err := repo.GetUserByID(42)
			Expect(err).NotTo(HaveOccurred())
			Expect(u).To(BeNil())
		})

		It("should read back an invited user as inactive", func() {
			invited := &userDatamodel.User{
				Username:     "dave",
				Email:        "dave@example.com",
				PasswordHash: "hash",
				IsActive:     false,
				IsInvited:    true,
			}
			Expect(db.Create(invited).Error).To(Succeed())

			u, err := repo.GetUserByID(invited.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(u.IsActive).To(BeFalse())
			Expect(u.IsInvited).To(BeTrue())
		})

		It("should load an existing user", func() {
			created := createUser("bob")

			u, err := repo.GetUserByID(created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(u.Username).To(Equal("bob"))
		})
	})
})
