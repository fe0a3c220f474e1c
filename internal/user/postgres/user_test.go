package postgres_test

import (
	"testing"

	permissionDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/permission"
	roleDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/role"
	userDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/user"
	"github.com/frahmantamala/organization-management/internal/user"
	userPostgres "github.com/frahmantamala/organization-management/internal/user/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestUserPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Postgres Suite")
}

var _ = Describe("User Repository", func() {
	var (
		db   *gorm.DB
		repo user.RepositoryAPI
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

	createPermission := func(code string) *permissionDatamodel.Permission {
		p := &permissionDatamodel.Permission{Name: code, Code: code}
		Expect(db.Create(p).Error).To(Succeed())
		return p
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(
			&userDatamodel.User{},
			&permissionDatamodel.Permission{},
			&roleDatamodel.Role{},
			&roleDatamodel.UserRole{},
		)
		Expect(err).NotTo(HaveOccurred())

		repo = userPostgres.NewUserRepository(db)
	})

	Describe("Create", func() {
		It("should persist a user with default flags", func() {
			u := &userDatamodel.User{
				Username:     "alice",
				Email:        "alice@example.com",
				PasswordHash: "hash",
				IsActive:     true,
			}
			Expect(repo.Create(u)).To(Succeed())
			Expect(u.ID).To(BeNumerically(">", 0))
		})

		It("should persist an invited user as inactive", func() {
			u := &userDatamodel.User{
				Username:     "bob",
				Email:        "bob@example.com",
				PasswordHash: "hash",
				IsActive:     false,
				IsInvited:    true,
			}
			Expect(repo.Create(u)).To(Succeed())

			stored, err := repo.GetByUsername("bob")
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.IsActive).To(BeFalse())
			Expect(stored.IsInvited).To(BeTrue())
			Expect(stored.IsApproved).To(BeFalse())
		})

		It("should reject a duplicate username", func() {
			createUser("alice")

			err := repo.Create(&userDatamodel.User{
				Username:     "alice",
				Email:        "other@example.com",
				PasswordHash: "hash",
			})
			Expect(err).To(HaveOccurred())
		})

		It("should reject a duplicate email", func() {
			createUser("alice")

			err := repo.Create(&userDatamodel.User{
				Username:     "alice2",
				Email:        "alice@example.com",
				PasswordHash: "hash",
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("lookups", func() {
		It("should find users by username and email, nil otherwise", func() {
			createUser("alice")

			byName, err := repo.GetByUsername("alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(byName).NotTo(BeNil())

			byEmail, err := repo.GetByEmail("alice@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(byEmail).NotTo(BeNil())

			missing, err := repo.GetByUsername("nobody")
			Expect(err).NotTo(HaveOccurred())
			Expect(missing).To(BeNil())
		})
	})

	Describe("CreateUserRole", func() {
		It("should persist the snapshot permission set with the join row", func() {
			u := createUser("alice")
			view := createPermission("view_reports")
			tasks := createPermission("create_tasks")

			role := &roleDatamodel.Role{Name: "admin", OrganizationID: 1}
			Expect(db.Create(role).Error).To(Succeed())

			ur := &roleDatamodel.UserRole{
				UserID:      u.ID,
				RoleID:      role.ID,
				Permissions: []permissionDatamodel.Permission{*view, *tasks},
			}
			Expect(repo.CreateUserRole(ur)).To(Succeed())

			stored, err := repo.GetUserRole(u.ID, role.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).NotTo(BeNil())
			Expect(stored.Permissions).To(HaveLen(2))
		})

		It("should reject a second join row for the same user and role", func() {
			u := createUser("alice")
			role := &roleDatamodel.Role{Name: "admin", OrganizationID: 1}
			Expect(db.Create(role).Error).To(Succeed())

			Expect(repo.CreateUserRole(&roleDatamodel.UserRole{UserID: u.ID, RoleID: role.ID})).To(Succeed())

			err := repo.CreateUserRole(&roleDatamodel.UserRole{UserID: u.ID, RoleID: role.ID})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetPermissionCodesForUser", func() {
		It("should return the deduplicated union across role assignments", func() {
			u := createUser("alice")
			view := createPermission("view_reports")
			tasks := createPermission("create_tasks")

			adminRole := &roleDatamodel.Role{Name: "admin", OrganizationID: 1}
			basicRole := &roleDatamodel.Role{Name: "basic_user", OrganizationID: 1}
			Expect(db.Create(adminRole).Error).To(Succeed())
			Expect(db.Create(basicRole).Error).To(Succeed())

			Expect(repo.CreateUserRole(&roleDatamodel.UserRole{
				UserID:      u.ID,
				RoleID:      adminRole.ID,
				Permissions: []permissionDatamodel.Permission{*view, *tasks},
			})).To(Succeed())
			Expect(repo.CreateUserRole(&roleDatamodel.UserRole{
				UserID:      u.ID,
				RoleID:      basicRole.ID,
				Permissions: []permissionDatamodel.Permission{*view},
			})).To(Succeed())

			codes, err := repo.GetPermissionCodesForUser(u.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(codes).To(Equal([]string{"create_tasks", "view_reports"}))
		})

		It("should return nothing for a user without roles", func() {
			u := createUser("alice")

			codes, err := repo.GetPermissionCodesForUser(u.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(codes).To(BeEmpty())
		})
	})
})
