package postgres_test

import (
	"testing"

	orgDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/organization"
	"github.com/frahmantamala/organization-management/internal/organization"
	orgPostgres "github.com/frahmantamala/organization-management/internal/organization/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestOrganizationPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Organization Postgres Suite")
}

var _ = Describe("Organization Repository", func() {
	var (
		db   *gorm.DB
		repo organization.RepositoryAPI
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&orgDatamodel.Organization{})
		Expect(err).NotTo(HaveOccurred())

		repo = orgPostgres.NewOrganizationRepository(db)
	})

	Describe("Create", func() {
		It("should create a new organization", func() {
			org := &orgDatamodel.Organization{
				Name:         "Globex",
				Industry:     "manufacturing",
				Address:      "10 Factory Rd",
				ContactEmail: "info@globex.test",
			}

			err := repo.Create(org)
			Expect(err).NotTo(HaveOccurred())
			Expect(org.ID).To(BeNumerically(">", 0))
			Expect(org.CreatedAt).NotTo(BeZero())
		})

		It("should fail on a duplicate name", func() {
			err := repo.Create(&orgDatamodel.Organization{Name: "Globex"})
			Expect(err).NotTo(HaveOccurred())

			err = repo.Create(&orgDatamodel.Organization{Name: "Globex"})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetByName", func() {
		It("should return nil when no organization matches", func() {
			org, err := repo.GetByName("missing")
			Expect(err).NotTo(HaveOccurred())
			Expect(org).To(BeNil())
		})

		It("should find an organization by name", func() {
			err := repo.Create(&orgDatamodel.Organization{Name: "Initech"})
			Expect(err).NotTo(HaveOccurred())

			org, err := repo.GetByName("Initech")
			Expect(err).NotTo(HaveOccurred())
			Expect(org).NotTo(BeNil())
			Expect(org.Name).To(Equal("Initech"))
		})
	})

	Describe("GetByID", func() {
		It("should return nil for an unknown id", func() {
			org, err := repo.GetByID(42)
			Expect(err).NotTo(HaveOccurred())
			Expect(org).To(BeNil())
		})
	})

	Describe("GetAll", func() {
		It("should return organizations ordered by name", func() {
			Expect(repo.Create(&orgDatamodel.Organization{Name: "Zeta"})).To(Succeed())
			Expect(repo.Create(&orgDatamodel.Organization{Name: "Acme"})).To(Succeed())

			orgs, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(orgs).To(HaveLen(2))
			Expect(orgs[0].Name).To(Equal("Acme"))
			Expect(orgs[1].Name).To(Equal("Zeta"))
		})
	})
})
