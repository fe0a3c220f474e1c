package organization_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	apperrors "github.com/frahmantamala/organization-management/internal"
	orgDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/organization"
	"github.com/frahmantamala/organization-management/internal/organization"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestOrganizationService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Organization Service Suite")
}

// MockRepository implements organization.RepositoryAPI for testing
type MockRepository struct {
	orgs       map[int64]*orgDatamodel.Organization
	nextID     int64
	shouldFail bool
	failError  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		orgs:   make(map[int64]*orgDatamodel.Organization),
		nextID: 1,
	}
}

func (m *MockRepository) Create(org *orgDatamodel.Organization) error {
	if m.shouldFail {
		return m.failError
	}
	org.ID = m.nextID
	m.nextID++
	m.orgs[org.ID] = org
	return nil
}

func (m *MockRepository) GetByID(id int64) (*orgDatamodel.Organization, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	return m.orgs[id], nil
}

func (m *MockRepository) GetByName(name string) (*orgDatamodel.Organization, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	for _, org := range m.orgs {
		if org.Name == name {
			return org, nil
		}
	}
	return nil, nil
}

func (m *MockRepository) GetAll() ([]*orgDatamodel.Organization, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var result []*orgDatamodel.Organization
	for _, org := range m.orgs {
		result = append(result, org)
	}
	return result, nil
}

func (m *MockRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

var _ = Describe("Organization Service", func() {
	var (
		mockRepo *MockRepository
		service  *organization.Service
		logger   *slog.Logger
	)

	validDTO := organization.CreateOrganizationDTO{
		Name:         "Globex",
		Industry:     "manufacturing",
		Address:      "10 Factory Rd",
		ContactEmail: "info@globex.test",
	}

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = organization.NewService(mockRepo, logger)
	})

	Describe("Create", func() {
		Context("with a valid payload", func() {
			It("should create the organization", func() {
				org, err := service.Create(validDTO)
				Expect(err).NotTo(HaveOccurred())
				Expect(org).NotTo(BeNil())
				Expect(org.ID).To(BeNumerically(">", 0))
				Expect(org.Name).To(Equal("Globex"))
			})
		})

		Context("when the name is already registered", func() {
			BeforeEach(func() {
				_, err := service.Create(validDTO)
				Expect(err).NotTo(HaveOccurred())
			})

			It("should return a validation error", func() {
				_, err := service.Create(validDTO)
				Expect(err).To(HaveOccurred())

				appErr, ok := apperrors.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.Code).To(Equal(apperrors.ErrCodeOrganizationExists))
				Expect(appErr.StatusCode).To(Equal(400))
			})
		})

		Context("with missing fields", func() {
			It("should reject an empty name", func() {
				dto := validDTO
				dto.Name = ""
				_, err := service.Create(dto)
				Expect(err).To(HaveOccurred())
			})

			It("should reject a malformed contact email", func() {
				dto := validDTO
				dto.Name = "Initech"
				dto.ContactEmail = "not-an-email"
				_, err := service.Create(dto)
				Expect(err).To(HaveOccurred())
			})
		})

		Context("when the repository fails", func() {
			BeforeEach(func() {
				mockRepo.SetShouldFail(true, errors.New("database error"))
			})

			It("should return the error", func() {
				_, err := service.Create(validDTO)
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("GetByID", func() {
		Context("when the organization exists", func() {
			var orgID int64

			BeforeEach(func() {
				org, err := service.Create(validDTO)
				Expect(err).NotTo(HaveOccurred())
				orgID = org.ID
			})

			It("should return it", func() {
				org, err := service.GetByID(orgID)
				Expect(err).NotTo(HaveOccurred())
				Expect(org.Name).To(Equal("Globex"))
			})
		})

		Context("when the organization does not exist", func() {
			It("should return not found", func() {
				_, err := service.GetByID(999)
				Expect(err).To(MatchError(apperrors.ErrOrganizationNotFound))
			})
		})
	})

	Describe("GetAll", func() {
		It("should return every organization", func() {
			_, err := service.Create(validDTO)
			Expect(err).NotTo(HaveOccurred())

			second := validDTO
			second.Name = "Initech"
			_, err = service.Create(second)
			Expect(err).NotTo(HaveOccurred())

			orgs, err := service.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(orgs).To(HaveLen(2))
		})

		It("should return an empty slice when none exist", func() {
			orgs, err := service.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(orgs).To(HaveLen(0))
		})
	})
})
