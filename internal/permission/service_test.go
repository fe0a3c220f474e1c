package permission_test

import (
	"log/slog"
	"os"
	"testing"

	apperrors "github.com/frahmantamala/organization-management/internal"
	permissionDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/permission"
	"github.com/frahmantamala/organization-management/internal/permission"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPermissionService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Permission Service Suite")
}

// MockRepository implements permission.RepositoryAPI for testing
type MockRepository struct {
	perms  []*permissionDatamodel.Permission
	nextID int64
}

func NewMockRepository() *MockRepository {
	return &MockRepository{nextID: 1}
}

func (m *MockRepository) Create(p *permissionDatamodel.Permission) error {
	p.ID = m.nextID
	m.nextID++
	m.perms = append(m.perms, p)
	return nil
}

func (m *MockRepository) GetByCodeAndResource(code, resourceType string) (*permissionDatamodel.Permission, error) {
	for _, p := range m.perms {
		if p.Code == code && p.ResourceType == resourceType {
			return p, nil
		}
	}
	return nil, nil
}

func (m *MockRepository) GetByCode(code string) (*permissionDatamodel.Permission, error) {
	for _, p := range m.perms {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}

func (m *MockRepository) GetAll() ([]*permissionDatamodel.Permission, error) {
	return m.perms, nil
}

var _ = Describe("Permission Service", func() {
	var (
		mockRepo *MockRepository
		service  *permission.Service
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = permission.NewService(mockRepo, logger)
	})

	Describe("Create", func() {
		It("should create a catalog entry", func() {
			p, err := service.Create(permission.CreatePermissionDTO{
				Name: "View Reports",
				Code: "view_reports",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(p.ID).To(BeNumerically(">", 0))
			Expect(p.Code).To(Equal("view_reports"))
		})

		It("should reject a duplicate code and resource type pair", func() {
			_, err := service.Create(permission.CreatePermissionDTO{
				Name: "View Reports",
				Code: "view_reports",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(permission.CreatePermissionDTO{
				Name: "View Reports Again",
				Code: "view_reports",
			})
			Expect(err).To(HaveOccurred())

			appErr, ok := apperrors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(apperrors.ErrCodePermissionExists))
			Expect(appErr.StatusCode).To(Equal(409))
		})

		It("should allow the same code under a different resource type", func() {
			_, err := service.Create(permission.CreatePermissionDTO{
				Name: "View Reports",
				Code: "view_reports",
			})
			Expect(err).NotTo(HaveOccurred())

			p, err := service.Create(permission.CreatePermissionDTO{
				Name:         "View Project Reports",
				Code:         "view_reports",
				ResourceType: "project",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(p.ResourceType).To(Equal("project"))
		})

		It("should reject a missing code", func() {
			_, err := service.Create(permission.CreatePermissionDTO{Name: "Nameless"})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetByCode", func() {
		It("should return not found for an unknown code", func() {
			_, err := service.GetByCode("missing")
			Expect(err).To(MatchError(apperrors.ErrPermissionNotFound))
		})
	})

	Describe("GetAll", func() {
		It("should list every entry", func() {
			for _, code := range []string{"view_reports", "create_tasks", "admin"} {
				_, err := service.Create(permission.CreatePermissionDTO{Name: code, Code: code})
				Expect(err).NotTo(HaveOccurred())
			}

			perms, err := service.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(perms).To(HaveLen(3))
		})
	})
})
