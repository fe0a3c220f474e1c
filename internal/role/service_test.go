package role_test

import (
	"log/slog"
	"os"
	"testing"

	apperrors "github.com/frahmantamala/organization-management/internal"
	orgDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/organization"
	permissionDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/permission"
	roleDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/role"
	"github.com/frahmantamala/organization-management/internal/role"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRoleService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Role Service Suite")
}

// MockRepository implements role.RepositoryAPI for testing
type MockRepository struct {
	orgs         map[int64]*orgDatamodel.Organization
	roles        map[int64]*roleDatamodel.Role
	designations map[int64]*roleDatamodel.Designation
	catalog      map[int64]permissionDatamodel.Permission
	nextID       int64
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		orgs:         make(map[int64]*orgDatamodel.Organization),
		roles:        make(map[int64]*roleDatamodel.Role),
		designations: make(map[int64]*roleDatamodel.Designation),
		catalog:      make(map[int64]permissionDatamodel.Permission),
		nextID:       1,
	}
}

func (m *MockRepository) id() int64 {
	id := m.nextID
	m.nextID++
	return id
}

func (m *MockRepository) AddOrganization(name string) int64 {
	org := &orgDatamodel.Organization{ID: m.id(), Name: name}
	m.orgs[org.ID] = org
	return org.ID
}

func (m *MockRepository) AddPermission(code string) int64 {
	p := permissionDatamodel.Permission{ID: m.id(), Name: code, Code: code}
	m.catalog[p.ID] = p
	return p.ID
}

func (m *MockRepository) CreateRole(r *roleDatamodel.Role) error {
	r.ID = m.id()
	m.roles[r.ID] = r
	return nil
}

func (m *MockRepository) GetRoleByID(id int64) (*roleDatamodel.Role, error) {
	return m.roles[id], nil
}

func (m *MockRepository) GetRolesByOrganization(orgID int64) ([]*roleDatamodel.Role, error) {
	var result []*roleDatamodel.Role
	for _, r := range m.roles {
		if r.OrganizationID == orgID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *MockRepository) AttachRolePermissions(roleID int64, permissionIDs []int64) error {
	r := m.roles[roleID]
	for _, pid := range permissionIDs {
		p, ok := m.catalog[pid]
		if !ok {
			continue
		}
		attached := false
		for _, existing := range r.Permissions {
			if existing.ID == pid {
				attached = true
				break
			}
		}
		if !attached {
			r.Permissions = append(r.Permissions, p)
		}
	}
	return nil
}

func (m *MockRepository) GetOrganizationByID(id int64) (*orgDatamodel.Organization, error) {
	return m.orgs[id], nil
}

func (m *MockRepository) CreateDesignation(d *roleDatamodel.Designation) error {
	d.ID = m.id()
	m.designations[d.ID] = d
	return nil
}

func (m *MockRepository) GetDesignationByID(id int64) (*roleDatamodel.Designation, error) {
	return m.designations[id], nil
}

func (m *MockRepository) AttachDesignationPermissions(designationID int64, permissionIDs []int64) error {
	d := m.designations[designationID]
	for _, pid := range permissionIDs {
		p, ok := m.catalog[pid]
		if !ok {
			continue
		}
		attached := false
		for _, existing := range d.Permissions {
			if existing.ID == pid {
				attached = true
				break
			}
		}
		if !attached {
			d.Permissions = append(d.Permissions, p)
		}
	}
	return nil
}

var _ = Describe("Role Service", func() {
	var (
		mockRepo *MockRepository
		service  *role.Service
		logger   *slog.Logger
		orgID    int64
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = role.NewService(mockRepo, logger)
		orgID = mockRepo.AddOrganization("Globex")
	})

	Describe("CreateRole", func() {
		It("should create a role in an existing organization", func() {
			r, err := service.CreateRole(role.CreateRoleDTO{Name: "admin", OrganizationID: orgID})
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Name).To(Equal(role.RoleAdmin))
			Expect(r.OrganizationID).To(Equal(orgID))
		})

		It("should reject an unknown role name", func() {
			_, err := service.CreateRole(role.CreateRoleDTO{Name: "owner", OrganizationID: orgID})
			Expect(err).To(HaveOccurred())

			appErr, ok := apperrors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(apperrors.ErrCodeInvalidRoleName))
		})

		It("should reject a missing organization", func() {
			_, err := service.CreateRole(role.CreateRoleDTO{Name: "admin", OrganizationID: 999})
			Expect(err).To(MatchError(apperrors.ErrOrganizationNotFound))
		})
	})

	Describe("AttachPermissions", func() {
		var roleID int64
		var viewID, createID int64

		BeforeEach(func() {
			r, err := service.CreateRole(role.CreateRoleDTO{Name: "admin", OrganizationID: orgID})
			Expect(err).NotTo(HaveOccurred())
			roleID = r.ID

			viewID = mockRepo.AddPermission("view_reports")
			createID = mockRepo.AddPermission("create_tasks")
		})

		It("should attach permissions to the role", func() {
			r, err := service.AttachPermissions(roleID, role.AttachPermissionsDTO{PermissionIDs: []int64{viewID, createID}})
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Permissions).To(ConsistOf("view_reports", "create_tasks"))
		})

		It("should be an idempotent union on repeat attachment", func() {
			_, err := service.AttachPermissions(roleID, role.AttachPermissionsDTO{PermissionIDs: []int64{viewID}})
			Expect(err).NotTo(HaveOccurred())

			r, err := service.AttachPermissions(roleID, role.AttachPermissionsDTO{PermissionIDs: []int64{viewID, createID}})
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Permissions).To(ConsistOf("view_reports", "create_tasks"))
		})

		It("should reject an empty permission list", func() {
			_, err := service.AttachPermissions(roleID, role.AttachPermissionsDTO{})
			Expect(err).To(HaveOccurred())
		})

		It("should return not found for an unknown role", func() {
			_, err := service.AttachPermissions(999, role.AttachPermissionsDTO{PermissionIDs: []int64{viewID}})
			Expect(err).To(MatchError(apperrors.ErrRoleNotFound))
		})
	})

	Describe("Permissions", func() {
		It("should return exactly the attached set without inheritance", func() {
			super, err := service.CreateRole(role.CreateRoleDTO{Name: "super_admin", OrganizationID: orgID})
			Expect(err).NotTo(HaveOccurred())
			basic, err := service.CreateRole(role.CreateRoleDTO{Name: "basic_user", OrganizationID: orgID})
			Expect(err).NotTo(HaveOccurred())

			viewID := mockRepo.AddPermission("view_reports")
			adminID := mockRepo.AddPermission("admin")

			_, err = service.AttachPermissions(super.ID, role.AttachPermissionsDTO{PermissionIDs: []int64{adminID}})
			Expect(err).NotTo(HaveOccurred())
			_, err = service.AttachPermissions(basic.ID, role.AttachPermissionsDTO{PermissionIDs: []int64{viewID}})
			Expect(err).NotTo(HaveOccurred())

			perms, err := service.Permissions(basic.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(perms).To(ConsistOf("view_reports"))
		})
	})

	Describe("CreateDesignation", func() {
		var roleID int64

		BeforeEach(func() {
			r, err := service.CreateRole(role.CreateRoleDTO{Name: "admin", OrganizationID: orgID})
			Expect(err).NotTo(HaveOccurred())
			roleID = r.ID
		})

		It("should create a designation bound to a role in the same organization", func() {
			d, err := service.CreateDesignation(role.CreateDesignationDTO{
				Name:           "Engineering Manager",
				RoleID:         roleID,
				OrganizationID: orgID,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(d.RoleID).To(Equal(roleID))
		})

		It("should reject a role belonging to a different organization", func() {
			otherOrg := mockRepo.AddOrganization("Initech")

			_, err := service.CreateDesignation(role.CreateDesignationDTO{
				Name:           "Engineering Manager",
				RoleID:         roleID,
				OrganizationID: otherOrg,
			})
			Expect(err).To(HaveOccurred())

			appErr, ok := apperrors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(apperrors.ErrCodeRoleOrganizationMismatch))
		})

		It("should return not found for an unknown role", func() {
			_, err := service.CreateDesignation(role.CreateDesignationDTO{
				Name:           "Engineering Manager",
				RoleID:         999,
				OrganizationID: orgID,
			})
			Expect(err).To(MatchError(apperrors.ErrRoleNotFound))
		})
	})

	Describe("AttachDesignationPermissions", func() {
		It("should keep the designation set independent of the role set", func() {
			r, err := service.CreateRole(role.CreateRoleDTO{Name: "admin", OrganizationID: orgID})
			Expect(err).NotTo(HaveOccurred())

			d, err := service.CreateDesignation(role.CreateDesignationDTO{
				Name:           "Team Lead",
				RoleID:         r.ID,
				OrganizationID: orgID,
			})
			Expect(err).NotTo(HaveOccurred())

			viewID := mockRepo.AddPermission("view_reports")
			createID := mockRepo.AddPermission("create_tasks")

			_, err = service.AttachPermissions(r.ID, role.AttachPermissionsDTO{PermissionIDs: []int64{viewID}})
			Expect(err).NotTo(HaveOccurred())

			updated, err := service.AttachDesignationPermissions(d.ID, role.AttachPermissionsDTO{PermissionIDs: []int64{createID}})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Permissions).To(ConsistOf("create_tasks"))
		})
	})
})
