package postgres

import (
	orgDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/organization"
	permissionDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/permission"
	roleDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/role"
	"github.com/frahmantamala/organization-management/internal/role"
	"gorm.io/gorm"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) role.RepositoryAPI {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) CreateRole(data *roleDatamodel.Role) error {
	return r.db.Create(data).Error
}

func (r *RoleRepository) GetRoleByID(id int64) (*roleDatamodel.Role, error) {
	var data roleDatamodel.Role
	err := r.db.Preload("Permissions").Where("id = ?", id).First(&data).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &data, nil
}

func (r *RoleRepository) GetRolesByOrganization(orgID int64) ([]*roleDatamodel.Role, error) {
	var roles []*roleDatamodel.Role
	err := r.db.Preload("Permissions").Where("organization_id = ?", orgID).Order("name ASC").Find(&roles).Error
	return roles, err
}

// AttachRolePermissions appends join rows; gorm upserts the association
// table, so re-attaching an existing permission is a no-op.
func (r *RoleRepository) AttachRolePermissions(roleID int64, permissionIDs []int64) error {
	perms := permissionRefs(permissionIDs)
	return r.db.Model(&roleDatamodel.Role{ID: roleID}).Association("Permissions").Append(&perms)
}

func (r *RoleRepository) GetOrganizationByID(id int64) (*orgDatamodel.Organization, error) {
	var org orgDatamodel.Organization
	err := r.db.Where("id = ?", id).First(&org).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &org, nil
}

func (r *RoleRepository) CreateDesignation(data *roleDatamodel.Designation) error {
	return r.db.Create(data).Error
}

func (r *RoleRepository) GetDesignationByID(id int64) (*roleDatamodel.Designation, error) {
	var data roleDatamodel.Designation
	err := r.db.Preload("Permissions").Where("id = ?", id).First(&data).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &data, nil
}

func (r *RoleRepository) AttachDesignationPermissions(designationID int64, permissionIDs []int64) error {
	perms := permissionRefs(permissionIDs)
	return r.db.Model(&roleDatamodel.Designation{ID: designationID}).Association("Permissions").Append(&perms)
}

func permissionRefs(ids []int64) []permissionDatamodel.Permission {
	perms := make([]permissionDatamodel.Permission, len(ids))
	for i, id := range ids {
		perms[i] = permissionDatamodel.Permission{ID: id}
	}
	return perms
}
