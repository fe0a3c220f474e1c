package postgres

import (
	permissionDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/permission"
	"github.com/frahmantamala/organization-management/internal/permission"
	"gorm.io/gorm"
)

type PermissionRepository struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) permission.RepositoryAPI {
	return &PermissionRepository{db: db}
}

func (r *PermissionRepository) Create(p *permissionDatamodel.Permission) error {
	return r.db.Create(p).Error
}

func (r *PermissionRepository) GetByCodeAndResource(code, resourceType string) (*permissionDatamodel.Permission, error) {
	var p permissionDatamodel.Permission
	err := r.db.Where("code = ? AND resource_type = ?", code, resourceType).First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PermissionRepository) GetByCode(code string) (*permissionDatamodel.Permission, error) {
	var p permissionDatamodel.Permission
	err := r.db.Where("code = ?", code).First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PermissionRepository) GetAll() ([]*permissionDatamodel.Permission, error) {
	var perms []*permissionDatamodel.Permission
	err := r.db.Order("code ASC").Find(&perms).Error
	return perms, err
}
