package postgres

import (
	"github.com/frahmantamala/organization-management/internal/organization"
	orgDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/organization"
	"gorm.io/gorm"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) organization.RepositoryAPI {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Create(org *orgDatamodel.Organization) error {
	return r.db.Create(org).Error
}

func (r *OrganizationRepository) GetByID(id int64) (*orgDatamodel.Organization, error) {
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

func (r *OrganizationRepository) GetByName(name string) (*orgDatamodel.Organization, error) {
	var org orgDatamodel.Organization
	err := r.db.Where("name = ?", name).First(&org).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) GetAll() ([]*orgDatamodel.Organization, error) {
	var orgs []*orgDatamodel.Organization
	err := r.db.Order("name ASC").Find(&orgs).Error
	return orgs, err
}
