package postgres

import (
	permissionDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/permission"
	roleDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/role"
	userDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/user"
	"github.com/frahmantamala/organization-management/internal/user"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.RepositoryAPI {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *userDatamodel.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id int64) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.Where("id = ?", id).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(username string) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.Where("username = ?", username).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetRoleByID(roleID int64) (*roleDatamodel.Role, error) {
	var data roleDatamodel.Role
	err := r.db.Where("id = ?", roleID).First(&data).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &data, nil
}

func (r *UserRepository) GetUserRole(userID, roleID int64) (*roleDatamodel.UserRole, error) {
	var ur roleDatamodel.UserRole
	err := r.db.Preload("Permissions").Where("user_id = ? AND role_id = ?", userID, roleID).First(&ur).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &ur, nil
}

// CreateUserRole persists the join row and its snapshot permission set in
// one transaction; gorm writes the user_role_permissions rows from the
// association.
func (r *UserRepository) CreateUserRole(ur *roleDatamodel.UserRole) error {
	return r.db.Create(ur).Error
}

func (r *UserRepository) GetAllPermissions() ([]*permissionDatamodel.Permission, error) {
	var perms []*permissionDatamodel.Permission
	err := r.db.Order("code ASC").Find(&perms).Error
	return perms, err
}

func (r *UserRepository) GetPermissionsByCodes(codes []string) ([]*permissionDatamodel.Permission, error) {
	var perms []*permissionDatamodel.Permission
	err := r.db.Where("code IN ?", codes).Find(&perms).Error
	return perms, err
}

func (r *UserRepository) GetPermissionCodesForUser(userID int64) ([]string, error) {
	var codes []string
	err := r.db.
		Table("permissions").
		Select("DISTINCT permissions.code").
		Joins("JOIN user_role_permissions urp ON urp.permission_id = permissions.id").
		Joins("JOIN user_roles ur ON ur.id = urp.user_role_id").
		Where("ur.user_id = ?", userID).
		Order("permissions.code ASC").
		Scan(&codes).Error
	return codes, err
}
