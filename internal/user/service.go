package user

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	errors "github.com/frahmantamala/organization-management/internal"
	permissionDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/permission"
	roleDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/role"
	userDatamodel "github.com/frahmantamala/organization-management/internal/core/datamodel/user"
	"github.com/frahmantamala/organization-management/internal/role"
)

type RepositoryAPI interface {
	Create(u *userDatamodel.User) error
	GetByID(id int64) (*userDatamodel.User, error)
	GetByUsername(username string) (*userDatamodel.User, error)
	GetByEmail(email string) (*userDatamodel.User, error)

	GetRoleByID(roleID int64) (*roleDatamodel.Role, error)
	GetUserRole(userID, roleID int64) (*roleDatamodel.UserRole, error)
	CreateUserRole(ur *roleDatamodel.UserRole) error
	GetAllPermissions() ([]*permissionDatamodel.Permission, error)
	GetPermissionsByCodes(codes []string) ([]*permissionDatamodel.Permission, error)
	GetPermissionCodesForUser(userID int64) ([]string, error)
}

type Service struct {
	repo       RepositoryAPI
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a directly-registered account. Such users are active
// immediately but unapproved; only the invite path gates activation on
// approval.
func (s *Service) Register(dto RegisterDTO) (*User, error) {
	data, err := s.buildUser(dto)
	if err != nil {
		return nil, err
	}
	data.IsActive = true

	if err := s.repo.Create(data); err != nil {
		s.logger.Error("failed to create user", "username", dto.Username, "error", err)
		return nil, err
	}

	s.logger.Info("user registered", "user_id", data.ID, "username", data.Username)
	return FromDataModel(data), nil
}

// RegisterInvited creates the inactive account backing an invitation.
// The invitation workflow owns the activation transition.
func (s *Service) RegisterInvited(dto RegisterDTO) (*User, error) {
	data, err := s.buildUser(dto)
	if err != nil {
		return nil, err
	}
	data.IsActive = false
	data.IsInvited = true

	if err := s.repo.Create(data); err != nil {
		s.logger.Error("failed to create invited user", "username", dto.Username, "error", err)
		return nil, err
	}

	s.logger.Info("invited user created", "user_id", data.ID, "username", data.Username)
	return FromDataModel(data), nil
}

func (s *Service) buildUser(dto RegisterDTO) (*userDatamodel.User, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	if existing, err := s.repo.GetByUsername(dto.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, errors.NewValidationError("username already taken", errors.ErrCodeUsernameTaken)
	}

	if existing, err := s.repo.GetByEmail(dto.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, errors.NewValidationError("email already taken", errors.ErrCodeEmailTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password", err)
	}

	return &userDatamodel.User{
		Username:       dto.Username,
		Email:          dto.Email,
		PasswordHash:   string(hash),
		Mobile:         dto.Mobile,
		OrganizationID: dto.OrganizationID,
	}, nil
}

// AssignRole creates the UserRole join and materializes its default
// permission set from the role name:
//
//	super_admin -> every permission in the catalog,
//	admin       -> view_reports, create_tasks,
//	basic_user  -> view_reports.
//
// The snapshot is taken once, at assignment time; permissions added to the
// catalog later never appear on existing assignments. Re-assigning an
// already-held role returns the existing row unchanged.
func (s *Service) AssignRole(userID, roleID int64) (*UserRole, error) {
	userData, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if userData == nil {
		return nil, errors.ErrUserNotFound
	}

	roleData, err := s.repo.GetRoleByID(roleID)
	if err != nil {
		return nil, err
	}
	if roleData == nil {
		return nil, errors.ErrRoleNotFound
	}

	if existing, err := s.repo.GetUserRole(userID, roleID); err != nil {
		return nil, err
	} else if existing != nil {
		return userRoleFromDataModel(existing), nil
	}

	defaults, err := s.defaultPermissions(role.RoleName(roleData.Name))
	if err != nil {
		return nil, err
	}

	ur := &roleDatamodel.UserRole{
		UserID:      userID,
		RoleID:      roleID,
		Permissions: defaults,
	}
	if err := s.repo.CreateUserRole(ur); err != nil {
		s.logger.Error("failed to assign role", "user_id", userID, "role_id", roleID, "error", err)
		return nil, err
	}

	s.logger.Info("role assigned", "user_id", userID, "role_id", roleID, "role_name", roleData.Name, "default_permissions", len(defaults))
	return userRoleFromDataModel(ur), nil
}

func (s *Service) defaultPermissions(name role.RoleName) ([]permissionDatamodel.Permission, error) {
	codes, all := role.DefaultPermissionCodes(name)

	var rows []*permissionDatamodel.Permission
	var err error
	if all {
		rows, err = s.repo.GetAllPermissions()
	} else if len(codes) > 0 {
		rows, err = s.repo.GetPermissionsByCodes(codes)
	}
	if err != nil {
		return nil, err
	}

	perms := make([]permissionDatamodel.Permission, 0, len(rows))
	for _, row := range rows {
		perms = append(perms, *row)
	}
	return perms, nil
}

// PermissionsFor returns the deduplicated union of the snapshot sets on
// every role assignment the user holds.
func (s *Service) PermissionsFor(userID int64) ([]string, error) {
	userData, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if userData == nil {
		return nil, errors.ErrUserNotFound
	}

	return s.repo.GetPermissionCodesForUser(userID)
}

func (s *Service) GetByID(userID int64) (*User, error) {
	data, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, errors.ErrUserNotFound
	}

	u := FromDataModel(data)
	perms, err := s.repo.GetPermissionCodesForUser(userID)
	if err != nil {
		return nil, err
	}
	u.Permissions = perms
	return u, nil
}

func userRoleFromDataModel(ur *roleDatamodel.UserRole) *UserRole {
	codes := make([]string, 0, len(ur.Permissions))
	for _, p := range ur.Permissions {
		codes = append(codes, p.Code)
	}
	return &UserRole{
		ID:          ur.ID,
		UserID:      ur.UserID,
		RoleID:      ur.RoleID,
		Permissions: codes,
		CreatedAt:   ur.CreatedAt,
	}
}
