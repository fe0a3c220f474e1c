package auth

import "context"

type PermissionChecker interface {
	CanManageDirectory(userPermissions []string) bool
	CanApproveUsers(userPermissions []string) bool
	CanViewReports(userPermissions []string) bool
	HasAnyPermission(userPermissions []string, requiredPermissions []string) bool
	IsAdmin(userPermissions []string) bool
}

type DefaultPermissionChecker struct{}

func NewPermissionChecker() PermissionChecker {
	return &DefaultPermissionChecker{}
}

func (c *DefaultPermissionChecker) HasPermission(ctx context.Context, userPermissions []string, permission string) (bool, error) {
	return c.HasAnyPermission(userPermissions, []string{permission}), nil
}

func (c *DefaultPermissionChecker) CanManageDirectoryCtx(ctx context.Context, userPermissions []string) (bool, error) {
	return c.CanManageDirectory(userPermissions), nil
}

func (c *DefaultPermissionChecker) CanApproveUsersCtx(ctx context.Context, userPermissions []string) (bool, error) {
	return c.CanApproveUsers(userPermissions), nil
}

func (c *DefaultPermissionChecker) IsAdminCtx(ctx context.Context, userPermissions []string) (bool, error) {
	return c.IsAdmin(userPermissions), nil
}

func (c *DefaultPermissionChecker) CanManageDirectory(userPermissions []string) bool {
	return c.HasAnyPermission(userPermissions, []string{"manage_users", "admin"})
}

func (c *DefaultPermissionChecker) CanApproveUsers(userPermissions []string) bool {
	return c.HasAnyPermission(userPermissions, []string{"approve_users", "admin"})
}

func (c *DefaultPermissionChecker) CanViewReports(userPermissions []string) bool {
	return c.HasAnyPermission(userPermissions, []string{"view_reports", "admin"})
}

func (c *DefaultPermissionChecker) HasAnyPermission(userPermissions []string, requiredPermissions []string) bool {
	for _, userPerm := range userPermissions {
		for _, requiredPerm := range requiredPermissions {
			if userPerm == requiredPerm {
				return true
			}
		}
	}
	return false
}

func (c *DefaultPermissionChecker) IsAdmin(userPermissions []string) bool {
	return c.HasAnyPermission(userPermissions, []string{"admin"})
}
