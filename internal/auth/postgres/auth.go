package postgres

import (
	"database/sql"
	"fmt"

	"github.com/frahmantamala/organization-management/internal/auth"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

// GetCredentials looks the account up regardless of activity so the
// service can distinguish a wrong password from an inactive account.
func (r *Repository) GetCredentials(username string) (*auth.Credentials, error) {
	var creds auth.Credentials
	query := `SELECT id, email, password_hash, is_active FROM users WHERE username = ?`

	row := r.db.Raw(query, username).Row()
	if err := row.Scan(&creds.UserID, &creds.Email, &creds.PasswordHash, &creds.IsActive); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found")
		}
		return nil, err
	}
	return &creds, nil
}

func (r *Repository) GetUserWithPermissions(userID int64) (*auth.User, error) {
	var user auth.User

	query := `SELECT id, username, email, is_staff FROM users WHERE id = ?`

	row := r.db.Raw(query, userID).Row()
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.IsStaff); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found")
		}
		return nil, err
	}

	permQuery := `SELECT DISTINCT p.code
	             FROM permissions p
	             JOIN user_role_permissions urp ON p.id = urp.permission_id
	             JOIN user_roles ur ON ur.id = urp.user_role_id
	             WHERE ur.user_id = ?
	             ORDER BY p.code`

	rows, err := r.db.Raw(permQuery, userID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var permissions []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		permissions = append(permissions, code)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	user.Permissions = permissions
	return &user, nil
}
