package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with the permission catalog, a demo organization with its roles, and a staff admin account.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		db, err := initGorm(sqlDB)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			clearSeedData(db)
		}

		permissions := []struct {
			Name string
			Code string
		}{
			{"View Reports", "view_reports"},
			{"Create Tasks", "create_tasks"},
			{"Manage Users", "manage_users"},
			{"Approve Users", "approve_users"},
			{"Administrator", "admin"},
		}

		for _, p := range permissions {
			var pid int64
			row := db.Raw("SELECT id FROM permissions WHERE code = ? AND resource_type = ''", p.Code).Row()
			if err := row.Scan(&pid); err != nil {
				if err := db.Exec("INSERT INTO permissions (name, code, resource_type, created_at) VALUES (?, ?, '', now())", p.Name, p.Code).Error; err != nil {
					log.Fatalf("failed to insert permission %s: %v", p.Code, err)
				}
				fmt.Println("Seeded permission:", p.Code)
			}
		}

		orgName := "Acme Corp"
		var orgID int64
		if err := db.Raw("SELECT id FROM organizations WHERE name = ?", orgName).Row().Scan(&orgID); err != nil {
			if err := db.Exec("INSERT INTO organizations (name, industry, address, contact_email, created_at) VALUES (?, 'software', '1 Main St', 'hello@acme.test', now())", orgName).Error; err != nil {
				log.Fatalf("failed to insert organization: %v", err)
			}
			if err := db.Raw("SELECT id FROM organizations WHERE name = ?", orgName).Row().Scan(&orgID); err != nil {
				log.Fatalf("failed to lookup organization id: %v", err)
			}
			fmt.Println("Seeded organization:", orgName)
		}

		for _, roleName := range []string{"super_admin", "admin", "basic_user"} {
			var rid int64
			if err := db.Raw("SELECT id FROM roles WHERE name = ? AND organization_id = ?", roleName, orgID).Row().Scan(&rid); err != nil {
				if err := db.Exec("INSERT INTO roles (name, organization_id) VALUES (?, ?)", roleName, orgID).Error; err != nil {
					log.Fatalf("failed to insert role %s: %v", roleName, err)
				}
				fmt.Println("Seeded role:", roleName)
			}
		}

		password := "password"
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash seed password: %v", err)
		}

		adminUsername := "sysadmin"
		adminEmail := "sysadmin@acme.test"
		var adminID int64
		if err := db.Raw("SELECT id FROM users WHERE username = ?", adminUsername).Row().Scan(&adminID); err != nil {
			if err := db.Exec("INSERT INTO users (username, email, password_hash, organization_id, is_active, is_approved, is_invited, is_staff, created_at, updated_at) VALUES (?, ?, ?, ?, true, true, false, true, now(), now())", adminUsername, adminEmail, string(hash), orgID).Error; err != nil {
				log.Fatalf("failed to insert admin user: %v", err)
			}
			if err := db.Raw("SELECT id FROM users WHERE username = ?", adminUsername).Row().Scan(&adminID); err != nil {
				log.Fatalf("failed to lookup admin user id: %v", err)
			}
			fmt.Println("Seeded staff admin user:", adminUsername)
		}

		// Give the admin the super_admin role with the full catalog as its
		// snapshot, the same shape role assignment produces at runtime.
		var superRoleID int64
		if err := db.Raw("SELECT id FROM roles WHERE name = 'super_admin' AND organization_id = ?", orgID).Row().Scan(&superRoleID); err != nil {
			log.Fatalf("super_admin role missing: %v", err)
		}

		var userRoleID int64
		if err := db.Raw("SELECT id FROM user_roles WHERE user_id = ? AND role_id = ?", adminID, superRoleID).Row().Scan(&userRoleID); err != nil {
			if err := db.Exec("INSERT INTO user_roles (user_id, role_id, created_at) VALUES (?, ?, now())", adminID, superRoleID).Error; err != nil {
				log.Fatalf("failed to assign super_admin role: %v", err)
			}
			if err := db.Raw("SELECT id FROM user_roles WHERE user_id = ? AND role_id = ?", adminID, superRoleID).Row().Scan(&userRoleID); err != nil {
				log.Fatalf("failed to lookup user role id: %v", err)
			}
		}

		for _, p := range permissions {
			var pid int64
			if err := db.Raw("SELECT id FROM permissions WHERE code = ? AND resource_type = ''", p.Code).Row().Scan(&pid); err != nil {
				log.Fatalf("permission not found after insert %s: %v", p.Code, err)
			}

			var exists int
			if err := db.Raw("SELECT 1 FROM user_role_permissions WHERE user_role_id = ? AND permission_id = ?", userRoleID, pid).Row().Scan(&exists); err == nil {
				continue
			}

			if err := db.Exec("INSERT INTO user_role_permissions (user_role_id, permission_id) VALUES (?, ?)", userRoleID, pid).Error; err != nil {
				log.Fatalf("failed to grant permission %s: %v", p.Code, err)
			}
		}

		fmt.Println("Granted full permission snapshot to:", adminUsername)
		fmt.Println("Seeding complete")
	},
}

func clearSeedData(db *gorm.DB) {
	// child tables first
	tables := []string{
		"user_role_permissions",
		"designation_permissions",
		"role_permissions",
		"user_roles",
		"designations",
		"invitations",
		"roles",
		"users",
		"permissions",
		"organizations",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("failed to clear table %s: %v", table, err)
		}
	}
	fmt.Println("Cleared existing data")
}
