package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/organization-management/internal/auth"
	"github.com/frahmantamala/organization-management/internal/invitation"
	"github.com/frahmantamala/organization-management/internal/organization"
	"github.com/frahmantamala/organization-management/internal/permission"
	"github.com/frahmantamala/organization-management/internal/role"
	"github.com/frahmantamala/organization-management/internal/transport/middleware"
	"github.com/frahmantamala/organization-management/internal/transport/swagger"
	"github.com/frahmantamala/organization-management/internal/user"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, authService *auth.Service, userHandler *user.Handler, orgHandler *organization.Handler, permissionHandler *permission.Handler, roleHandler *role.Handler, invitationHandler *invitation.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	rbac := authService.RBACAuthorization()

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		if authHandler != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/login", authHandler.Login)
				sr.Post("/refresh", authHandler.RefreshToken)
				sr.Post("/logout", authHandler.Logout)
			})
		}

		// Self-registration is open; invited accounts come in through the
		// invitation endpoints instead.
		if userHandler != nil {
			r.Post("/users/register", userHandler.Register)
		}

		if authHandler != nil {
			// Protected routes that require authentication
			r.Group(func(pr chi.Router) {
				pr.Use(authHandler.AuthMiddleware)

				// Current user
				if userHandler != nil {
					pr.Get("/users/me", userHandler.GetCurrentUser)
					pr.Get("/users/me/permissions", userHandler.GetMyPermissions)
				}

				if invitationHandler != nil {
					pr.Post("/invitations/accept", invitationHandler.Accept)
				}

				// Catalog reads only need a view-capable permission
				pr.Group(func(vr chi.Router) {
					vr.Use(middleware.RequirePermissions("view_reports", "admin"))

					if permissionHandler != nil {
						vr.Get("/permissions", permissionHandler.ListPermissions)
					}
					if roleHandler != nil {
						vr.Get("/roles/{id}/permissions", roleHandler.GetRolePermissions)
					}
				})

				// Directory administration
				pr.Group(func(ar chi.Router) {
					ar.Use(rbac.RequireManageDirectory())

					if orgHandler != nil {
						ar.Route("/organizations", func(or chi.Router) {
							or.Post("/", orgHandler.CreateOrganization)
							or.Get("/", orgHandler.ListOrganizations)
							or.Get("/{id}", orgHandler.GetOrganization)

							if roleHandler != nil {
								or.Post("/{id}/roles", roleHandler.CreateRole)
								or.Get("/{id}/roles", roleHandler.ListRoles)
								or.Post("/{id}/designations", roleHandler.CreateDesignation)
							}
						})
					}

					if permissionHandler != nil {
						ar.Post("/permissions", permissionHandler.CreatePermission)
					}

					if roleHandler != nil {
						ar.Post("/roles/{id}/permissions", roleHandler.AttachRolePermissions)
						ar.Post("/designations/{id}/permissions", roleHandler.AttachDesignationPermissions)
					}

					if userHandler != nil {
						ar.Post("/users/{id}/roles", userHandler.AssignRole)
					}

					if invitationHandler != nil {
						ar.Post("/invitations", invitationHandler.Invite)
						ar.Get("/invitations", invitationHandler.ListInvitations)
					}
				})

				// Approval is a staff action
				if invitationHandler != nil {
					pr.Group(func(sr chi.Router) {
						sr.Use(rbac.RequireStaff())
						sr.Post("/users/{id}/approve", invitationHandler.Approve)
					})
				}
			})
		}
	})
}
