package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/organization-management/internal"
	"github.com/frahmantamala/organization-management/internal/auth"
	authPostgres "github.com/frahmantamala/organization-management/internal/auth/postgres"
	"github.com/frahmantamala/organization-management/internal/core/events"
	"github.com/frahmantamala/organization-management/internal/invitation"
	invitationPostgres "github.com/frahmantamala/organization-management/internal/invitation/postgres"
	"github.com/frahmantamala/organization-management/internal/organization"
	organizationPostgres "github.com/frahmantamala/organization-management/internal/organization/postgres"
	"github.com/frahmantamala/organization-management/internal/permission"
	permissionPostgres "github.com/frahmantamala/organization-management/internal/permission/postgres"
	"github.com/frahmantamala/organization-management/internal/role"
	rolePostgres "github.com/frahmantamala/organization-management/internal/role/postgres"
	"github.com/frahmantamala/organization-management/internal/transport"
	"github.com/frahmantamala/organization-management/internal/transport/rest"
	"github.com/frahmantamala/organization-management/internal/user"
	userPostgres "github.com/frahmantamala/organization-management/internal/user/postgres"
	"github.com/frahmantamala/organization-management/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Gorm   *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger

	AuthHandler       *auth.Handler
	AuthService       *auth.Service
	UserHandler       *user.Handler
	OrgHandler        *organization.Handler
	PermissionHandler *permission.Handler
	RoleHandler       *role.Handler
	InvitationHandler *invitation.Handler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		deps.AuthHandler,
		deps.AuthService,
		deps.UserHandler,
		deps.OrgHandler,
		deps.PermissionHandler,
		deps.RoleHandler,
		deps.InvitationHandler,
		deps.Logger,
	)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if config.Observability.Logging.Format == "json" {
		logger.Init("production")
	} else {
		logger.Init("development")
	}
	lg := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	bus := events.NewEventBus(lg)
	subscribeDirectoryEvents(bus, lg)

	userRepo := userPostgres.NewUserRepository(gormDB)
	userService := user.NewService(userRepo, config.Security.BCryptCost, lg)
	userHandler := user.NewHandler(userService)

	baseHandler := transport.NewBaseHandler(lg)

	orgRepo := organizationPostgres.NewOrganizationRepository(gormDB)
	orgService := organization.NewService(orgRepo, lg)
	orgHandler := organization.NewHandler(baseHandler, orgService)

	permRepo := permissionPostgres.NewPermissionRepository(gormDB)
	permService := permission.NewService(permRepo, lg)
	permHandler := permission.NewHandler(baseHandler, permService)

	roleRepo := rolePostgres.NewRoleRepository(gormDB)
	roleService := role.NewService(roleRepo, lg)
	roleHandler := role.NewHandler(baseHandler, roleService)

	invRepo := invitationPostgres.NewInvitationRepository(gormDB)
	invService := invitation.NewService(invRepo, userService, bus, lg)
	invHandler := invitation.NewHandler(invService)

	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)
	authRepo := authPostgres.NewRepository(gormDB)
	authService := auth.NewService(authRepo, tokenGen, lg)
	authHandler := auth.NewHandler(authService)

	return &Dependencies{
		Config: config,
		Logger: lg,
		DB:     db,
		Gorm:   gormDB,
		Router: chi.NewRouter(),

		AuthHandler:       authHandler,
		AuthService:       authService,
		UserHandler:       userHandler,
		OrgHandler:        orgHandler,
		PermissionHandler: permHandler,
		RoleHandler:       roleHandler,
		InvitationHandler: invHandler,
	}, nil
}

// subscribeDirectoryEvents wires the onboarding lifecycle events to audit
// logging. Notification delivery would hang off the same subscriptions.
func subscribeDirectoryEvents(bus *events.EventBus, lg *slog.Logger) {
	for _, eventType := range []string{
		events.EventUserInvited,
		events.EventInvitationAccepted,
		events.EventUserApproved,
	} {
		bus.Subscribe(eventType, func(ctx context.Context, event events.Event) error {
			lg.Info("directory event",
				"event_id", event.EventID(),
				"event_type", event.EventType(),
				"payload", event.Payload())
			return nil
		})
	}
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers the ORM over the already-open pgx connection pool.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
}
