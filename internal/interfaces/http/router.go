package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	approvalusecases "deskflow/internal/application/approval/usecases"
	appreference "deskflow/internal/application/reference"
	appstatus "deskflow/internal/application/status"
	ticketusecases "deskflow/internal/application/ticket/usecases"
	userusecases "deskflow/internal/application/user/usecases"
	analysisusecases "deskflow/internal/application/workanalysis/usecases"
	worklogusecases "deskflow/internal/application/worklog/usecases"
	"deskflow/internal/domain/ticket"
	"deskflow/internal/domain/timer"
	"deskflow/internal/infrastructure/auth"
	"deskflow/internal/infrastructure/cache"
	"deskflow/internal/infrastructure/config"
	"deskflow/internal/infrastructure/email"
	"deskflow/internal/infrastructure/permission"
	"deskflow/internal/infrastructure/repository"
	"deskflow/internal/infrastructure/storage"
	approvalhandlers "deskflow/internal/interfaces/http/handlers/approval"
	authhandlers "deskflow/internal/interfaces/http/handlers/auth"
	referencehandlers "deskflow/internal/interfaces/http/handlers/reference"
	statushandlers "deskflow/internal/interfaces/http/handlers/status"
	tickethandlers "deskflow/internal/interfaces/http/handlers/ticket"
	userhandlers "deskflow/internal/interfaces/http/handlers/user"
	workanalysishandlers "deskflow/internal/interfaces/http/handlers/workanalysis"
	workloghandlers "deskflow/internal/interfaces/http/handlers/worklog"
	"deskflow/internal/interfaces/http/middleware"
	"deskflow/internal/interfaces/http/routes"
	"deskflow/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine    *gin.Engine
	cfg       *config.Config
	logger    logger.Interface
	uploadDir string

	ticketRoutes    *routes.TicketRouteConfig
	analysisRoutes  *routes.WorkAnalysisRouteConfig
	approvalRoutes  *routes.ApprovalRouteConfig
	statusRoutes    *routes.StatusRouteConfig
	referenceRoutes *routes.ReferenceRouteConfig
	userRoutes      *routes.UserRouteConfig
	authRoutes      *routes.AuthRouteConfig
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(cfg *config.Config, db *gorm.DB, log logger.Interface) (*Router, error) {
	engine := gin.New()
	registerValidators()

	ticketRepo := repository.NewTicketRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	analysisRepo := repository.NewWorkAnalysisRepository(db)
	entryRepo := repository.NewWorkLogRepository(db)
	approvalRepo := repository.NewApprovalRepository(db)
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	designationRepo := repository.NewDesignationRepository(db)
	priorityRepo := repository.NewPriorityRepository(db)

	var statusCache appstatus.Cache
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ttl := time.Duration(cfg.StatusCache.TTLSeconds) * time.Second
		statusCache = cache.NewRedisStatusCache(client, ttl, log)
	}
	directory := appstatus.NewDirectory(statusRepo, statusCache, log)

	snapshotter := repository.NewTimerSnapshotter(db)
	timerStore := timer.NewStore(snapshotter)
	if err := timerStore.Rehydrate(context.Background()); err != nil {
		log.Warnw("failed to rehydrate timer state, starting empty", "error", err)
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	var notifier approvalusecases.AssignmentNotifier = email.NopAssignmentNotifier{}
	if cfg.Email.Enabled {
		notifier = email.NewSMTPAssignmentNotifier(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			BaseURL:     cfg.Server.BaseURL,
		}, userRepo, log)
	}

	numberGen := ticket.NewDefaultNumberGenerator()

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, numberGen, directory, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, directory, log)
	closeTicketUC := ticketusecases.NewCloseTicketUseCase(ticketRepo, directory, log)
	markCompleteUC := ticketusecases.NewMarkWorkCompleteUseCase(ticketRepo, analysisRepo, directory, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, log)

	submitAnalysisUC := analysisusecases.NewSubmitAnalysisUseCase(analysisRepo, ticketRepo, directory, log)
	toggleMaterialUC := analysisusecases.NewToggleMaterialUseCase(analysisRepo, ticketRepo, directory, log)
	listAnalysesUC := analysisusecases.NewListAnalysesUseCase(analysisRepo, log)
	getAnalysisUC := analysisusecases.NewGetAnalysisUseCase(analysisRepo, log)

	startTimerUC := worklogusecases.NewStartTimerUseCase(timerStore, analysisRepo, log)
	stopTimerUC := worklogusecases.NewStopTimerUseCase(timerStore, entryRepo, ticketRepo, directory, log)
	listWorkLogsUC := worklogusecases.NewListWorkLogsUseCase(entryRepo, log)
	getTimerUC := worklogusecases.NewGetTimerUseCase(timerStore, log)
	listTimersUC := worklogusecases.NewListTimersUseCase(timerStore, log)

	createApprovalUC := approvalusecases.NewCreateApprovalUseCase(approvalRepo, ticketRepo, analysisRepo, directory, notifier, log)
	listApprovalsUC := approvalusecases.NewListApprovalsUseCase(approvalRepo, log)

	loginUC := userusecases.NewLoginUseCase(userRepo, hasher, jwtSvc, log)
	createUserUC := userusecases.NewCreateUserUseCase(userRepo, hasher, log)

	referenceService := appreference.NewService(companyRepo, departmentRepo, designationRepo, priorityRepo, log)

	imageStore := storage.NewImageStore(cfg.Storage.UploadDir)

	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC, updateTicketUC, closeTicketUC, markCompleteUC,
		getTicketUC, listTicketsUC, deleteTicketUC,
	)
	analysisHandler := workanalysishandlers.NewWorkAnalysisHandler(
		submitAnalysisUC, toggleMaterialUC, listAnalysesUC, getAnalysisUC, imageStore,
	)
	workLogHandler := workloghandlers.NewWorkLogHandler(
		startTimerUC, stopTimerUC, listWorkLogsUC, getTimerUC, listTimersUC,
	)
	approvalHandler := approvalhandlers.NewApprovalHandler(createApprovalUC, listApprovalsUC)
	statusHandler := statushandlers.NewStatusHandler(directory)
	referenceHandler := referencehandlers.NewReferenceHandler(referenceService)
	userHandler := userhandlers.NewUserHandler(createUserUC)
	authHandler := authhandlers.NewAuthHandler(loginUC)

	enforcer, err := permission.NewEnforcer(db, cfg.Permission.ModelPath, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := permission.InitDefaultPolicies(enforcer, log); err != nil {
		return nil, fmt.Errorf("failed to seed default policies: %w", err)
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, log)
	permissionMiddleware := middleware.NewPermissionMiddleware(enforcer, log)

	return &Router{
		engine:    engine,
		cfg:       cfg,
		logger:    log,
		uploadDir: cfg.Storage.UploadDir,
		ticketRoutes: &routes.TicketRouteConfig{
			TicketHandler:        ticketHandler,
			AuthMiddleware:       authMiddleware,
			PermissionMiddleware: permissionMiddleware,
		},
		analysisRoutes: &routes.WorkAnalysisRouteConfig{
			WorkAnalysisHandler: analysisHandler,
			WorkLogHandler:      workLogHandler,
			AuthMiddleware:      authMiddleware,
		},
		approvalRoutes: &routes.ApprovalRouteConfig{
			ApprovalHandler:      approvalHandler,
			AuthMiddleware:       authMiddleware,
			PermissionMiddleware: permissionMiddleware,
		},
		statusRoutes: &routes.StatusRouteConfig{
			StatusHandler:        statusHandler,
			AuthMiddleware:       authMiddleware,
			PermissionMiddleware: permissionMiddleware,
		},
		referenceRoutes: &routes.ReferenceRouteConfig{
			ReferenceHandler:     referenceHandler,
			AuthMiddleware:       authMiddleware,
			PermissionMiddleware: permissionMiddleware,
		},
		userRoutes: &routes.UserRouteConfig{
			UserHandler:          userHandler,
			AuthMiddleware:       authMiddleware,
			PermissionMiddleware: permissionMiddleware,
		},
		authRoutes: &routes.AuthRouteConfig{
			AuthHandler: authHandler,
		},
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.engine.Static("/uploads", r.uploadDir)

	routes.SetupAuthRoutes(r.engine, r.authRoutes)
	routes.SetupTicketRoutes(r.engine, r.ticketRoutes)
	routes.SetupWorkAnalysisRoutes(r.engine, r.analysisRoutes)
	routes.SetupApprovalRoutes(r.engine, r.approvalRoutes)
	routes.SetupStatusRoutes(r.engine, r.statusRoutes)
	routes.SetupReferenceRoutes(r.engine, r.referenceRoutes)
	routes.SetupUserRoutes(r.engine, r.userRoutes)
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
