package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/firmdesk/practice-service/internal/api/http"
	"github.com/firmdesk/practice-service/internal/api/http/handlers"
	"github.com/firmdesk/practice-service/internal/auth"
	"github.com/firmdesk/practice-service/internal/config"
	"github.com/firmdesk/practice-service/internal/events"
	"github.com/firmdesk/practice-service/internal/integrity"
	"github.com/firmdesk/practice-service/internal/observability"
	"github.com/firmdesk/practice-service/internal/persistence"
	"github.com/firmdesk/practice-service/internal/repository"
	"github.com/firmdesk/practice-service/internal/service"
	"github.com/firmdesk/practice-service/internal/storage"
	"github.com/firmdesk/practice-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	s3Store, err := storage.NewS3Store(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("failed to init object storage", zap.Error(err))
	}

	pool := pg.PoolHandle()
	accountRepo := repository.NewAccountRepository(pool)
	clientRepo := repository.NewClientRepository(pool)
	caseRepo := repository.NewCaseRepository(pool)
	documentRepo := repository.NewDocumentRepository(pool)
	invoiceRepo := repository.NewInvoiceRepository(pool)
	calendarRepo := repository.NewCalendarEventRepository(pool)
	entryRepo := repository.NewTimeEntryRepository(pool)
	timesheetRepo := repository.NewTimesheetRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)
	auditRepo := repository.NewAuditRepository(pool)
	flagStore := repository.NewApprovalFlagStore(redis.Client, cfg.Auth.PendingFlagTTL())

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()
	verifier := integrity.NewVerifier(s3Store, logger)

	authService, err := service.NewAuthService(*cfg, service.AuthDependencies{
		AccountRepo: accountRepo,
		FlagStore:   flagStore,
		AuditRepo:   auditRepo,
		Dispatcher:  dispatcher,
	})
	if err != nil {
		logger.Fatal("failed to init auth service", zap.Error(err))
	}

	clientService := service.NewClientService(clientRepo, auditRepo)
	caseService := service.NewCaseService(caseRepo, clientRepo, auditRepo)
	documentService := service.NewDocumentService(cfg.Documents, service.DocumentDependencies{
		DocumentRepo: documentRepo,
		AuditRepo:    auditRepo,
		Verifier:     verifier,
		Dispatcher:   dispatcher,
		Metrics:      metrics,
	})
	billingService := service.NewBillingService(invoiceRepo, caseRepo, auditRepo, dispatcher)
	calendarService := service.NewCalendarService(calendarRepo, dispatcher)
	trackingService := service.NewTimeTrackingService(service.TimeTrackingDependencies{
		EntryRepo:     entryRepo,
		TimesheetRepo: timesheetRepo,
		AuditRepo:     auditRepo,
		Dispatcher:    dispatcher,
	})
	settingsService := service.NewSettingsService(settingsRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService, logger)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), authService)

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Documents.MaxUploadBytes),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Approvals:      handlers.NewApprovalsHandler(authService),
		Clients:        handlers.NewClientsHandler(clientService),
		Cases:          handlers.NewCasesHandler(caseService),
		Documents:      handlers.NewDocumentsHandler(documentService),
		Billing:        handlers.NewBillingHandler(billingService),
		Calendar:       handlers.NewCalendarHandler(calendarService),
		TimeTracking:   handlers.NewTimeTrackingHandler(trackingService),
		Settings:       handlers.NewSettingsHandler(settingsService),
		Audit:          handlers.NewAuditHandler(auditRepo),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
