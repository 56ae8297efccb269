package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/moverank/leadgen/internal/config"
	"github.com/moverank/leadgen/internal/infra/database"
	"github.com/moverank/leadgen/internal/infra/http/handlers"
	"github.com/moverank/leadgen/internal/infra/integration/openai"
	"github.com/moverank/leadgen/internal/infra/integration/stripe"
	"github.com/moverank/leadgen/internal/infra/mail"
	"github.com/moverank/leadgen/internal/logging"
	"github.com/moverank/leadgen/internal/usecase"
)

func main() {
	migrateFlag := flag.Bool("migrate", false, "Run database migrations before starting")
	migrateDirFlag := flag.String("migrate-dir", "migrations", "Migration files directory")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger("leadgen-api", cfg.LogLevel)

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if *migrateFlag {
		logger.Info().Str("dir", *migrateDirFlag).Msg("running database migrations")
		if err := database.RunMigrations(db, *migrateDirFlag); err != nil {
			logger.Fatal().Err(err).Msg("migration failed")
		}
	}

	// Repositories
	leadRepo := database.NewLeadRepository(db)
	customerRepo := database.NewCustomerRepository(db)
	subRepo := database.NewSubscriptionRepository(db)
	purchaseRepo := database.NewPurchaseRepository(db)
	assignmentRepo := database.NewAssignmentRepository(db)

	// Integrations
	scorer := openai.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, logger)
	billing := stripe.NewClient(cfg.StripeSecretKey, logger)

	var mailSender usecase.EmailService
	if cfg.MailConfigured() {
		mailSender = mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPassword, cfg.MailFrom)
	} else {
		logger.Warn().Msg("MAIL_HOST not set, welcome emails disabled")
	}

	// Usecases
	scoreUC := usecase.NewScoreLeadUseCase(leadRepo, scorer, logger)
	registerUC := usecase.NewRegisterCustomerUseCase(customerRepo, subRepo, billing, mailSender, logger)
	assignUC := usecase.NewAssignLeadUseCase(assignmentRepo, customerRepo, billing, logger)
	analyticsUC := usecase.NewAnalyticsUseCase(customerRepo, subRepo, leadRepo, purchaseRepo)

	// Handlers
	leadHandler := handlers.NewLeadHandler(scoreUC, logger)
	customerHandler := handlers.NewCustomerHandler(registerUC, customerRepo, subRepo, purchaseRepo, logger)
	adminHandler := handlers.NewAdminHandler(leadRepo, customerRepo, assignUC, analyticsUC, logger)
	healthHandler := handlers.NewHealthHandler(db, cfg.StripeSecretKey != "", cfg.OpenAIAPIKey != "")

	router := handlers.NewRouter(handlers.RouterConfig{
		AdminUsername:  cfg.AdminUsername,
		AdminPassword:  cfg.AdminPassword,
		AllowedOrigins: []string{"*"},
		FrontendDir:    cfg.FrontendDir,
	}, leadHandler, customerHandler, adminHandler, healthHandler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info().Str("port", cfg.Port).Msg("leadgen API listening")
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
