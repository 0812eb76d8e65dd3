package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "equipbid-backend/internal/api/http"
	"equipbid-backend/internal/config"
	"equipbid-backend/internal/logger"
	"equipbid-backend/internal/repository/postgres"
	"equipbid-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Equipbid Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Auction configuration", "duration_hours", cfg.Auction.DurationHours)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	eligibilitySvc := service.NewEligibilityService(store.EquipmentRepository, store.UserRepository, store.CompanyRepository, store.PartnershipRepository)
	requestSvc := service.NewRequestService(
		store.RequestRepository,
		store.BidRepository,
		store.UserRepository,
		store.NotificationRepository,
		eligibilitySvc,
		emailSvc,
		cfg.Auction.DurationHours,
	)
	bidSvc := service.NewBidService(store.BidRepository, store.RequestRepository, eligibilitySvc)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// Set up HTTP server
	router := httpapi.NewRouter(requestSvc, bidSvc, eligibilitySvc, noteSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
