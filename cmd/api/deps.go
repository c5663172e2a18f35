package main

import (
	"log"

	"bahikhata/internal/domain/business"
	"bahikhata/internal/domain/customer"
	"bahikhata/internal/domain/ledger"
	"bahikhata/internal/events/kafka"
	"bahikhata/internal/infrastructure/postgres"
	httphandlers "bahikhata/internal/interfaces/http"
	"bahikhata/internal/shared/auth"
	"bahikhata/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB *postgres.DB

	// Handlers
	AuthHandler     *httphandlers.AuthHandler
	BusinessHandler *httphandlers.BusinessHandler
	CustomerHandler *httphandlers.CustomerHandler
	LedgerHandler   *httphandlers.LedgerHandler
	ReportHandler   *httphandlers.ReportHandler

	// Auth
	JWT *auth.JWT

	publisher *kafka.Publisher
}

// NewDependencies initializes all application dependencies.
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	// Connect to database
	db, err := postgres.New(cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}
	log.Println("Connected to database")

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	businessRepo := postgres.NewBusinessRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)

	// Initialize event publisher (optional)
	var publisher *kafka.Publisher
	var ledgerPublisher ledger.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = kafka.NewPublisher(cfg.Kafka.Brokers)
		ledgerPublisher = publisher
		log.Printf("Kafka publisher enabled (brokers=%v)", cfg.Kafka.Brokers)
	} else {
		log.Println("Kafka publisher disabled (no brokers configured)")
	}

	// Initialize domain services
	businessService := business.NewService(businessRepo)
	ledgerService := ledger.NewService(transactionRepo, customerRepo, ledgerPublisher)
	customerService := customer.NewService(customerRepo, transactionRepo)

	// Initialize auth components
	jwt := auth.NewJWT(cfg.JWT.Secret)

	// Initialize handlers
	authHandler := httphandlers.NewAuthHandler(userRepo, jwt)
	businessHandler := httphandlers.NewBusinessHandler(businessService)
	customerHandler := httphandlers.NewCustomerHandler(customerService, ledgerService, businessService)
	ledgerHandler := httphandlers.NewLedgerHandler(ledgerService, businessService)
	reportHandler := httphandlers.NewReportHandler(ledgerService, businessService)

	return &Dependencies{
		DB:              db,
		AuthHandler:     authHandler,
		BusinessHandler: businessHandler,
		CustomerHandler: customerHandler,
		LedgerHandler:   ledgerHandler,
		ReportHandler:   reportHandler,
		JWT:             jwt,
		publisher:       publisher,
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.publisher != nil {
		if err := d.publisher.Close(); err != nil {
			log.Printf("Error closing Kafka publisher: %v", err)
		}
	}
	if d.DB != nil {
		d.DB.Close()
	}
}
