package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/depanneo/booking-platform/marketplace-service/application"
	"github.com/depanneo/booking-platform/marketplace-service/handlers"
	"github.com/depanneo/booking-platform/marketplace-service/infrastructure"
	sharedinfra "github.com/depanneo/booking-platform/shared/infrastructure"
	"github.com/depanneo/booking-platform/shared/telemetry"
	"github.com/depanneo/booking-platform/shared/validation"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Dependencies struct {
	Logger *slog.Logger

	// Database
	DB *sqlx.DB

	// Repositories
	ServiceRepository     *infrastructure.PostgresServiceRepository
	ReservationRepository *infrastructure.PostgresReservationRepository
	PaymentRepository     *infrastructure.PostgresPaymentRepository
	AssignmentRepository  *infrastructure.PostgresAssignmentRepository
	IdempotencyStore      *infrastructure.PostgresIdempotencyStore
	EventStore            *sharedinfra.PostgresEventStore

	// Use Cases
	CreateReservation       *application.CreateReservation
	ListReservations        *application.ListReservations
	GetReservation          *application.GetReservation
	GetReservationHistory   *application.GetReservationHistory
	UpdateReservationStatus *application.UpdateReservationStatus
	AssignPartner           *application.AssignPartner
	CreatePaymentIntent     *application.CreatePaymentIntent
	ConfirmPayment          *application.ConfirmPayment
	GetAssignment           *application.GetAssignment
	RespondToAssignment     *application.RespondToAssignment

	// HTTP Handlers
	Authenticator       *handlers.Authenticator
	MarketplaceHandlers *handlers.MarketplaceHandlers

	// Infrastructure
	EventPublisher *sharedinfra.SNSPublisherAdapter

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("service", config.ServiceName)),
	}

	// Initialize telemetry first
	if config.Telemetry.Enabled {
		telConfig := telemetry.MarketplaceServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
		tel, telemetryShutdown, err := telemetry.InitTelemetry(ctx, telConfig)
		if err != nil {
			deps.Logger.Warn("failed to initialize telemetry", slog.Any("error", err))
			// Continue without telemetry rather than failing
		} else {
			deps.Telemetry = tel
			deps.TelemetryShutdown = telemetryShutdown
		}
	}

	// Initialize database
	db, err := sqlx.Connect("postgres", config.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	deps.DB = db

	if config.Database.Migrate {
		if err := infrastructure.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Initialize AWS infrastructure
	eventPublisher, err := sharedinfra.NewSNSPublisherAdapter(ctx, sharedinfra.AWSSettings{
		Region:      config.AWS.Region,
		EndpointSNS: config.AWS.EndpointSNS,
	}, config.AWS.SNSTopicArn, deps.Logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create SNS publisher: %w", err)
	}
	deps.EventPublisher = eventPublisher

	// Initialize repositories
	deps.ServiceRepository = infrastructure.NewPostgresServiceRepository(db)
	deps.ReservationRepository = infrastructure.NewPostgresReservationRepository(db)
	deps.PaymentRepository = infrastructure.NewPostgresPaymentRepository(db)
	deps.AssignmentRepository = infrastructure.NewPostgresAssignmentRepository(db)
	deps.IdempotencyStore = infrastructure.NewPostgresIdempotencyStore(db)
	deps.EventStore = sharedinfra.NewPostgresEventStore(db)

	// Initialize use cases
	deps.CreateReservation = application.NewCreateReservation(
		deps.ServiceRepository,
		deps.ReservationRepository,
		deps.IdempotencyStore,
		validation.NewReservationValidator(nil),
		eventPublisher,
		deps.Logger,
	)
	deps.ListReservations = application.NewListReservations(deps.ReservationRepository)
	deps.GetReservation = application.NewGetReservation(deps.ReservationRepository)
	deps.GetReservationHistory = application.NewGetReservationHistory(deps.ReservationRepository, deps.EventStore)
	deps.UpdateReservationStatus = application.NewUpdateReservationStatus(deps.ReservationRepository, eventPublisher, deps.Logger)
	deps.AssignPartner = application.NewAssignPartner(deps.ReservationRepository, deps.AssignmentRepository, eventPublisher, deps.Logger)
	deps.CreatePaymentIntent = application.NewCreatePaymentIntent(
		deps.ReservationRepository,
		deps.PaymentRepository,
		deps.IdempotencyStore,
		eventPublisher,
		deps.Logger,
	)
	deps.ConfirmPayment = application.NewConfirmPayment(deps.PaymentRepository, deps.IdempotencyStore, eventPublisher, deps.Logger)
	deps.GetAssignment = application.NewGetAssignment(deps.AssignmentRepository)
	deps.RespondToAssignment = application.NewRespondToAssignment(deps.AssignmentRepository, eventPublisher, deps.Logger)

	// Initialize handlers
	deps.Authenticator = handlers.NewAuthenticator(config.Auth.JWTSecret)
	deps.MarketplaceHandlers = handlers.NewMarketplaceHandlers(
		deps.Authenticator,
		deps.CreateReservation,
		deps.ListReservations,
		deps.GetReservation,
		deps.GetReservationHistory,
		deps.UpdateReservationStatus,
		deps.AssignPartner,
		deps.CreatePaymentIntent,
		deps.ConfirmPayment,
		deps.GetAssignment,
		deps.RespondToAssignment,
	)

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if d.EventPublisher != nil {
		if err := d.EventPublisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event publisher: %w", err))
		}
	}

	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}
