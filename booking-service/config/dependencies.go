package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/depanneo/booking-platform/booking-service/application"
	"github.com/depanneo/booking-platform/booking-service/handlers"
	"github.com/depanneo/booking-platform/booking-service/infrastructure"
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

	// Repositories and clients
	SagaRunRepository *infrastructure.PostgresSagaRunRepository
	MarketplaceClient *infrastructure.HTTPMarketplaceClient

	// Use Cases
	BookService         *application.BookService
	ReservationView     *application.ReservationView
	RespondToAssignment *application.RespondToAssignment
	AdminOverride       *application.AdminOverride

	// HTTP Handlers
	BookingHandlers *handlers.BookingHandlers
	RateLimiter     *handlers.RateLimiter

	// Event Handlers
	BookingEventHandlers *handlers.BookingEventHandlers

	// Infrastructure
	EventPublisher  *sharedinfra.SNSPublisherAdapter
	EventSubscriber *sharedinfra.SQSSubscriberAdapter

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
		telConfig := telemetry.BookingServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
		tel, telemetryShutdown, err := telemetry.InitTelemetry(ctx, telConfig)
		if err != nil {
			deps.Logger.Warn("failed to initialize telemetry", slog.Any("error", err))
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
	awsSettings := sharedinfra.AWSSettings{
		Region:      config.AWS.Region,
		EndpointSNS: config.AWS.EndpointSNS,
		EndpointSQS: config.AWS.EndpointSQS,
	}

	eventPublisher, err := sharedinfra.NewSNSPublisherAdapter(ctx, awsSettings, config.AWS.SNSTopicArn, deps.Logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create SNS publisher: %w", err)
	}
	deps.EventPublisher = eventPublisher
	deps.EventSubscriber = sharedinfra.NewSQSSubscriberAdapter(awsSettings, config.AWS.SQSQueueURL, deps.Logger)

	// Initialize repositories and clients
	deps.SagaRunRepository = infrastructure.NewPostgresSagaRunRepository(db)
	deps.MarketplaceClient = infrastructure.NewHTTPMarketplaceClient(config.Marketplace.BaseURL, config.Marketplace.HTTPTimeout)

	// Initialize use cases
	deps.ReservationView = application.NewReservationView(deps.MarketplaceClient, config.View.TTL)
	deps.BookService = application.NewBookService(
		deps.MarketplaceClient,
		deps.SagaRunRepository,
		eventPublisher,
		validation.NewReservationValidator(nil),
		config.Saga.StepTimeout,
		deps.Logger,
	)
	deps.RespondToAssignment = application.NewRespondToAssignment(deps.MarketplaceClient, deps.ReservationView, deps.Logger)
	deps.AdminOverride = application.NewAdminOverride(deps.MarketplaceClient, deps.ReservationView, deps.Logger)

	// Initialize handlers
	deps.RateLimiter = handlers.NewRateLimiter(config.RateLimit.RPS, config.RateLimit.Burst)
	deps.BookingHandlers = handlers.NewBookingHandlers(
		handlers.NewAuthenticator(deps.MarketplaceClient),
		deps.RateLimiter,
		deps.BookService,
		deps.ReservationView,
		deps.RespondToAssignment,
		deps.AdminOverride,
	)
	deps.BookingEventHandlers = handlers.NewBookingEventHandlers(deps.ReservationView, deps.Logger)

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.EventSubscriber != nil {
		if err := d.EventSubscriber.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event subscriber: %w", err))
		}
	}

	if d.RateLimiter != nil {
		d.RateLimiter.Close()
	}

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
