package infrastructure

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/depanneo/booking-platform/shared/events"
	"github.com/pkg/errors"
)

// SQSSubscriberAdapter builds the SQS client lazily and runs one subscriber
type SQSSubscriberAdapter struct {
	settings      AWSSettings
	queueURL      string
	logger        *slog.Logger
	sqsSubscriber *SQSEventSubscriber
}

// NewSQSSubscriberAdapter creates a new SQS subscriber adapter
func NewSQSSubscriberAdapter(settings AWSSettings, queueURL string, logger *slog.Logger) *SQSSubscriberAdapter {
	return &SQSSubscriberAdapter{
		settings: settings,
		queueURL: queueURL,
		logger:   logger,
	}
}

// Subscribe starts delivering queue messages to handler until ctx is done or Close is called
func (s *SQSSubscriberAdapter) Subscribe(ctx context.Context, handler events.EventHandler) error {
	if s.sqsSubscriber != nil {
		return errors.New("subscriber is already running")
	}

	cfg, err := loadAWSConfig(ctx, s.settings)
	if err != nil {
		return err
	}

	sqsClient := sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if s.settings.EndpointSQS != "" {
			o.BaseEndpoint = aws.String(s.settings.EndpointSQS)
		}
	})

	s.sqsSubscriber = NewSQSEventSubscriber(sqsClient, s.queueURL, handler, s.logger)

	if err := s.sqsSubscriber.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start SQS subscriber")
	}

	return nil
}

// Close stops the subscriber
func (s *SQSSubscriberAdapter) Close() error {
	if s.sqsSubscriber != nil {
		s.sqsSubscriber.Stop()
	}
	return nil
}
