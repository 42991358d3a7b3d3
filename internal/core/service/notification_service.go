package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/minimart/storefront-api/internal/core/ports"
)

type notificationService struct {
	mailer ports.Mailer
	log    zerolog.Logger
}

// NewNotificationService returns a NotificationService that delivers
// notifications through the configured mailer.
func NewNotificationService(mailer ports.Mailer, log zerolog.Logger) ports.NotificationService {
	return &notificationService{mailer: mailer, log: log}
}

// Process delivers a single queued notification.
func (s *notificationService) Process(ctx context.Context, n ports.NotificationInput) error {
	if n.Recipient == "" {
		return fmt.Errorf("process notification: empty recipient")
	}

	if err := s.mailer.Send(ctx, n.Recipient, n.Subject, n.Body); err != nil {
		return fmt.Errorf("process notification: %w", err)
	}

	s.log.Info().Str("recipient", n.Recipient).Str("subject", n.Subject).Msg("notification delivered")
	return nil
}
