package ports

import "context"

// NotificationInput is the DTO passed from the transport layer to the
// notification workers. Recipient is used as the sharding key so that mails
// to the same address are delivered in order.
type NotificationInput struct {
	Recipient string
	Subject   string
	Body      string
}

// NotificationService delivers a single notification.
type NotificationService interface {
	Process(ctx context.Context, n NotificationInput) error
}

// Mailer abstracts the outbound mail integration.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
