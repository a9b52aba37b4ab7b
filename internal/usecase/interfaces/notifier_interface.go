package interfaces

import (
	"context"

	"event_registration/internal/domain/entities"
)

// INotifier sends operator mail.
type INotifier interface {
	SendMail(ctx context.Context, msg entities.MailMessage) error
}
