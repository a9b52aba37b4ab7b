package interfaces

import (
	"context"

	"event_registration/internal/domain/entities"
)

// IOrderEventPublisher announces order lifecycle events to downstream consumers.
type IOrderEventPublisher interface {
	PublishOrderFinalized(ctx context.Context, o entities.Order) error
}
