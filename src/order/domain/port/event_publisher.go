package port

import (
	"context"

	"github.com/iagobrdev/orders-bootcamp/src/order/domain/entity"
)

// EventPublisher publica eventos de dominio de pedidos
type EventPublisher interface {
	Publish(ctx context.Context, event entity.OrderEvent) error
	Close() error
}
