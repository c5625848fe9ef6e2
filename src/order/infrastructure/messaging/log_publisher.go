package messaging

import (
	"context"
	"log"

	"github.com/iagobrdev/orders-bootcamp/src/order/domain/entity"
)

// LogPublisher solo deja el evento en el log. Se usa cuando no hay broker configurado.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) Publish(_ context.Context, event entity.OrderEvent) error {
	log.Printf("📣 Event %s for order %d (%s)", event.EventType, event.AggregateID, event.EventID)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
