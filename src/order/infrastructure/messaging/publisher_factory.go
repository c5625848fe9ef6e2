package messaging

import (
	"fmt"
	"log"
	"strings"

	"github.com/iagobrdev/orders-bootcamp/src/order/domain/port"
	"github.com/iagobrdev/orders-bootcamp/src/shared/infrastructure/config"
)

const (
	DriverNone     = "none"
	DriverKafka    = "kafka"
	DriverRabbitMQ = "rabbitmq"
)

// NewEventPublisher crea el publisher según events.driver
func NewEventPublisher(cfg config.EventsConfig) (port.EventPublisher, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverNone:
		log.Println("⚠️ Events driver is 'none', order events will only be logged")
		return NewLogPublisher(), nil
	case DriverKafka:
		publisher, err := NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return nil, err
		}
		return publisher, nil
	case DriverRabbitMQ:
		publisher, err := NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			return nil, err
		}
		return publisher, nil
	default:
		return nil, fmt.Errorf("unknown events driver %q", cfg.Driver)
	}
}
