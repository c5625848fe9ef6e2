package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderEventType tipo de evento de dominio de pedidos
type OrderEventType string

const (
	EventOrderCreated       OrderEventType = "order.created"
	EventOrderUpdated       OrderEventType = "order.updated"
	EventOrderStatusChanged OrderEventType = "order.status_changed"
	EventOrderDeleted       OrderEventType = "order.deleted"

	OrderAggregateType = "order"
)

// OrderEvent envelope publicado después de cada escritura confirmada
type OrderEvent struct {
	EventID       string         `json:"event_id"`
	EventType     OrderEventType `json:"event_type"`
	AggregateType string         `json:"aggregate_type"`
	AggregateID   int64          `json:"aggregate_id"`
	OccurredAt    time.Time      `json:"occurred_at"`
	Payload       *OrderSnapshot `json:"payload,omitempty"`
}

// OrderSnapshot estado del pedido en el momento del evento
type OrderSnapshot struct {
	CustomerID     int64            `json:"customer_id,omitempty"`
	Status         OrderStatus      `json:"status,omitempty"`
	PreviousStatus OrderStatus      `json:"previous_status,omitempty"`
	PaymentMethod  PaymentMethod    `json:"payment_method,omitempty"`
	Total          *decimal.Decimal `json:"total,omitempty"`
	Items          []ItemSnapshot   `json:"items,omitempty"`
}

type ItemSnapshot struct {
	ProductID int64               `json:"product_id"`
	Quantity  int                 `json:"quantity"`
	UnitPrice decimal.NullDecimal `json:"unit_price"`
	Subtotal  decimal.NullDecimal `json:"subtotal"`
}

// NewOrderEvent crea un evento con id y fecha propios
func NewOrderEvent(eventType OrderEventType, orderID int64, payload *OrderSnapshot) OrderEvent {
	return OrderEvent{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		AggregateType: OrderAggregateType,
		AggregateID:   orderID,
		OccurredAt:    time.Now().UTC(),
		Payload:       payload,
	}
}

// Snapshot captura cliente, estado, pago, total e items
func (o *Order) Snapshot() *OrderSnapshot {
	total := o.Total
	snapshot := &OrderSnapshot{
		CustomerID:    o.CustomerID(),
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		Total:         &total,
		Items:         make([]ItemSnapshot, 0, len(o.Items)),
	}
	for _, item := range o.Items {
		snapshot.Items = append(snapshot.Items, ItemSnapshot{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}
	return snapshot
}
