package entity

import (
	"time"

	catalog "github.com/iagobrdev/orders-bootcamp/src/catalog/domain/entity"

	"github.com/shopspring/decimal"
)

// Order representa un pedido (Aggregate Root).
// Contiene a lo sumo un OrderItem por producto.
type Order struct {
	ID            int64             `json:"id"`
	Customer      *catalog.Customer `json:"customer"`
	CreatedAt     time.Time         `json:"created_at"`
	Status        OrderStatus       `json:"status"`
	PaymentMethod PaymentMethod     `json:"payment_method,omitempty"`
	Items         []OrderItem       `json:"items"`
	Total         decimal.Decimal   `json:"total"`
}

// NewOrder crea el cascarón de un pedido todavía sin items ni fecha
func NewOrder(customer *catalog.Customer, paymentMethod PaymentMethod) *Order {
	return &Order{
		Customer:      customer,
		Status:        OrderStatusPending,
		PaymentMethod: paymentMethod,
		Items:         []OrderItem{},
		Total:         decimal.Zero,
	}
}

// CustomerID devuelve 0 cuando el pedido no tiene cliente
func (o *Order) CustomerID() int64 {
	if o.Customer == nil {
		return 0
	}
	return o.Customer.ID
}

// AddItem agrega un item nuevo (DDD: modificar aggregate)
func (o *Order) AddItem(product *catalog.Product, quantity int) {
	o.Items = append(o.Items, *NewOrderItem(o.ID, product, quantity))
}

// IndexOf devuelve la posición del item del producto o -1
func (o *Order) IndexOf(productID int64) int {
	for i := range o.Items {
		if o.Items[i].ProductID() == productID {
			return i
		}
	}
	return -1
}

// TotalItems retorna el número de líneas del pedido
func (o *Order) TotalItems() int {
	return len(o.Items)
}

// Place marca el pedido como recién creado
func (o *Order) Place(now time.Time) {
	o.CreatedAt = now
	o.Status = OrderStatusPending
}

// ChangeStatus sobrescribe el estado. Con enforce, un estado final no puede cambiar.
func (o *Order) ChangeStatus(status OrderStatus, enforce bool) error {
	if enforce && o.Status.Final() && status != o.Status {
		return ErrInvalidStatusTransition
	}
	o.Status = status
	return nil
}
