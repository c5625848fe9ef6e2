package request

import "github.com/iagobrdev/orders-bootcamp/src/order/domain/service"

// OrderItemRequest producto y cantidad de una línea.
// Los valores inválidos los rechaza el validador del pedido, no el binding.
type OrderItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CreateOrderRequest representa la petición para crear un pedido
type CreateOrderRequest struct {
	CustomerID    int64              `json:"customer_id"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	Items         []OrderItemRequest `json:"items"`
}

// UpdateOrderRequest reemplaza cliente, estado, forma de pago e items
type UpdateOrderRequest struct {
	CustomerID    int64              `json:"customer_id"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	Items         []OrderItemRequest `json:"items"`
}

// UpdateOrderStatusRequest nuevo estado del pedido
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r CreateOrderRequest) RequestedItems() []service.RequestedItem {
	return toRequestedItems(r.Items)
}

func (r UpdateOrderRequest) RequestedItems() []service.RequestedItem {
	return toRequestedItems(r.Items)
}

func toRequestedItems(items []OrderItemRequest) []service.RequestedItem {
	requested := make([]service.RequestedItem, 0, len(items))
	for _, item := range items {
		requested = append(requested, service.RequestedItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return requested
}
