package response

import (
	"time"

	"github.com/iagobrdev/orders-bootcamp/src/order/domain/entity"

	"github.com/shopspring/decimal"
)

// OrderResponse representa un pedido en la API
type OrderResponse struct {
	ID                int64               `json:"id"`
	CustomerID        int64               `json:"customer_id"`
	CustomerName      string              `json:"customer_name,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	Status            entity.OrderStatus  `json:"status"`
	StatusDescription string              `json:"status_description"`
	PaymentMethod     string              `json:"payment_method,omitempty"`
	Items             []OrderItemResponse `json:"items"`
	Total             decimal.Decimal     `json:"total"`
}

// OrderItemResponse representa una línea dentro del pedido
type OrderItemResponse struct {
	ProductID   int64               `json:"product_id"`
	ProductName string              `json:"product_name,omitempty"`
	Quantity    int                 `json:"quantity"`
	UnitPrice   decimal.NullDecimal `json:"unit_price"`
	Subtotal    decimal.NullDecimal `json:"subtotal"`
}

// OrderTotalResponse total de un pedido
type OrderTotalResponse struct {
	OrderID int64   `json:"order_id"`
	Total   float64 `json:"total"`
}

// CountResponse respuesta de conteo
type CountResponse struct {
	Count int64 `json:"count"`
}

// NewOrderResponse convierte el aggregate en su DTO
func NewOrderResponse(order *entity.Order) OrderResponse {
	resp := OrderResponse{
		ID:                order.ID,
		CustomerID:        order.CustomerID(),
		CreatedAt:         order.CreatedAt,
		Status:            order.Status,
		StatusDescription: order.Status.Description(),
		PaymentMethod:     string(order.PaymentMethod),
		Items:             make([]OrderItemResponse, 0, len(order.Items)),
		Total:             order.Total,
	}
	if order.Customer != nil {
		resp.CustomerName = order.Customer.Name
	}
	for _, item := range order.Items {
		itemResp := OrderItemResponse{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		}
		if item.Product != nil {
			itemResp.ProductName = item.Product.Name
		}
		resp.Items = append(resp.Items, itemResp)
	}
	return resp
}

// NewOrderListResponse convierte una lista de pedidos
func NewOrderListResponse(orders []*entity.Order) []OrderResponse {
	list := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		list = append(list, NewOrderResponse(order))
	}
	return list
}
