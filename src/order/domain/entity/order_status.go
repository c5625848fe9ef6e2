package entity

import "strings"

// OrderStatus estado de un pedido
type OrderStatus string

const (
	OrderStatusPending       OrderStatus = "PENDING"
	OrderStatusApproved      OrderStatus = "APPROVED"
	OrderStatusInPreparation OrderStatus = "IN_PREPARATION"
	OrderStatusShipped       OrderStatus = "SHIPPED"
	OrderStatusDelivered     OrderStatus = "DELIVERED"
	OrderStatusCancelled     OrderStatus = "CANCELLED"
)

// OrderStatuses en orden de ciclo de vida
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusApproved,
	OrderStatusInPreparation,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Description nombre amigable
func (s OrderStatus) Description() string {
	switch s {
	case OrderStatusPending:
		return "Pending"
	case OrderStatusApproved:
		return "Approved"
	case OrderStatusInPreparation:
		return "In Preparation"
	case OrderStatusShipped:
		return "Shipped"
	case OrderStatusDelivered:
		return "Delivered"
	case OrderStatusCancelled:
		return "Cancelled"
	default:
		return ""
	}
}

func (s OrderStatus) Details() string {
	switch s {
	case OrderStatusPending:
		return "Order awaiting approval"
	case OrderStatusApproved:
		return "Order approved by the customer"
	case OrderStatusInPreparation:
		return "Products being prepared"
	case OrderStatusShipped:
		return "Order shipped for delivery"
	case OrderStatusDelivered:
		return "Order delivered to the customer"
	case OrderStatusCancelled:
		return "Order cancelled"
	default:
		return ""
	}
}

func (s OrderStatus) Valid() bool {
	return s.Description() != ""
}

// Cancellable pedidos que todavía no salieron
func (s OrderStatus) Cancellable() bool {
	return s == OrderStatusPending || s == OrderStatusApproved || s == OrderStatusInPreparation
}

// Editable pedidos cuyos items todavía pueden cambiar
func (s OrderStatus) Editable() bool {
	return s == OrderStatusPending || s == OrderStatusApproved
}

// Final estados terminales
func (s OrderStatus) Final() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// ParseOrderStatus acepta el código ("IN_PREPARATION") o la descripción ("in preparation")
func ParseOrderStatus(s string) (OrderStatus, error) {
	s = strings.TrimSpace(s)
	for _, status := range OrderStatuses {
		if strings.EqualFold(string(status), s) || strings.EqualFold(status.Description(), s) {
			return status, nil
		}
	}
	return "", ErrInvalidStatus
}
