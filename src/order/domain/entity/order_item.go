package entity

import (
	catalog "github.com/iagobrdev/orders-bootcamp/src/catalog/domain/entity"

	"github.com/shopspring/decimal"
)

// OrderItem línea de un pedido (Entity dentro del Aggregate).
// UnitPrice y Subtotal quedan vacíos hasta que el pedido se calcula.
type OrderItem struct {
	OrderID   int64               `json:"order_id"`
	Product   *catalog.Product    `json:"product"`
	Quantity  int                 `json:"quantity"`
	UnitPrice decimal.NullDecimal `json:"unit_price"`
	Subtotal  decimal.NullDecimal `json:"subtotal"`
}

// NewOrderItem crea una línea sin precio
func NewOrderItem(orderID int64, product *catalog.Product, quantity int) *OrderItem {
	return &OrderItem{
		OrderID:  orderID,
		Product:  product,
		Quantity: quantity,
	}
}

// ProductID devuelve 0 cuando la línea no tiene producto
func (i OrderItem) ProductID() int64 {
	if i.Product == nil {
		return 0
	}
	return i.Product.ID
}

// Price fija el precio unitario vigente y recalcula el subtotal
func (i *OrderItem) Price(unitPrice decimal.Decimal) {
	i.UnitPrice = decimal.NewNullDecimal(unitPrice)
	i.Subtotal = decimal.NewNullDecimal(unitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))))
}
