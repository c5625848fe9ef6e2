package service

import (
	"context"
	"errors"
	"log"

	"github.com/iagobrdev/orders-bootcamp/src/order/domain/entity"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/port"

	"github.com/shopspring/decimal"
)

// OrderCalculator fija precios vigentes y calcula subtotales y total
type OrderCalculator struct {
	catalog port.CatalogReader
}

// NewOrderCalculator crea una nueva instancia del calculador
func NewOrderCalculator(catalog port.CatalogReader) *OrderCalculator {
	return &OrderCalculator{catalog: catalog}
}

// Prepare toma el precio actual de cada producto y recalcula el total.
// Un item cuyo producto ya no existe queda sin precio y no suma.
func (c *OrderCalculator) Prepare(ctx context.Context, order *entity.Order) error {
	if order == nil {
		return entity.ErrInvalidOrder
	}

	for i := range order.Items {
		item := &order.Items[i]
		product, err := c.catalog.FindProductByID(ctx, item.ProductID())
		if errors.Is(err, entity.ErrProductNotFound) {
			log.Printf("Skipping price of product %d on order %d: not found", item.ProductID(), order.ID)
			continue
		}
		if err != nil {
			return err
		}

		item.Price(product.Price)
		item.OrderID = order.ID
	}

	order.Total = c.Total(order)
	return nil
}

// Subtotal precio unitario por cantidad; cero si el item no tiene precio
func (c *OrderCalculator) Subtotal(item entity.OrderItem) decimal.Decimal {
	if !item.UnitPrice.Valid {
		return decimal.Zero
	}
	return item.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// Total suma de subtotales; cero para un pedido sin items
func (c *OrderCalculator) Total(order *entity.Order) decimal.Decimal {
	total := decimal.Zero
	if order == nil {
		return total
	}
	for _, item := range order.Items {
		total = total.Add(c.Subtotal(item))
	}
	return total
}
