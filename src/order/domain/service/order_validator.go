package service

import (
	"context"
	"fmt"
	"log"

	"github.com/iagobrdev/orders-bootcamp/src/order/domain/entity"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/port"
)

// OrderValidator valida un pedido contra el catálogo vigente.
// Falla en la primera violación y nunca modifica el pedido.
type OrderValidator struct {
	catalog port.CatalogReader
}

// NewOrderValidator crea una nueva instancia del validador
func NewOrderValidator(catalog port.CatalogReader) *OrderValidator {
	return &OrderValidator{catalog: catalog}
}

// Validate revisa cliente e items en orden de entrada
func (v *OrderValidator) Validate(ctx context.Context, order *entity.Order) error {
	if order == nil {
		return entity.ErrInvalidOrder
	}
	if err := v.validateCustomer(ctx, order); err != nil {
		return err
	}

	if len(order.Items) == 0 {
		log.Printf("⚠️ Order %d has no items, total will be zero", order.ID)
		return nil
	}

	for _, item := range order.Items {
		if err := v.validateItem(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (v *OrderValidator) validateCustomer(ctx context.Context, order *entity.Order) error {
	customerID := order.CustomerID()
	if customerID == 0 {
		return entity.ErrCustomerRequired
	}
	if _, err := v.catalog.FindCustomerByID(ctx, customerID); err != nil {
		return err
	}
	return nil
}

func (v *OrderValidator) validateItem(ctx context.Context, item entity.OrderItem) error {
	productID := item.ProductID()
	if productID == 0 {
		return entity.ErrProductRequired
	}
	if _, err := v.catalog.FindProductByID(ctx, productID); err != nil {
		return err
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("%w: product %d", entity.ErrInvalidQuantity, productID)
	}

	stock, err := v.catalog.ProductStock(ctx, productID)
	if err != nil {
		return err
	}
	if item.Quantity > stock {
		return fmt.Errorf("%w: product %d has %d units, requested %d",
			entity.ErrInsufficientStock, productID, stock, item.Quantity)
	}
	return nil
}
