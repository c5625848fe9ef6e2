package service

import (
	"context"

	"github.com/iagobrdev/orders-bootcamp/src/order/domain/entity"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/port"
)

// RequestedItem producto y cantidad pedidos por el cliente
type RequestedItem struct {
	ProductID int64
	Quantity  int
}

// MergeDuplicates deja un único pedido por producto.
// Gana la última cantidad y se conserva el orden de primera aparición.
func MergeDuplicates(requested []RequestedItem) []RequestedItem {
	merged := make([]RequestedItem, 0, len(requested))
	position := make(map[int64]int, len(requested))
	for _, r := range requested {
		if i, ok := position[r.ProductID]; ok {
			merged[i].Quantity = r.Quantity
			continue
		}
		position[r.ProductID] = len(merged)
		merged = append(merged, r)
	}
	return merged
}

// OrderReconciler aplica un conjunto de items pedido sobre un pedido ya guardado
type OrderReconciler struct {
	catalog port.CatalogReader
}

// NewOrderReconciler crea una nueva instancia del reconciliador
func NewOrderReconciler(catalog port.CatalogReader) *OrderReconciler {
	return &OrderReconciler{catalog: catalog}
}

// Reconcile quita los items no pedidos, actualiza cantidades y agrega productos nuevos.
// Si algún producto nuevo no existe el pedido queda intacto.
func (r *OrderReconciler) Reconcile(ctx context.Context, order *entity.Order, requested []RequestedItem) error {
	if order == nil {
		return entity.ErrInvalidOrder
	}

	requested = MergeDuplicates(requested)
	items := make([]entity.OrderItem, 0, len(requested))
	for _, req := range requested {
		if idx := order.IndexOf(req.ProductID); idx >= 0 && req.ProductID != 0 {
			item := order.Items[idx]
			item.Quantity = req.Quantity
			items = append(items, item)
			continue
		}

		if req.ProductID == 0 {
			return entity.ErrProductRequired
		}
		product, err := r.catalog.FindProductByID(ctx, req.ProductID)
		if err != nil {
			return err
		}
		items = append(items, *entity.NewOrderItem(order.ID, product, req.Quantity))
	}

	order.Items = items
	return nil
}
