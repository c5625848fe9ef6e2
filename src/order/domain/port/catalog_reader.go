package port

import (
	"context"

	catalog "github.com/iagobrdev/orders-bootcamp/src/catalog/domain/entity"
)

// CatalogReader lectura del catálogo vigente.
// Los faltantes se informan con entity.ErrCustomerNotFound y entity.ErrProductNotFound del pedido.
type CatalogReader interface {
	FindCustomerByID(ctx context.Context, id int64) (*catalog.Customer, error)
	FindProductByID(ctx context.Context, id int64) (*catalog.Product, error)
	ProductStock(ctx context.Context, id int64) (int, error)
}
