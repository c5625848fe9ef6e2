package catalog

import (
	"context"
	"errors"
	"fmt"

	catalogEntity "github.com/iagobrdev/orders-bootcamp/src/catalog/domain/entity"
	catalogPort "github.com/iagobrdev/orders-bootcamp/src/catalog/domain/port"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/entity"
)

// RepositoryCatalogReader lee clientes y productos desde los repositorios del catálogo
// y traduce los faltantes a los errores del pedido
type RepositoryCatalogReader struct {
	customers catalogPort.CustomerRepository
	products  catalogPort.ProductRepository
}

// NewRepositoryCatalogReader crea el adaptador del catálogo
func NewRepositoryCatalogReader(customers catalogPort.CustomerRepository, products catalogPort.ProductRepository) *RepositoryCatalogReader {
	return &RepositoryCatalogReader{
		customers: customers,
		products:  products,
	}
}

func (r *RepositoryCatalogReader) FindCustomerByID(ctx context.Context, id int64) (*catalogEntity.Customer, error) {
	customer, err := r.customers.FindByID(ctx, id)
	if errors.Is(err, catalogEntity.ErrCustomerNotFound) {
		return nil, fmt.Errorf("%w: customer %d", entity.ErrCustomerNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *RepositoryCatalogReader) FindProductByID(ctx context.Context, id int64) (*catalogEntity.Product, error) {
	product, err := r.products.FindByID(ctx, id)
	if errors.Is(err, catalogEntity.ErrProductNotFound) {
		return nil, fmt.Errorf("%w: product %d", entity.ErrProductNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

// ProductStock devuelve el stock vigente del producto
func (r *RepositoryCatalogReader) ProductStock(ctx context.Context, id int64) (int, error) {
	product, err := r.FindProductByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return product.StockQuantity, nil
}
