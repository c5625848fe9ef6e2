package port

import (
	"context"

	"github.com/iagobrdev/orders-bootcamp/src/catalog/domain/entity"

	"github.com/shopspring/decimal"
)

// ProductRepository define el contrato de persistencia de productos
type ProductRepository interface {
	FindAll(ctx context.Context) ([]*entity.Product, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	SearchByName(ctx context.Context, name string) ([]*entity.Product, error)
	FindByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]*entity.Product, error)
	FindByCategory(ctx context.Context, category entity.ProductCategory) ([]*entity.Product, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// Save inserta si ID == 0, si no actualiza
	Save(ctx context.Context, product *entity.Product) error
	UpdateStock(ctx context.Context, id int64, quantity int) error
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
