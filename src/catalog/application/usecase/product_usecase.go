package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/iagobrdev/orders-bootcamp/src/catalog/application/request"
	"github.com/iagobrdev/orders-bootcamp/src/catalog/domain/entity"
	"github.com/iagobrdev/orders-bootcamp/src/catalog/domain/port"

	"github.com/shopspring/decimal"
)

// ProductUseCase agrupa las operaciones sobre productos
type ProductUseCase struct {
	productRepo port.ProductRepository
}

// NewProductUseCase crea una nueva instancia del caso de uso
func NewProductUseCase(productRepo port.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

func (uc *ProductUseCase) List(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.FindAll(ctx)
}

func (uc *ProductUseCase) Get(ctx context.Context, id int64) (*entity.Product, error) {
	return uc.productRepo.FindByID(ctx, id)
}

func (uc *ProductUseCase) SearchByName(ctx context.Context, name string) ([]*entity.Product, error) {
	return uc.productRepo.SearchByName(ctx, strings.TrimSpace(name))
}

// SearchByPriceRange exige ambos límites, no negativos y min <= max
func (uc *ProductUseCase) SearchByPriceRange(ctx context.Context, min, max *decimal.Decimal) ([]*entity.Product, error) {
	if min == nil || max == nil {
		return nil, fmt.Errorf("%w: min and max prices are required", entity.ErrInvalidPriceRange)
	}
	if min.IsNegative() || max.IsNegative() {
		return nil, fmt.Errorf("%w: prices cannot be negative", entity.ErrInvalidPriceRange)
	}
	if min.GreaterThan(*max) {
		return nil, fmt.Errorf("%w: min price cannot be greater than max price", entity.ErrInvalidPriceRange)
	}
	return uc.productRepo.FindByPriceRange(ctx, *min, *max)
}

func (uc *ProductUseCase) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	c, err := entity.ParseProductCategory(category)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, category)
	}
	return uc.productRepo.FindByCategory(ctx, c)
}

func (uc *ProductUseCase) Count(ctx context.Context) (int64, error) {
	return uc.productRepo.Count(ctx)
}

// Stock devuelve la cantidad disponible de un producto
func (uc *ProductUseCase) Stock(ctx context.Context, id int64) (int, error) {
	product, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return product.StockQuantity, nil
}

func (uc *ProductUseCase) Create(ctx context.Context, req request.ProductRequest) (*entity.Product, error) {
	product, err := buildProduct(req)
	if err != nil {
		return nil, err
	}
	if err := uc.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	log.Printf("✅ Product created: id=%d", product.ID)
	return product, nil
}

func (uc *ProductUseCase) Update(ctx context.Context, id int64, req request.ProductRequest) (*entity.Product, error) {
	if _, err := uc.productRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	product, err := buildProduct(req)
	if err != nil {
		return nil, err
	}
	product.ID = id
	if err := uc.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateStock reemplaza la cantidad en stock
func (uc *ProductUseCase) UpdateStock(ctx context.Context, id int64, quantity int) (*entity.Product, error) {
	if quantity < 0 {
		return nil, entity.ErrNegativeStock
	}
	product, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.productRepo.UpdateStock(ctx, id, quantity); err != nil {
		return nil, err
	}
	product.StockQuantity = quantity
	return product, nil
}

func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	exists, err := uc.productRepo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking product: %w", err)
	}
	if !exists {
		return entity.ErrProductNotFound
	}
	return uc.productRepo.DeleteByID(ctx, id)
}

func buildProduct(req request.ProductRequest) (*entity.Product, error) {
	var category entity.ProductCategory
	if strings.TrimSpace(req.Category) != "" {
		c, err := entity.ParseProductCategory(req.Category)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, req.Category)
		}
		category = c
	}
	return entity.NewProduct(req.Name, req.Description, req.Price, req.StockQuantity, category)
}
