package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iagobrdev/orders-bootcamp/src/catalog/domain/entity"
	domainCriteria "github.com/iagobrdev/orders-bootcamp/src/shared/domain/criteria"
	"github.com/iagobrdev/orders-bootcamp/src/shared/infrastructure/criteria"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const productSelect = `SELECT id, name, COALESCE(description, '') AS description, price, stock_quantity, COALESCE(category, '') AS category FROM products`

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL
type ProductPostgresRepository struct {
	db        *sqlx.DB
	converter *criteria.SQLCriteriaConverter
}

// NewProductPostgresRepository crea una nueva instancia del repositorio
func NewProductPostgresRepository(db *sqlx.DB) *ProductPostgresRepository {
	return &ProductPostgresRepository{
		db:        db,
		converter: criteria.NewSQLCriteriaConverter(),
	}
}

func (r *ProductPostgresRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	return r.search(ctx, domainCriteria.NewCriteriaBuilder().OrderBy("id", domainCriteria.ASC).Build())
}

func (r *ProductPostgresRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var product entity.Product
	err := r.db.GetContext(ctx, &product, productSelect+` WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding product: %w", err)
	}
	return &product, nil
}

func (r *ProductPostgresRepository) SearchByName(ctx context.Context, name string) ([]*entity.Product, error) {
	return r.search(ctx, domainCriteria.NewCriteriaBuilder().
		Where("name", domainCriteria.OpILike, name).
		OrderBy("name", domainCriteria.ASC).
		Build())
}

// FindByPriceRange rango cerrado [min, max]
func (r *ProductPostgresRepository) FindByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]*entity.Product, error) {
	return r.search(ctx, domainCriteria.NewCriteriaBuilder().
		Where("price", domainCriteria.OpGreaterThanOrEqual, min).
		Where("price", domainCriteria.OpLessThanOrEqual, max).
		OrderBy("price", domainCriteria.ASC).
		Build())
}

func (r *ProductPostgresRepository) FindByCategory(ctx context.Context, category entity.ProductCategory) ([]*entity.Product, error) {
	return r.search(ctx, domainCriteria.NewCriteriaBuilder().
		Where("category", domainCriteria.OpEqual, string(category)).
		OrderBy("name", domainCriteria.ASC).
		Build())
}

func (r *ProductPostgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("error checking product: %w", err)
	}
	return exists, nil
}

// Save inserta el producto si no tiene ID, si no lo actualiza
func (r *ProductPostgresRepository) Save(ctx context.Context, product *entity.Product) error {
	if product.ID == 0 {
		err := r.db.QueryRowxContext(ctx, `
			INSERT INTO products (name, description, price, stock_quantity, category)
			VALUES ($1, NULLIF($2, ''), $3, $4, NULLIF($5, ''))
			RETURNING id
		`, product.Name, product.Description, product.Price, product.StockQuantity, string(product.Category)).Scan(&product.ID)
		if err != nil {
			return fmt.Errorf("error saving product: %w", err)
		}
		return nil
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = $2, description = NULLIF($3, ''), price = $4, stock_quantity = $5, category = NULLIF($6, '')
		WHERE id = $1
	`, product.ID, product.Name, product.Description, product.Price, product.StockQuantity, string(product.Category))
	if err != nil {
		return fmt.Errorf("error updating product: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return entity.ErrProductNotFound
	}
	return nil
}

func (r *ProductPostgresRepository) UpdateStock(ctx context.Context, id int64, quantity int) error {
	result, err := r.db.ExecContext(ctx, `UPDATE products SET stock_quantity = $2 WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("error updating product stock: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return entity.ErrProductNotFound
	}
	return nil
}

func (r *ProductPostgresRepository) DeleteByID(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: product %d", entity.ErrProductHasOrders, id)
	}
	if err != nil {
		return fmt.Errorf("error deleting product: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return entity.ErrProductNotFound
	}
	return nil
}

func (r *ProductPostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM products`); err != nil {
		return 0, fmt.Errorf("error counting products: %w", err)
	}
	return count, nil
}

func (r *ProductPostgresRepository) search(ctx context.Context, c domainCriteria.Criteria) ([]*entity.Product, error) {
	query, params := r.converter.ToSelectSQL(productSelect, c)

	products := []*entity.Product{}
	if err := r.db.SelectContext(ctx, &products, query, params...); err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}
	return products, nil
}
