package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	catalog "github.com/iagobrdev/orders-bootcamp/src/catalog/domain/entity"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/entity"
	domainCriteria "github.com/iagobrdev/orders-bootcamp/src/shared/domain/criteria"
	"github.com/iagobrdev/orders-bootcamp/src/shared/infrastructure/criteria"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	orderSelect = `
		SELECT o.id, o.created_at, o.status, COALESCE(o.payment_method, '') AS payment_method, o.total,
			c.id AS customer_id, c.name AS customer_name, c.email AS customer_email,
			COALESCE(c.phone, '') AS customer_phone, COALESCE(c.address, '') AS customer_address
		FROM orders o
		JOIN customers c ON c.id = o.customer_id`

	orderItemsSelect = `
		SELECT oi.order_id, oi.quantity, oi.unit_price, oi.subtotal,
			p.id AS product_id, p.name AS product_name, COALESCE(p.description, '') AS product_description,
			p.price AS product_price, p.stock_quantity AS product_stock, COALESCE(p.category, '') AS product_category
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.order_id, oi.position`
)

// orderRow fila de orders con los datos del cliente
type orderRow struct {
	ID              int64           `db:"id"`
	CreatedAt       time.Time       `db:"created_at"`
	Status          string          `db:"status"`
	PaymentMethod   string          `db:"payment_method"`
	Total           decimal.Decimal `db:"total"`
	CustomerID      int64           `db:"customer_id"`
	CustomerName    string          `db:"customer_name"`
	CustomerEmail   string          `db:"customer_email"`
	CustomerPhone   string          `db:"customer_phone"`
	CustomerAddress string          `db:"customer_address"`
}

// orderItemRow fila de order_items con los datos del producto
type orderItemRow struct {
	OrderID            int64               `db:"order_id"`
	Quantity           int                 `db:"quantity"`
	UnitPrice          decimal.NullDecimal `db:"unit_price"`
	Subtotal           decimal.NullDecimal `db:"subtotal"`
	ProductID          int64               `db:"product_id"`
	ProductName        string              `db:"product_name"`
	ProductDescription string              `db:"product_description"`
	ProductPrice       decimal.Decimal     `db:"product_price"`
	ProductStock       int                 `db:"product_stock"`
	ProductCategory    string              `db:"product_category"`
}

func (r orderRow) toEntity() *entity.Order {
	return &entity.Order{
		ID: r.ID,
		Customer: &catalog.Customer{
			ID:      r.CustomerID,
			Name:    r.CustomerName,
			Email:   r.CustomerEmail,
			Phone:   r.CustomerPhone,
			Address: r.CustomerAddress,
		},
		CreatedAt:     r.CreatedAt,
		Status:        entity.OrderStatus(r.Status),
		PaymentMethod: entity.PaymentMethod(r.PaymentMethod),
		Items:         []entity.OrderItem{},
		Total:         r.Total,
	}
}

func (r orderItemRow) toEntity() entity.OrderItem {
	return entity.OrderItem{
		OrderID: r.OrderID,
		Product: &catalog.Product{
			ID:            r.ProductID,
			Name:          r.ProductName,
			Description:   r.ProductDescription,
			Price:         r.ProductPrice,
			StockQuantity: r.ProductStock,
			Category:      catalog.ProductCategory(r.ProductCategory),
		},
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
		Subtotal:  r.Subtotal,
	}
}

// OrderPostgresRepository implementa OrderRepository usando PostgreSQL
type OrderPostgresRepository struct {
	db        *sqlx.DB
	converter *criteria.SQLCriteriaConverter
}

// NewOrderPostgresRepository crea una nueva instancia del repositorio
func NewOrderPostgresRepository(db *sqlx.DB) *OrderPostgresRepository {
	return &OrderPostgresRepository{
		db:        db,
		converter: criteria.NewSQLCriteriaConverter(),
	}
}

// Save persiste el pedido con sus items en una transacción (DDD Aggregate).
// Un pedido existente reemplaza todos sus items.
func (r *OrderPostgresRepository) Save(ctx context.Context, order *entity.Order) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Aggregate root
	if order.ID == 0 {
		err = tx.QueryRowxContext(ctx, `
			INSERT INTO orders (customer_id, created_at, status, payment_method, total)
			VALUES ($1, $2, $3, NULLIF($4, ''), $5)
			RETURNING id
		`, order.CustomerID(), order.CreatedAt, string(order.Status), string(order.PaymentMethod), order.Total).Scan(&order.ID)
		if err != nil {
			return fmt.Errorf("error saving order: %w", err)
		}
	} else {
		result, err := tx.ExecContext(ctx, `
			UPDATE orders
			SET customer_id = $2, status = $3, payment_method = NULLIF($4, ''), total = $5
			WHERE id = $1
		`, order.ID, order.CustomerID(), string(order.Status), string(order.PaymentMethod), order.Total)
		if err != nil {
			return fmt.Errorf("error updating order: %w", err)
		}
		if rows, _ := result.RowsAffected(); rows == 0 {
			return entity.ErrOrderNotFound
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, order.ID); err != nil {
			return fmt.Errorf("error replacing order items: %w", err)
		}
	}

	// 2. Items del aggregate, en orden
	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, position, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, order.ID, item.ProductID(), i, item.Quantity, item.UnitPrice, item.Subtotal)
		if err != nil {
			return fmt.Errorf("error saving order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// FindByID carga el pedido con cliente e items (DDD: load aggregate)
func (r *OrderPostgresRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var row orderRow
	err := r.db.GetContext(ctx, &row, orderSelect+` WHERE o.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding order: %w", err)
	}

	orders := []*entity.Order{row.toEntity()}
	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders[0], nil
}

func (r *OrderPostgresRepository) DeleteByID(ctx context.Context, id int64) error {
	// order_items se borra en cascada
	result, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting order: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return entity.ErrOrderNotFound
	}
	return nil
}

func (r *OrderPostgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`, id); err != nil {
		return false, fmt.Errorf("error checking order: %w", err)
	}
	return exists, nil
}

func (r *OrderPostgresRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	return r.search(ctx, domainCriteria.NewCriteriaBuilder().
		OrderBy("o.id", domainCriteria.ASC).
		Build())
}

func (r *OrderPostgresRepository) FindByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error) {
	return r.search(ctx, domainCriteria.NewCriteriaBuilder().
		Where("o.customer_id", domainCriteria.OpEqual, customerID).
		OrderBy("o.created_at", domainCriteria.DESC).
		Build())
}

func (r *OrderPostgresRepository) FindByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	return r.search(ctx, domainCriteria.NewCriteriaBuilder().
		Where("o.status", domainCriteria.OpEqual, string(status)).
		OrderBy("o.created_at", domainCriteria.DESC).
		Build())
}

// FindByDateRange usa >= start AND < end para aprovechar el índice de created_at
func (r *OrderPostgresRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Order, error) {
	return r.search(ctx, domainCriteria.NewCriteriaBuilder().
		Where("o.created_at", domainCriteria.OpGreaterThanOrEqual, start).
		Where("o.created_at", domainCriteria.OpLessThan, end).
		OrderBy("o.created_at", domainCriteria.ASC).
		Build())
}

func (r *OrderPostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM orders`); err != nil {
		return 0, fmt.Errorf("error counting orders: %w", err)
	}
	return count, nil
}

func (r *OrderPostgresRepository) search(ctx context.Context, c domainCriteria.Criteria) ([]*entity.Order, error) {
	query, params := r.converter.ToSelectSQL(orderSelect, c)

	var rows []orderRow
	if err := r.db.SelectContext(ctx, &rows, query, params...); err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}

	orders := make([]*entity.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.toEntity())
	}
	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// loadItems carga los items de todos los pedidos con una sola consulta
func (r *OrderPostgresRepository) loadItems(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(orders))
	byID := make(map[int64]*entity.Order, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID)
		byID[order.ID] = order
	}

	var rows []orderItemRow
	if err := r.db.SelectContext(ctx, &rows, orderItemsSelect, pq.Array(ids)); err != nil {
		return fmt.Errorf("error finding order items: %w", err)
	}
	for _, row := range rows {
		if order, ok := byID[row.OrderID]; ok {
			order.Items = append(order.Items, row.toEntity())
		}
	}
	return nil
}
