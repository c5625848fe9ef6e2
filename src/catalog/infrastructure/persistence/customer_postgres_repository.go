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
	"github.com/lib/pq"
)

const (
	customerSelect = `SELECT id, name, email, COALESCE(phone, '') AS phone, COALESCE(address, '') AS address FROM customers`

	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// CustomerPostgresRepository implementa CustomerRepository usando PostgreSQL
type CustomerPostgresRepository struct {
	db        *sqlx.DB
	converter *criteria.SQLCriteriaConverter
}

// NewCustomerPostgresRepository crea una nueva instancia del repositorio
func NewCustomerPostgresRepository(db *sqlx.DB) *CustomerPostgresRepository {
	return &CustomerPostgresRepository{
		db:        db,
		converter: criteria.NewSQLCriteriaConverter(),
	}
}

func (r *CustomerPostgresRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	return r.search(ctx, domainCriteria.NewCriteriaBuilder().OrderBy("id", domainCriteria.ASC).Build())
}

func (r *CustomerPostgresRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	return r.findOne(ctx, customerSelect+` WHERE id = $1`, id)
}

func (r *CustomerPostgresRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return r.findOne(ctx, customerSelect+` WHERE LOWER(email) = LOWER($1)`, email)
}

// SearchByName búsqueda parcial sin distinguir mayúsculas
func (r *CustomerPostgresRepository) SearchByName(ctx context.Context, name string) ([]*entity.Customer, error) {
	return r.search(ctx, domainCriteria.NewCriteriaBuilder().
		Where("name", domainCriteria.OpILike, name).
		OrderBy("name", domainCriteria.ASC).
		Build())
}

func (r *CustomerPostgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("error checking customer: %w", err)
	}
	return exists, nil
}

func (r *CustomerPostgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM customers WHERE LOWER(email) = LOWER($1))`, email)
	if err != nil {
		return false, fmt.Errorf("error checking customer email: %w", err)
	}
	return exists, nil
}

// Save inserta el cliente si no tiene ID, si no lo actualiza
func (r *CustomerPostgresRepository) Save(ctx context.Context, customer *entity.Customer) error {
	var err error
	if customer.ID == 0 {
		err = r.db.QueryRowxContext(ctx, `
			INSERT INTO customers (name, email, phone, address)
			VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
			RETURNING id
		`, customer.Name, customer.Email, customer.Phone, customer.Address).Scan(&customer.ID)
	} else {
		var result sql.Result
		result, err = r.db.ExecContext(ctx, `
			UPDATE customers
			SET name = $2, email = $3, phone = NULLIF($4, ''), address = NULLIF($5, '')
			WHERE id = $1
		`, customer.ID, customer.Name, customer.Email, customer.Phone, customer.Address)
		if err == nil {
			if rows, _ := result.RowsAffected(); rows == 0 {
				return entity.ErrCustomerNotFound
			}
		}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", entity.ErrEmailAlreadyInUse, customer.Email)
	}
	if err != nil {
		return fmt.Errorf("error saving customer: %w", err)
	}
	return nil
}

func (r *CustomerPostgresRepository) DeleteByID(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: customer %d", entity.ErrCustomerHasOrders, id)
	}
	if err != nil {
		return fmt.Errorf("error deleting customer: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return entity.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerPostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM customers`); err != nil {
		return 0, fmt.Errorf("error counting customers: %w", err)
	}
	return count, nil
}

func (r *CustomerPostgresRepository) findOne(ctx context.Context, query string, args ...interface{}) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.GetContext(ctx, &customer, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding customer: %w", err)
	}
	return &customer, nil
}

func (r *CustomerPostgresRepository) search(ctx context.Context, c domainCriteria.Criteria) ([]*entity.Customer, error) {
	query, params := r.converter.ToSelectSQL(customerSelect, c)

	customers := []*entity.Customer{}
	if err := r.db.SelectContext(ctx, &customers, query, params...); err != nil {
		return nil, fmt.Errorf("error listing customers: %w", err)
	}
	return customers, nil
}

// isForeignKeyViolation indica que la fila sigue referenciada por order_items u orders
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}
