package persistence

import (
	"context"
	"regexp"
	"testing"

	"github.com/iagobrdev/orders-bootcamp/src/catalog/domain/entity"
	"github.com/iagobrdev/orders-bootcamp/src/shared/domain/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestCustomerRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM customers WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "address"}).
			AddRow(1, "Ana", "ana@example.com", "", "Rua A"))

	customer, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana", customer.Name)
	assert.Equal(t, "Rua A", customer.Address)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM customers WHERE id = $1`)).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "address"}))

	_, err := repo.FindByID(context.Background(), 9)
	assert.ErrorIs(t, err, entity.ErrCustomerNotFound)
}

func TestCustomerRepository_SearchByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM customers WHERE name ILIKE $1 ORDER BY name ASC`)).
		WithArgs("%ana%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "address"}).
			AddRow(1, "Ana", "ana@example.com", "", "").
			AddRow(2, "Mariana", "mari@example.com", "", ""))

	customers, err := repo.SearchByName(context.Background(), "ana")
	require.NoError(t, err)
	assert.Len(t, customers, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_Save(t *testing.T) {
	t.Run("insert returns the generated id", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCustomerPostgresRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO customers`)).
			WithArgs("Ana", "ana@example.com", "", "").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

		customer := &entity.Customer{Name: "Ana", Email: "ana@example.com"}
		require.NoError(t, repo.Save(context.Background(), customer))
		assert.Equal(t, int64(5), customer.ID)
	})

	t.Run("unique violation becomes a conflict", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCustomerPostgresRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO customers`)).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Save(context.Background(), &entity.Customer{Name: "Ana", Email: "ana@example.com"})
		assert.ErrorIs(t, err, entity.ErrEmailAlreadyInUse)
	})

	t.Run("update of a missing row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCustomerPostgresRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE customers`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Save(context.Background(), &entity.Customer{ID: 3, Name: "Ana", Email: "ana@example.com"})
		assert.ErrorIs(t, err, entity.ErrCustomerNotFound)
	})
}

func TestProductRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM products WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "stock_quantity", "category"}).
			AddRow(1, "Notebook", "", "3500.00", 4, "COMPUTING"))

	product, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("3500")))
	assert.Equal(t, 4, product.StockQuantity)
	assert.Equal(t, entity.CategoryComputing, product.Category)
}

func TestProductRepository_FindByPriceRange(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM products WHERE price >= $1 AND price <= $2 ORDER BY price ASC`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "stock_quantity", "category"}).
			AddRow(2, "Mouse", "", "50.00", 10, ""))

	products, err := repo.FindByPriceRange(context.Background(), decimal.NewFromInt(10), decimal.NewFromInt(100))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Mouse", products[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_UpdateStock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductPostgresRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE products SET stock_quantity = $2 WHERE id = $1`)).
		WithArgs(int64(1), 15).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE products SET stock_quantity = $2 WHERE id = $1`)).
		WithArgs(int64(2), 15).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.UpdateStock(context.Background(), 1, 15))
	assert.ErrorIs(t, repo.UpdateStock(context.Background(), 2, 15), entity.ErrProductNotFound)
}

func TestProductRepository_Count(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}

func TestDeleteByID_ReferencedByOrders(t *testing.T) {
	t.Run("customer", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCustomerPostgresRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM customers WHERE id = $1`)).
			WithArgs(int64(1)).
			WillReturnError(&pq.Error{Code: "23503"})

		err := repo.DeleteByID(context.Background(), 1)
		assert.ErrorIs(t, err, entity.ErrCustomerHasOrders)
		assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("product", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProductPostgresRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM products WHERE id = $1`)).
			WithArgs(int64(2)).
			WillReturnError(&pq.Error{Code: "23503"})

		err := repo.DeleteByID(context.Background(), 2)
		assert.ErrorIs(t, err, entity.ErrProductHasOrders)
		assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other errors stay internal", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProductPostgresRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM products WHERE id = $1`)).
			WillReturnError(&pq.Error{Code: "57014"})

		err := repo.DeleteByID(context.Background(), 2)
		assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	})
}
