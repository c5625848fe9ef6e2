package usecase

import (
	"context"
	"testing"

	"github.com/iagobrdev/orders-bootcamp/src/catalog/application/request"
	"github.com/iagobrdev/orders-bootcamp/src/catalog/domain/entity"
	"github.com/iagobrdev/orders-bootcamp/src/shared/domain/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCustomerUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("saves a new customer", func(t *testing.T) {
		repo := new(mockCustomerRepository)
		repo.On("ExistsByEmail", ctx, "ana@example.com").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*entity.Customer")).
			Run(func(args mock.Arguments) { args.Get(1).(*entity.Customer).ID = 7 }).
			Return(nil)

		uc := NewCustomerUseCase(repo)
		customer, err := uc.Create(ctx, request.CustomerRequest{Name: "Ana", Email: "ana@example.com"})

		require.NoError(t, err)
		assert.Equal(t, int64(7), customer.ID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects a duplicated email", func(t *testing.T) {
		repo := new(mockCustomerRepository)
		repo.On("ExistsByEmail", ctx, "ana@example.com").Return(true, nil)

		uc := NewCustomerUseCase(repo)
		_, err := uc.Create(ctx, request.CustomerRequest{Name: "Ana", Email: "ana@example.com"})

		assert.ErrorIs(t, err, entity.ErrEmailAlreadyInUse)
		assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCustomerUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects an email owned by another customer", func(t *testing.T) {
		repo := new(mockCustomerRepository)
		repo.On("FindByID", ctx, int64(1)).Return(&entity.Customer{ID: 1, Name: "Ana", Email: "ana@example.com"}, nil)
		repo.On("FindByEmail", ctx, "bob@example.com").Return(&entity.Customer{ID: 2, Email: "bob@example.com"}, nil)

		uc := NewCustomerUseCase(repo)
		_, err := uc.Update(ctx, 1, request.CustomerRequest{Name: "Ana", Email: "bob@example.com"})

		assert.ErrorIs(t, err, entity.ErrEmailAlreadyInUse)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("keeps its own email", func(t *testing.T) {
		repo := new(mockCustomerRepository)
		repo.On("FindByID", ctx, int64(1)).Return(&entity.Customer{ID: 1, Name: "Ana", Email: "ana@example.com"}, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*entity.Customer")).Return(nil)

		uc := NewCustomerUseCase(repo)
		customer, err := uc.Update(ctx, 1, request.CustomerRequest{Name: "Ana Maria", Email: "ana@example.com"})

		require.NoError(t, err)
		assert.Equal(t, "Ana Maria", customer.Name)
		repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("unknown customer", func(t *testing.T) {
		repo := new(mockCustomerRepository)
		repo.On("FindByID", ctx, int64(9)).Return(nil, entity.ErrCustomerNotFound)

		_, err := NewCustomerUseCase(repo).Update(ctx, 9, request.CustomerRequest{Name: "X", Email: "x@example.com"})
		assert.ErrorIs(t, err, entity.ErrCustomerNotFound)
	})
}

func TestCustomerUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(mockCustomerRepository)
	repo.On("ExistsByID", ctx, int64(3)).Return(false, nil)

	err := NewCustomerUseCase(repo).Delete(ctx, 3)

	assert.ErrorIs(t, err, entity.ErrCustomerNotFound)
	repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestProductUseCase_SearchByPriceRange(t *testing.T) {
	ctx := context.Background()
	ten := decimal.NewFromInt(10)
	five := decimal.NewFromInt(5)
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name string
		min  *decimal.Decimal
		max  *decimal.Decimal
	}{
		{"missing min", nil, &ten},
		{"missing max", &five, nil},
		{"negative price", &negative, &ten},
		{"min greater than max", &ten, &five},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockProductRepository)
			_, err := NewProductUseCase(repo).SearchByPriceRange(ctx, tt.min, tt.max)
			assert.ErrorIs(t, err, entity.ErrInvalidPriceRange)
			assert.Equal(t, apperror.KindInvalidRequest, apperror.KindOf(err))
			repo.AssertNotCalled(t, "FindByPriceRange", mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("valid range", func(t *testing.T) {
		repo := new(mockProductRepository)
		repo.On("FindByPriceRange", ctx, five, ten).Return([]*entity.Product{{ID: 1}}, nil)

		products, err := NewProductUseCase(repo).SearchByPriceRange(ctx, &five, &ten)
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})
}

func TestProductUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("parses the category description", func(t *testing.T) {
		repo := new(mockProductRepository)
		repo.On("Save", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

		product, err := NewProductUseCase(repo).Create(ctx, request.ProductRequest{
			Name:          "Notebook",
			Price:         decimal.RequireFromString("3500.00"),
			StockQuantity: 2,
			Category:      "computing",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.CategoryComputing, product.Category)
	})

	t.Run("rejects a zero price", func(t *testing.T) {
		repo := new(mockProductRepository)
		_, err := NewProductUseCase(repo).Create(ctx, request.ProductRequest{Name: "Notebook", Price: decimal.Zero})
		assert.ErrorIs(t, err, entity.ErrInvalidPrice)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProductUseCase_UpdateStock(t *testing.T) {
	ctx := context.Background()

	t.Run("negative quantity", func(t *testing.T) {
		repo := new(mockProductRepository)
		_, err := NewProductUseCase(repo).UpdateStock(ctx, 1, -5)
		assert.ErrorIs(t, err, entity.ErrNegativeStock)
	})

	t.Run("replaces the stock", func(t *testing.T) {
		repo := new(mockProductRepository)
		repo.On("FindByID", ctx, int64(1)).Return(&entity.Product{ID: 1, StockQuantity: 3}, nil)
		repo.On("UpdateStock", ctx, int64(1), 20).Return(nil)

		product, err := NewProductUseCase(repo).UpdateStock(ctx, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, 20, product.StockQuantity)
	})

	t.Run("unknown product", func(t *testing.T) {
		repo := new(mockProductRepository)
		repo.On("FindByID", ctx, int64(2)).Return(nil, entity.ErrProductNotFound)

		_, err := NewProductUseCase(repo).UpdateStock(ctx, 2, 1)
		assert.ErrorIs(t, err, entity.ErrProductNotFound)
		repo.AssertNotCalled(t, "UpdateStock", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProductUseCase_Stock(t *testing.T) {
	ctx := context.Background()
	repo := new(mockProductRepository)
	repo.On("FindByID", ctx, int64(4)).Return(&entity.Product{ID: 4, StockQuantity: 12}, nil)

	stock, err := NewProductUseCase(repo).Stock(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, stock)
}
