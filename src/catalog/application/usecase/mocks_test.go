package usecase

import (
	"context"

	"github.com/iagobrdev/orders-bootcamp/src/catalog/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type mockCustomerRepository struct {
	mock.Mock
}

func (m *mockCustomerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]*entity.Customer)
	return customers, args.Error(1)
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	customer, _ := args.Get(0).(*entity.Customer)
	return customer, args.Error(1)
}

func (m *mockCustomerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	args := m.Called(ctx, email)
	customer, _ := args.Get(0).(*entity.Customer)
	return customer, args.Error(1)
}

func (m *mockCustomerRepository) SearchByName(ctx context.Context, name string) ([]*entity.Customer, error) {
	args := m.Called(ctx, name)
	customers, _ := args.Get(0).([]*entity.Customer)
	return customers, args.Error(1)
}

func (m *mockCustomerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockCustomerRepository) Save(ctx context.Context, customer *entity.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *mockCustomerRepository) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCustomerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]*entity.Product)
	return products, args.Error(1)
}

func (m *mockProductRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*entity.Product)
	return product, args.Error(1)
}

func (m *mockProductRepository) SearchByName(ctx context.Context, name string) ([]*entity.Product, error) {
	args := m.Called(ctx, name)
	products, _ := args.Get(0).([]*entity.Product)
	return products, args.Error(1)
}

func (m *mockProductRepository) FindByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]*entity.Product, error) {
	args := m.Called(ctx, min, max)
	products, _ := args.Get(0).([]*entity.Product)
	return products, args.Error(1)
}

func (m *mockProductRepository) FindByCategory(ctx context.Context, category entity.ProductCategory) ([]*entity.Product, error) {
	args := m.Called(ctx, category)
	products, _ := args.Get(0).([]*entity.Product)
	return products, args.Error(1)
}

func (m *mockProductRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepository) Save(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepository) UpdateStock(ctx context.Context, id int64, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *mockProductRepository) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
