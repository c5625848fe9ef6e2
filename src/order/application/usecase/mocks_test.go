package usecase

import (
	"context"
	"time"

	catalog "github.com/iagobrdev/orders-bootcamp/src/catalog/domain/entity"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/entity"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/port"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*entity.Order)
	return order, args.Error(1)
}

func (m *mockOrderRepository) Save(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepository) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockOrderRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockOrderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*entity.Order)
	return orders, args.Error(1)
}

func (m *mockOrderRepository) FindByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error) {
	args := m.Called(ctx, customerID)
	orders, _ := args.Get(0).([]*entity.Order)
	return orders, args.Error(1)
}

func (m *mockOrderRepository) FindByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	args := m.Called(ctx, status)
	orders, _ := args.Get(0).([]*entity.Order)
	return orders, args.Error(1)
}

func (m *mockOrderRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Order, error) {
	args := m.Called(ctx, start, end)
	orders, _ := args.Get(0).([]*entity.Order)
	return orders, args.Error(1)
}

func (m *mockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event entity.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockPublisher) Close() error {
	return nil
}

// asPublisher evita pasar un puntero nil como interfaz no nil
func asPublisher(p *mockPublisher) port.EventPublisher {
	if p == nil {
		return nil
	}
	return p
}

func asObserver(o *recordingObserver) OperationObserver {
	if o == nil {
		return nil
	}
	return o
}

// recordingObserver guarda cada operación observada
type recordingObserver struct {
	operations []string
	errs       []error
}

func (r *recordingObserver) ObserveOrderOperation(operation string, err error) {
	r.operations = append(r.operations, operation)
	r.errs = append(r.errs, err)
}

// fakeCatalog catálogo en memoria
type fakeCatalog struct {
	customers map[int64]*catalog.Customer
	products  map[int64]*catalog.Product
	err       error
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		customers: map[int64]*catalog.Customer{
			1: {ID: 1, Name: "Ana", Email: "ana@example.com"},
			2: {ID: 2, Name: "Bruno", Email: "bruno@example.com"},
		},
		products: map[int64]*catalog.Product{
			1: {ID: 1, Name: "Keyboard", Price: decimal.RequireFromString("25.00"), StockQuantity: 10},
			2: {ID: 2, Name: "Monitor", Price: decimal.RequireFromString("100.00"), StockQuantity: 5},
			3: {ID: 3, Name: "Mouse", Price: decimal.RequireFromString("50.00"), StockQuantity: 20},
		},
	}
}

func (f *fakeCatalog) FindCustomerByID(_ context.Context, id int64) (*catalog.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.customers[id]; ok {
		return c, nil
	}
	return nil, entity.ErrCustomerNotFound
}

func (f *fakeCatalog) FindProductByID(_ context.Context, id int64) (*catalog.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, entity.ErrProductNotFound
}

func (f *fakeCatalog) ProductStock(ctx context.Context, id int64) (int, error) {
	p, err := f.FindProductByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return p.StockQuantity, nil
}

// services arma validador, calculador y reconciliador sobre el mismo catálogo
func services(cat *fakeCatalog) (*service.OrderValidator, *service.OrderCalculator, *service.OrderReconciler) {
	return service.NewOrderValidator(cat), service.NewOrderCalculator(cat), service.NewOrderReconciler(cat)
}

// storedOrder pedido ya guardado con precios calculados
func storedOrder(id int64, status entity.OrderStatus, items ...entity.OrderItem) *entity.Order {
	order := entity.NewOrder(&catalog.Customer{ID: 1, Name: "Ana"}, entity.PaymentPix)
	order.ID = id
	order.Status = status
	order.CreatedAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	order.Items = items
	for _, item := range items {
		order.Total = order.Total.Add(item.Subtotal.Decimal)
	}
	return order
}

func pricedItem(orderID, productID int64, quantity int, price string) entity.OrderItem {
	item := entity.NewOrderItem(orderID, &catalog.Product{ID: productID}, quantity)
	item.Price(decimal.RequireFromString(price))
	return *item
}
