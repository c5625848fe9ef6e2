package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iagobrdev/orders-bootcamp/src/order/application/request"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/entity"
	"github.com/iagobrdev/orders-bootcamp/src/shared/domain/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)

func newCreateUseCase(cat *fakeCatalog, repo *mockOrderRepository, pub *mockPublisher, obs *recordingObserver, opts OrderOptions) *CreateOrderUseCase {
	validator, calculator, _ := services(cat)
	uc := NewCreateOrderUseCase(repo, cat, validator, calculator, asPublisher(pub), asObserver(obs), opts)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestCreateOrderUseCase_Success(t *testing.T) {
	repo := new(mockOrderRepository)
	pub := new(mockPublisher)
	obs := &recordingObserver{}

	repo.On("Save", mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.Order).ID = 11 }).
		Return(nil)
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(e entity.OrderEvent) bool {
		return e.EventType == entity.EventOrderCreated && e.AggregateID == 11
	})).Return(nil)

	uc := newCreateUseCase(newFakeCatalog(), repo, pub, obs, OrderOptions{})
	order, err := uc.Execute(context.Background(), &request.CreateOrderRequest{
		CustomerID:    1,
		PaymentMethod: "pix",
		Items:         []request.OrderItemRequest{{ProductID: 1, Quantity: 3}, {ProductID: 3, Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentPix, order.PaymentMethod)
	assert.Equal(t, fixedNow, order.CreatedAt)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("125.00")))
	assert.True(t, order.Items[0].Subtotal.Decimal.Equal(decimal.RequireFromString("75.00")))
	assert.Equal(t, []string{opCreate}, obs.operations)
	assert.Nil(t, obs.errs[0])
	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestCreateOrderUseCase_RejectsWithFixedMessage(t *testing.T) {
	tests := []struct {
		name  string
		req   request.CreateOrderRequest
		cause error
	}{
		{"missing customer", request.CreateOrderRequest{Items: []request.OrderItemRequest{{ProductID: 1, Quantity: 1}}}, entity.ErrCustomerRequired},
		{"unknown customer", request.CreateOrderRequest{CustomerID: 99, Items: []request.OrderItemRequest{{ProductID: 1, Quantity: 1}}}, entity.ErrCustomerNotFound},
		{"missing product", request.CreateOrderRequest{CustomerID: 1, Items: []request.OrderItemRequest{{Quantity: 1}}}, entity.ErrProductRequired},
		{"unknown product", request.CreateOrderRequest{CustomerID: 1, Items: []request.OrderItemRequest{{ProductID: 42, Quantity: 1}}}, entity.ErrProductNotFound},
		{"zero quantity", request.CreateOrderRequest{CustomerID: 1, Items: []request.OrderItemRequest{{ProductID: 1, Quantity: 0}}}, entity.ErrInvalidQuantity},
		{"insufficient stock", request.CreateOrderRequest{CustomerID: 1, Items: []request.OrderItemRequest{{ProductID: 1, Quantity: 15}}}, entity.ErrInsufficientStock},
		{"invalid payment method", request.CreateOrderRequest{CustomerID: 1, PaymentMethod: "barter"}, entity.ErrInvalidPaymentMethod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockOrderRepository)
			pub := new(mockPublisher)
			obs := &recordingObserver{}

			_, err := newCreateUseCase(newFakeCatalog(), repo, pub, obs, OrderOptions{}).Execute(context.Background(), &tt.req)

			require.Error(t, err)
			assert.Equal(t, apperror.KindBusiness, apperror.KindOf(err))
			assert.Equal(t, entity.CreateOrderFailedMessage, err.Error())
			assert.ErrorIs(t, err, tt.cause)
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
			assert.Equal(t, []string{opCreate}, obs.operations)
		})
	}
}

func TestCreateOrderUseCase_DetailedErrors(t *testing.T) {
	repo := new(mockOrderRepository)
	uc := newCreateUseCase(newFakeCatalog(), repo, nil, nil, OrderOptions{DetailedCreateErrors: true})

	_, err := uc.Execute(context.Background(), &request.CreateOrderRequest{
		CustomerID: 1,
		Items:      []request.OrderItemRequest{{ProductID: 2, Quantity: 6}},
	})

	require.Error(t, err)
	assert.Equal(t, apperror.KindBusiness, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "insufficient stock")
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateOrderUseCase_DuplicatedProductsKeepLastQuantity(t *testing.T) {
	repo := new(mockOrderRepository)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	order, err := newCreateUseCase(newFakeCatalog(), repo, nil, nil, OrderOptions{}).Execute(context.Background(), &request.CreateOrderRequest{
		CustomerID: 1,
		Items:      []request.OrderItemRequest{{ProductID: 1, Quantity: 1}, {ProductID: 1, Quantity: 4}},
	})

	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 4, order.Items[0].Quantity)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("100")))
}

func TestCreateOrderUseCase_EmptyOrderIsAccepted(t *testing.T) {
	repo := new(mockOrderRepository)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	order, err := newCreateUseCase(newFakeCatalog(), repo, nil, nil, OrderOptions{}).Execute(context.Background(), &request.CreateOrderRequest{CustomerID: 1})

	require.NoError(t, err)
	assert.Empty(t, order.Items)
	assert.True(t, order.Total.IsZero())
}

func TestCreateOrderUseCase_InfrastructureErrors(t *testing.T) {
	t.Run("save failure is internal and not published", func(t *testing.T) {
		repo := new(mockOrderRepository)
		pub := new(mockPublisher)
		repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

		_, err := newCreateUseCase(newFakeCatalog(), repo, pub, nil, OrderOptions{}).Execute(context.Background(), &request.CreateOrderRequest{CustomerID: 1})

		assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
		pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("catalog failure is internal", func(t *testing.T) {
		cat := newFakeCatalog()
		cat.err = errors.New("catalog down")
		repo := new(mockOrderRepository)

		_, err := newCreateUseCase(cat, repo, nil, nil, OrderOptions{}).Execute(context.Background(), &request.CreateOrderRequest{CustomerID: 1})

		assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("publish failure does not fail the order", func(t *testing.T) {
		repo := new(mockOrderRepository)
		pub := new(mockPublisher)
		repo.On("Save", mock.Anything, mock.Anything).Return(nil)
		pub.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker unavailable"))

		order, err := newCreateUseCase(newFakeCatalog(), repo, pub, nil, OrderOptions{}).Execute(context.Background(), &request.CreateOrderRequest{CustomerID: 1})

		require.NoError(t, err)
		assert.NotNil(t, order)
	})
}

func TestCreateOrderUseCase_PublishesAfterRequestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := new(mockOrderRepository)
	pub := new(mockPublisher)

	// el cliente se desconecta justo después del commit
	repo.On("Save", mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Order).ID = 7
			cancel()
		}).
		Return(nil)
	pub.On("Publish", mock.MatchedBy(func(publishCtx context.Context) bool {
		_, hasDeadline := publishCtx.Deadline()
		return publishCtx.Err() == nil && hasDeadline
	}), mock.MatchedBy(func(e entity.OrderEvent) bool {
		return e.EventType == entity.EventOrderCreated && e.AggregateID == 7
	})).Return(nil)

	order, err := newCreateUseCase(newFakeCatalog(), repo, pub, nil, OrderOptions{}).Execute(ctx, &request.CreateOrderRequest{
		CustomerID: 1,
		Items:      []request.OrderItemRequest{{ProductID: 1, Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), order.ID)
	assert.Error(t, ctx.Err())
	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}
