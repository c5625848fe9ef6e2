package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/iagobrdev/orders-bootcamp/src/order/application/request"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/entity"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/port"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/service"
	"github.com/iagobrdev/orders-bootcamp/src/shared/domain/apperror"
)

// CreateOrderUseCase caso de uso para crear un pedido
type CreateOrderUseCase struct {
	orderRepo  port.OrderRepository
	catalog    port.CatalogReader
	validator  *service.OrderValidator
	calculator *service.OrderCalculator
	notifier   orderNotifier
	options    OrderOptions
	now        func() time.Time
}

// NewCreateOrderUseCase crea una nueva instancia del caso de uso
func NewCreateOrderUseCase(
	orderRepo port.OrderRepository,
	catalog port.CatalogReader,
	validator *service.OrderValidator,
	calculator *service.OrderCalculator,
	publisher port.EventPublisher,
	observer OperationObserver,
	options OrderOptions,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:  orderRepo,
		catalog:    catalog,
		validator:  validator,
		calculator: calculator,
		notifier:   orderNotifier{publisher: publisher, observer: observer},
		options:    options,
		now:        time.Now,
	}
}

// Execute arma, valida, calcula y persiste un pedido nuevo.
// 1. Resolver cliente y productos del catálogo
// 2. Validar contra el catálogo vigente
// 3. Fijar fecha y estado PENDING, calcular precios
// 4. Persistir y publicar order.created
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req *request.CreateOrderRequest) (*entity.Order, error) {
	log.Printf("Creating order for customer %d with %d items", req.CustomerID, len(req.Items))

	order, err := uc.compose(ctx, req)
	if err != nil {
		err = uc.rejection(err)
		uc.notifier.observe(opCreate, err)
		return nil, err
	}

	if err := uc.orderRepo.Save(ctx, order); err != nil {
		err = fmt.Errorf("error saving order: %w", err)
		uc.notifier.observe(opCreate, err)
		return nil, err
	}

	uc.notifier.publish(ctx, entity.NewOrderEvent(entity.EventOrderCreated, order.ID, order.Snapshot()))
	uc.notifier.observe(opCreate, nil)
	log.Printf("✅ Order %d created: %d items, total %s", order.ID, order.TotalItems(), order.Total.StringFixed(2))
	return order, nil
}

func (uc *CreateOrderUseCase) compose(ctx context.Context, req *request.CreateOrderRequest) (*entity.Order, error) {
	if req == nil {
		return nil, entity.ErrInvalidOrder
	}

	var paymentMethod entity.PaymentMethod
	if strings.TrimSpace(req.PaymentMethod) != "" {
		pm, err := entity.ParsePaymentMethod(req.PaymentMethod)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, req.PaymentMethod)
		}
		paymentMethod = pm
	}

	if req.CustomerID == 0 {
		return nil, entity.ErrCustomerRequired
	}
	customer, err := uc.catalog.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	order := entity.NewOrder(customer, paymentMethod)
	for _, item := range service.MergeDuplicates(req.RequestedItems()) {
		if item.ProductID == 0 {
			return nil, entity.ErrProductRequired
		}
		product, err := uc.catalog.FindProductByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		order.AddItem(product, item.Quantity)
	}

	if err := uc.validator.Validate(ctx, order); err != nil {
		return nil, err
	}

	order.Place(uc.now())

	if err := uc.calculator.Prepare(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// rejection oculta el detalle de la falla detrás del mensaje fijo, salvo que se pida lo contrario
func (uc *CreateOrderUseCase) rejection(err error) error {
	if apperror.KindOf(err) == apperror.KindInternal {
		log.Printf("❌ Order creation failed: %v", err)
		return fmt.Errorf("error creating order: %w", err)
	}

	log.Printf("⚠️ Order rejected: %v", err)
	if uc.options.DetailedCreateErrors {
		return apperror.Business(err.Error(), err)
	}
	return apperror.Business(entity.CreateOrderFailedMessage, err)
}
