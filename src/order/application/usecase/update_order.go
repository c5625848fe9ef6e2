package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/iagobrdev/orders-bootcamp/src/order/application/request"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/entity"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/port"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/service"
)

// UpdateOrderUseCase caso de uso para modificar un pedido existente
type UpdateOrderUseCase struct {
	orderRepo  port.OrderRepository
	catalog    port.CatalogReader
	reconciler *service.OrderReconciler
	validator  *service.OrderValidator
	calculator *service.OrderCalculator
	notifier   orderNotifier
	options    OrderOptions
}

// NewUpdateOrderUseCase crea una nueva instancia del caso de uso
func NewUpdateOrderUseCase(
	orderRepo port.OrderRepository,
	catalog port.CatalogReader,
	reconciler *service.OrderReconciler,
	validator *service.OrderValidator,
	calculator *service.OrderCalculator,
	publisher port.EventPublisher,
	observer OperationObserver,
	options OrderOptions,
) *UpdateOrderUseCase {
	return &UpdateOrderUseCase{
		orderRepo:  orderRepo,
		catalog:    catalog,
		reconciler: reconciler,
		validator:  validator,
		calculator: calculator,
		notifier:   orderNotifier{publisher: publisher, observer: observer},
		options:    options,
	}
}

// Execute reemplaza cliente, estado, forma de pago e items y recalcula el pedido.
// Las fallas de reglas devuelven BusinessError con el mensaje de la causa.
func (uc *UpdateOrderUseCase) Execute(ctx context.Context, orderID int64, req *request.UpdateOrderRequest) (*entity.Order, error) {
	order, err := uc.apply(ctx, orderID, req)
	if err != nil {
		log.Printf("⚠️ Order %d not updated: %v", orderID, err)
		uc.notifier.observe(opUpdate, err)
		return nil, err
	}

	if err := uc.orderRepo.Save(ctx, order); err != nil {
		err = fmt.Errorf("error saving order: %w", err)
		uc.notifier.observe(opUpdate, err)
		return nil, err
	}

	uc.notifier.publish(ctx, entity.NewOrderEvent(entity.EventOrderUpdated, order.ID, order.Snapshot()))
	uc.notifier.observe(opUpdate, nil)
	log.Printf("✅ Order %d updated: %d items, total %s", order.ID, order.TotalItems(), order.Total.StringFixed(2))
	return order, nil
}

func (uc *UpdateOrderUseCase) apply(ctx context.Context, orderID int64, req *request.UpdateOrderRequest) (*entity.Order, error) {
	if req == nil {
		return nil, entity.ErrInvalidOrder
	}

	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if req.CustomerID == 0 {
		return nil, businessFailure(entity.ErrCustomerRequired)
	}
	customer, err := uc.catalog.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		return nil, businessFailure(err)
	}

	status, err := entity.ParseOrderStatus(req.Status)
	if err != nil {
		return nil, businessFailure(fmt.Errorf("%w: %q", err, req.Status))
	}
	var paymentMethod entity.PaymentMethod
	if strings.TrimSpace(req.PaymentMethod) != "" {
		if paymentMethod, err = entity.ParsePaymentMethod(req.PaymentMethod); err != nil {
			return nil, businessFailure(fmt.Errorf("%w: %s", err, req.PaymentMethod))
		}
	}

	order.Customer = customer
	if err := order.ChangeStatus(status, uc.options.EnforceStatusTransitions); err != nil {
		return nil, err
	}
	order.PaymentMethod = paymentMethod

	if err := uc.reconciler.Reconcile(ctx, order, req.RequestedItems()); err != nil {
		return nil, businessFailure(err)
	}
	if err := uc.validator.Validate(ctx, order); err != nil {
		return nil, businessFailure(err)
	}
	if err := uc.calculator.Prepare(ctx, order); err != nil {
		return nil, businessFailure(err)
	}
	return order, nil
}
