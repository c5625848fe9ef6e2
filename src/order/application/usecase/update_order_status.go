package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/iagobrdev/orders-bootcamp/src/order/domain/entity"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/port"
)

// UpdateOrderStatusUseCase caso de uso para cambiar el estado de un pedido
type UpdateOrderStatusUseCase struct {
	orderRepo port.OrderRepository
	notifier  orderNotifier
	options   OrderOptions
}

// NewUpdateOrderStatusUseCase crea una nueva instancia del caso de uso
func NewUpdateOrderStatusUseCase(
	orderRepo port.OrderRepository,
	publisher port.EventPublisher,
	observer OperationObserver,
	options OrderOptions,
) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{
		orderRepo: orderRepo,
		notifier:  orderNotifier{publisher: publisher, observer: observer},
		options:   options,
	}
}

// Execute sobrescribe el estado; un pedido inexistente no genera escritura
func (uc *UpdateOrderStatusUseCase) Execute(ctx context.Context, orderID int64, rawStatus string) (*entity.Order, error) {
	order, previous, err := uc.apply(ctx, orderID, rawStatus)
	if err != nil {
		uc.notifier.observe(opUpdateStatus, err)
		return nil, err
	}

	if err := uc.orderRepo.Save(ctx, order); err != nil {
		err = fmt.Errorf("error saving order: %w", err)
		uc.notifier.observe(opUpdateStatus, err)
		return nil, err
	}

	snapshot := order.Snapshot()
	snapshot.PreviousStatus = previous
	uc.notifier.publish(ctx, entity.NewOrderEvent(entity.EventOrderStatusChanged, order.ID, snapshot))
	uc.notifier.observe(opUpdateStatus, nil)
	log.Printf("✅ Order %d status: %s -> %s", order.ID, previous, order.Status)
	return order, nil
}

func (uc *UpdateOrderStatusUseCase) apply(ctx context.Context, orderID int64, rawStatus string) (*entity.Order, entity.OrderStatus, error) {
	status, err := entity.ParseOrderStatus(rawStatus)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %q", err, rawStatus)
	}

	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, "", err
	}

	previous := order.Status
	if err := order.ChangeStatus(status, uc.options.EnforceStatusTransitions); err != nil {
		return nil, "", err
	}
	return order, previous, nil
}
