package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/iagobrdev/orders-bootcamp/src/order/domain/entity"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/port"
)

// DeleteOrderUseCase caso de uso para eliminar un pedido
type DeleteOrderUseCase struct {
	orderRepo port.OrderRepository
	notifier  orderNotifier
}

// NewDeleteOrderUseCase crea una nueva instancia del caso de uso
func NewDeleteOrderUseCase(orderRepo port.OrderRepository, publisher port.EventPublisher, observer OperationObserver) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{
		orderRepo: orderRepo,
		notifier:  orderNotifier{publisher: publisher, observer: observer},
	}
}

// Execute elimina el pedido sin importar su estado
func (uc *DeleteOrderUseCase) Execute(ctx context.Context, orderID int64) error {
	err := uc.delete(ctx, orderID)
	uc.notifier.observe(opDelete, err)
	if err != nil {
		return err
	}

	uc.notifier.publish(ctx, entity.NewOrderEvent(entity.EventOrderDeleted, orderID, nil))
	log.Printf("✅ Order %d deleted", orderID)
	return nil
}

func (uc *DeleteOrderUseCase) delete(ctx context.Context, orderID int64) error {
	exists, err := uc.orderRepo.ExistsByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("error checking order: %w", err)
	}
	if !exists {
		return entity.ErrOrderNotFound
	}
	if err := uc.orderRepo.DeleteByID(ctx, orderID); err != nil {
		return fmt.Errorf("error deleting order: %w", err)
	}
	return nil
}
