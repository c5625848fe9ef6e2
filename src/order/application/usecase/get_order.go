package usecase

import (
	"context"

	"github.com/iagobrdev/orders-bootcamp/src/order/domain/entity"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/port"
)

// GetOrderUseCase caso de uso para obtener un pedido por ID
type GetOrderUseCase struct {
	orderRepo port.OrderRepository
}

// NewGetOrderUseCase crea una nueva instancia del caso de uso
func NewGetOrderUseCase(orderRepo port.OrderRepository) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute devuelve entity.ErrOrderNotFound si el pedido no existe
func (uc *GetOrderUseCase) Execute(ctx context.Context, orderID int64) (*entity.Order, error) {
	return uc.orderRepo.FindByID(ctx, orderID)
}
