package usecase

import (
	"context"

	"github.com/iagobrdev/orders-bootcamp/src/order/domain/port"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/service"
)

// OrderTotalUseCase caso de uso para calcular el total de un pedido guardado
type OrderTotalUseCase struct {
	orderRepo  port.OrderRepository
	calculator *service.OrderCalculator
}

// NewOrderTotalUseCase crea una nueva instancia del caso de uso
func NewOrderTotalUseCase(orderRepo port.OrderRepository, calculator *service.OrderCalculator) *OrderTotalUseCase {
	return &OrderTotalUseCase{
		orderRepo:  orderRepo,
		calculator: calculator,
	}
}

// Execute suma los subtotales con los precios guardados en cada item.
// La conversión a float64 es el único paso con pérdida de precisión.
func (uc *OrderTotalUseCase) Execute(ctx context.Context, orderID int64) (float64, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return 0, err
	}
	total, _ := uc.calculator.Total(order).Float64()
	return total, nil
}
