package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/iagobrdev/orders-bootcamp/src/order/domain/entity"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/port"
)

const dateLayout = "2006-01-02"

// ListOrdersUseCase consultas de pedidos sin reglas de negocio
type ListOrdersUseCase struct {
	orderRepo port.OrderRepository
}

// NewListOrdersUseCase crea una nueva instancia del caso de uso
func NewListOrdersUseCase(orderRepo port.OrderRepository) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
	}
}

func (uc *ListOrdersUseCase) All(ctx context.Context) ([]*entity.Order, error) {
	return uc.orderRepo.FindAll(ctx)
}

func (uc *ListOrdersUseCase) ByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error) {
	return uc.orderRepo.FindByCustomer(ctx, customerID)
}

// ByStatus acepta el código o la descripción del estado
func (uc *ListOrdersUseCase) ByStatus(ctx context.Context, rawStatus string) ([]*entity.Order, error) {
	status, err := entity.ParseOrderStatus(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, rawStatus)
	}
	return uc.orderRepo.FindByStatus(ctx, status)
}

// ByDate pedidos creados en el día [date, date+1)
func (uc *ListOrdersUseCase) ByDate(ctx context.Context, rawDate string) ([]*entity.Order, error) {
	day, err := parseDate(rawDate)
	if err != nil {
		return nil, err
	}
	return uc.orderRepo.FindByDateRange(ctx, day, day.AddDate(0, 0, 1))
}

// ByPeriod pedidos entre start y end, ambos días incluidos
func (uc *ListOrdersUseCase) ByPeriod(ctx context.Context, rawStart, rawEnd string) ([]*entity.Order, error) {
	start, err := parseDate(rawStart)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(rawEnd)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, entity.ErrInvalidPeriod
	}
	return uc.orderRepo.FindByDateRange(ctx, start, end.AddDate(0, 0, 1))
}

func (uc *ListOrdersUseCase) Count(ctx context.Context) (int64, error) {
	return uc.orderRepo.Count(ctx)
}

func parseDate(raw string) (time.Time, error) {
	day, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", entity.ErrInvalidDate, raw)
	}
	return day, nil
}
