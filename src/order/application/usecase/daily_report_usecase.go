package usecase

import (
	"context"
	"sort"

	"github.com/iagobrdev/orders-bootcamp/src/order/application/response"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/port"

	"github.com/shopspring/decimal"
)

// DailyReportUseCase caso de uso para el reporte diario de pedidos
type DailyReportUseCase struct {
	orderRepo port.OrderRepository
}

// NewDailyReportUseCase crea una nueva instancia del caso de uso
func NewDailyReportUseCase(orderRepo port.OrderRepository) *DailyReportUseCase {
	return &DailyReportUseCase{
		orderRepo: orderRepo,
	}
}

// Execute agrega los pedidos del rango [date, date+1)
func (uc *DailyReportUseCase) Execute(ctx context.Context, date string) (*response.DailyReportResponse, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	orders, err := uc.orderRepo.FindByDateRange(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	resp := &response.DailyReportResponse{
		Date:          date,
		OrdersCount:   len(orders),
		TotalAmount:   decimal.Zero,
		AverageTicket: decimal.Zero,
		ByStatus:      map[string]int{},
	}
	if len(orders) == 0 {
		return resp, nil
	}

	// Ordenados por fecha de creación para primera y última
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.Before(orders[j].CreatedAt) })
	for _, order := range orders {
		resp.TotalAmount = resp.TotalAmount.Add(order.Total)
		resp.ByStatus[string(order.Status)]++
	}
	resp.AverageTicket = resp.TotalAmount.Div(decimal.NewFromInt(int64(len(orders)))).Round(2)

	first := orders[0].CreatedAt
	last := orders[len(orders)-1].CreatedAt
	resp.FirstOrderAt = &first
	resp.LastOrderAt = &last
	return resp, nil
}
