package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReportResponse representa el reporte diario de pedidos.
// AverageTicket es total / cantidad redondeado a 2 decimales.
type DailyReportResponse struct {
	Date          string          `json:"date"`
	OrdersCount   int             `json:"orders_count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
	ByStatus      map[string]int  `json:"by_status"`
	FirstOrderAt  *time.Time      `json:"first_order_at,omitempty"`
	LastOrderAt   *time.Time      `json:"last_order_at,omitempty"`
}
