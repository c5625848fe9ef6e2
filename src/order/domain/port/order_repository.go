package port

import (
	"context"
	"time"

	"github.com/iagobrdev/orders-bootcamp/src/order/domain/entity"
)

// OrderRepository define el contrato de persistencia del aggregate Order
type OrderRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Order, error)
	// Save inserta cuando ID == 0; si no reemplaza el pedido completo con sus items
	Save(ctx context.Context, order *entity.Order) error
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindAll(ctx context.Context) ([]*entity.Order, error)
	FindByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error)
	FindByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error)
	// FindByDateRange rango semiabierto [start, end)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Order, error)
	Count(ctx context.Context) (int64, error)
}
