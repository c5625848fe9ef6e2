package port

import (
	"context"

	"github.com/iagobrdev/orders-bootcamp/src/catalog/domain/entity"
)

// CustomerRepository define el contrato de persistencia de clientes
type CustomerRepository interface {
	FindAll(ctx context.Context) ([]*entity.Customer, error)
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	SearchByName(ctx context.Context, name string) ([]*entity.Customer, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Save inserta si ID == 0, si no actualiza
	Save(ctx context.Context, customer *entity.Customer) error
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
