package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/iagobrdev/orders-bootcamp/src/catalog/application/request"
	"github.com/iagobrdev/orders-bootcamp/src/catalog/domain/entity"
	"github.com/iagobrdev/orders-bootcamp/src/catalog/domain/port"
)

// CustomerUseCase agrupa las operaciones sobre clientes
type CustomerUseCase struct {
	customerRepo port.CustomerRepository
}

// NewCustomerUseCase crea una nueva instancia del caso de uso
func NewCustomerUseCase(customerRepo port.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo}
}

func (uc *CustomerUseCase) List(ctx context.Context) ([]*entity.Customer, error) {
	return uc.customerRepo.FindAll(ctx)
}

func (uc *CustomerUseCase) Get(ctx context.Context, id int64) (*entity.Customer, error) {
	return uc.customerRepo.FindByID(ctx, id)
}

func (uc *CustomerUseCase) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return uc.customerRepo.FindByEmail(ctx, strings.TrimSpace(email))
}

// SearchByName busca por nombre parcial sin distinguir mayúsculas
func (uc *CustomerUseCase) SearchByName(ctx context.Context, name string) ([]*entity.Customer, error) {
	return uc.customerRepo.SearchByName(ctx, strings.TrimSpace(name))
}

func (uc *CustomerUseCase) Count(ctx context.Context) (int64, error) {
	return uc.customerRepo.Count(ctx)
}

// Create da de alta un cliente con email único
func (uc *CustomerUseCase) Create(ctx context.Context, req request.CustomerRequest) (*entity.Customer, error) {
	customer, err := entity.NewCustomer(req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}

	exists, err := uc.customerRepo.ExistsByEmail(ctx, customer.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking customer email: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", entity.ErrEmailAlreadyInUse, customer.Email)
	}

	if err := uc.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	log.Printf("✅ Customer created: id=%d", customer.ID)
	return customer, nil
}

// Update modifica un cliente existente; el email sigue siendo único entre los demás
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, req request.CustomerRequest) (*entity.Customer, error) {
	customer, err := uc.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)
	if !strings.EqualFold(email, customer.Email) {
		other, err := uc.customerRepo.FindByEmail(ctx, email)
		switch {
		case err == nil && other.ID != id:
			return nil, fmt.Errorf("%w: %s", entity.ErrEmailAlreadyInUse, email)
		case err != nil && !errors.Is(err, entity.ErrCustomerNotFound):
			return nil, err
		}
	}

	customer.Name = strings.TrimSpace(req.Name)
	customer.Email = email
	customer.Phone = req.Phone
	customer.Address = req.Address
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	if err := uc.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	exists, err := uc.customerRepo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking customer: %w", err)
	}
	if !exists {
		return entity.ErrCustomerNotFound
	}
	return uc.customerRepo.DeleteByID(ctx, id)
}
