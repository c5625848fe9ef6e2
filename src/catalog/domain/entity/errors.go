package entity

import "github.com/iagobrdev/orders-bootcamp/src/shared/domain/apperror"

var (
	ErrCustomerNotFound      = apperror.New(apperror.KindNotFound, "customer not found")
	ErrCustomerNameRequired  = apperror.New(apperror.KindInvalidRequest, "customer name is required")
	ErrCustomerEmailRequired = apperror.New(apperror.KindInvalidRequest, "customer email is required")
	ErrEmailAlreadyInUse     = apperror.New(apperror.KindConflict, "a customer with this email already exists")
	ErrCustomerHasOrders     = apperror.New(apperror.KindConflict, "customer is referenced by existing orders")

	ErrProductNotFound     = apperror.New(apperror.KindNotFound, "product not found")
	ErrProductNameRequired = apperror.New(apperror.KindInvalidRequest, "product name is required")
	ErrInvalidPrice        = apperror.New(apperror.KindInvalidRequest, "product price must be greater than zero")
	ErrNegativeStock       = apperror.New(apperror.KindInvalidRequest, "stock quantity cannot be negative")
	ErrInvalidCategory     = apperror.New(apperror.KindInvalidRequest, "invalid product category")
	ErrInvalidPriceRange   = apperror.New(apperror.KindInvalidRequest, "invalid price range")
	ErrProductHasOrders    = apperror.New(apperror.KindConflict, "product is referenced by existing orders")
)
