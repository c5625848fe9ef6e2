package entity

import "github.com/iagobrdev/orders-bootcamp/src/shared/domain/apperror"

// CreateOrderFailedMessage mensaje fijo con el que falla la creación de pedidos
const CreateOrderFailedMessage = "error processing order, check the data provided"

var (
	ErrInvalidOrder      = apperror.New(apperror.KindInvalidRequest, "order is required")
	ErrCustomerRequired  = apperror.New(apperror.KindInvalidRequest, "customer is required")
	ErrCustomerNotFound  = apperror.New(apperror.KindNotFound, "customer not found")
	ErrProductRequired   = apperror.New(apperror.KindInvalidRequest, "product is required")
	ErrProductNotFound   = apperror.New(apperror.KindNotFound, "product not found")
	ErrInvalidQuantity   = apperror.New(apperror.KindInvalidRequest, "quantity must be greater than zero")
	ErrInsufficientStock = apperror.New(apperror.KindInsufficientStock, "insufficient stock")
	ErrOrderNotFound     = apperror.New(apperror.KindNotFound, "order not found")

	ErrInvalidStatus           = apperror.New(apperror.KindInvalidRequest, "invalid order status")
	ErrInvalidPaymentMethod    = apperror.New(apperror.KindInvalidRequest, "invalid payment method")
	ErrInvalidStatusTransition = apperror.New(apperror.KindInvalidRequest, "order status is final and cannot change")
	ErrInvalidDate             = apperror.New(apperror.KindInvalidRequest, "invalid date format, expected YYYY-MM-DD")
	ErrInvalidPeriod           = apperror.New(apperror.KindInvalidRequest, "start date must not be after end date")
)
