package apperror

import "errors"

// Kind clasifica un error de aplicación para que la capa HTTP decida el status
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidRequest
	KindInsufficientStock
	KindBusiness
	KindConflict
)

// String devuelve el nombre del tipo de error
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidRequest:
		return "invalid_request"
	case KindInsufficientStock:
		return "insufficient_stock"
	case KindBusiness:
		return "business_error"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error es un error con tipo. Err conserva la causa original (puede ser nil)
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// New crea un error con tipo sin causa
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Business crea un BusinessError que envuelve la causa original
func Business(message string, cause error) *Error {
	return &Error{Kind: KindBusiness, Message: message, Err: cause}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf devuelve el tipo del error más externo de la cadena.
// Un error sin tipo se considera interno.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind indica si el error más externo de la cadena es del tipo indicado
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
