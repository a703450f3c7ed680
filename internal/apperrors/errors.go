package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrOutOfStock indicates that a product has no derived stock left to sell.
var ErrOutOfStock = errors.New("product is out of stock")

// ErrStockChanged indicates that stock for one or more cart lines was consumed
// between the time the line was added and the time of checkout.
var ErrStockChanged = errors.New("stock changed since items were added to the cart")

// ErrEmptyCart indicates a checkout was attempted on a cart without lines.
var ErrEmptyCart = errors.New("cart is empty")

// ErrInvalidPaymentMethod indicates a payment method outside the configured set.
var ErrInvalidPaymentMethod = errors.New("invalid payment method")

// ErrUnauthorized indicates failed operator authentication.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal is a generic infrastructure failure hidden from callers.
var ErrInternal = errors.New("internal error")

// AppError carries a status-like code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError wraps err with a code and message. err may be nil.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
