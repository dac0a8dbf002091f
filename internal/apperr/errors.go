package apperr

import (
	"errors"
	"fmt"
)

type Code int

const (
	CodeUnknown Code = iota
	CodeValidation
	CodeNotFound
	CodeInsufficientStock
	CodeEmptyCart
	CodeInvalidArgument
	CodeInsufficientPayment
)

// Error message constants for register domain.
const (
	ErrMsgProductNotFound     = "Product not found."
	ErrMsgItemNotInCart       = "Product not found in the cart."
	ErrMsgInsufficientStock   = "Not enough stock available."
	ErrMsgCartEmpty           = "Cart empty."
	ErrMsgNothingToCheckout   = "Cart empty. Nothing to checkout."
	ErrMsgNegativeQuantity    = "Quantity must be a non-negative integer."
	ErrMsgDiscountRange       = "Invalid input. Please enter a valid number between %v and %v."
	ErrMsgInsufficientPayment = "Invalid entry. Please enter an amount greater than the amount to be paid."
)

func (c Code) String() string {
	switch c {
	case CodeValidation:
		return "VALIDATION"
	case CodeNotFound:
		return "NOT_FOUND"
	case CodeInsufficientStock:
		return "INSUFFICIENT_STOCK"
	case CodeEmptyCart:
		return "EMPTY_CART"
	case CodeInvalidArgument:
		return "INVALID_ARGUMENT"
	case CodeInsufficientPayment:
		return "INSUFFICIENT_PAYMENT"
	default:
		return "UNKNOWN"
	}
}

// Error is a non-fatal outcome of a catalog or cart operation. Two errors
// match under errors.Is when their codes are equal.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is compares against target itself, not against errors target wraps.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Kind sentinels for errors.Is checks.
var (
	ErrValidation          = &Error{Code: CodeValidation, Message: "validation failed"}
	ErrNotFound            = &Error{Code: CodeNotFound, Message: "not found"}
	ErrInsufficientStock   = &Error{Code: CodeInsufficientStock, Message: ErrMsgInsufficientStock}
	ErrEmptyCart           = &Error{Code: CodeEmptyCart, Message: ErrMsgCartEmpty}
	ErrInvalidArgument     = &Error{Code: CodeInvalidArgument, Message: "invalid argument"}
	ErrInsufficientPayment = &Error{Code: CodeInsufficientPayment, Message: ErrMsgInsufficientPayment}
)

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func NewNotFound(message string) *Error {
	return New(CodeNotFound, message)
}

func NewInsufficientStock(message string) *Error {
	return New(CodeInsufficientStock, message)
}

func NewEmptyCart(message string) *Error {
	return New(CodeEmptyCart, message)
}

func NewInvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
