package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fieldError wraps a kind the way model.ValidationError does.
type fieldError struct{ field string }

func (e *fieldError) Error() string { return e.field + " is invalid" }
func (e *fieldError) Unwrap() error { return ErrValidation }

func TestError_IsMatchesByCode(t *testing.T) {
	err := NewNotFound(ErrMsgItemNotInCart)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, fmt.Errorf("remove: %w", err), ErrNotFound)
	assert.False(t, errors.Is(err, ErrInsufficientStock))
	assert.Equal(t, ErrMsgItemNotInCart, err.Error())
}

func TestError_IsIgnoresWrappedTargets(t *testing.T) {
	id, name := &fieldError{"id"}, &fieldError{"name"}

	assert.ErrorIs(t, id, ErrValidation)
	assert.False(t, errors.Is(id, name))
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, CodeUnknown},
		{"plain error", errors.New("boom"), CodeUnknown},
		{"direct", NewEmptyCart(ErrMsgCartEmpty), CodeEmptyCart},
		{"wrapped", fmt.Errorf("checkout: %w", New(CodeInsufficientPayment, ErrMsgInsufficientPayment)), CodeInsufficientPayment},
		{"through a wrapping type", &fieldError{"price"}, CodeValidation},
		{"formatted", Newf(CodeInvalidArgument, ErrMsgDiscountRange, 1.0, 99.0), CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestCode_String(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", CodeNotFound.String())
	assert.Equal(t, "UNKNOWN", Code(99).String())
}
