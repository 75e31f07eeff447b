package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", int64(42))

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, int64(42), err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 42", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("customer location", int64(7), cause)

		assert.Equal(t, "customer location", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: customer location, ID is: 7 (cause: record not found)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("delivery time")

		assert.Equal(t, "delivery time", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: delivery time", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("25:00 is not HH:MM")
		err := errs.NewValueIsInvalidErrorWithCause("delivery time", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: delivery time (cause: 25:00 is not HH:MM)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("cutoff hour", 25, 0, 23)

		assert.Equal(t, 25, err.Value)
		assert.Equal(t, "value is invalid: 25 is cutoff hour, min value is 0, max value is 23", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("config")
		err := errs.NewValueIsOutOfRangeErrorWithCause("dispatch hour", -1, 0, 23, cause)

		assert.Equal(t,
			"value is invalid: -1 is dispatch hour, min value is 0, max value is 23 (cause: config)",
			err.Error())
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("notes", "pan\namasado", 0, 10)
		assert.Contains(t, err.Error(), "pan amasado")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("lines")
	assert.Equal(t, "value is required: lines", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("lines", errors.New("empty"))
	assert.Equal(t, "value is required: lines (cause: empty)", withCause.Error())
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"invalid", errs.NewValueIsInvalidError("x"), true},
		{"required", errs.NewValueIsRequiredError("x"), true},
		{"out of range", errs.NewValueIsOutOfRangeError("x", 1, 2, 3), true},
		{"joined", errors.Join(errors.New("other"), errs.NewValueIsRequiredError("x")), true},
		{"wrapped", fmt.Errorf("create order: %w", errs.NewValueIsInvalidError("x")), true},
		{"not found", errs.NewObjectNotFoundError("order", 1), false},
		{"plain", errors.New("connection reset"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.IsValidation(tt.err))
		})
	}
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("order", 1), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("hour", 30, 0, 23), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("lines"), errs.ErrValueIsRequired)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, fmt.Errorf("wrap: %w", errs.NewObjectNotFoundError("order", 9)), &notFound)
	assert.Equal(t, 9, notFound.ID)
}
