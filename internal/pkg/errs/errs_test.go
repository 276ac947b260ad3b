package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"granary/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("container", "RICE")

		assert.Equal(t, "container", err.ParamName)
		assert.Equal(t, "RICE", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: RICE", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("container was removed")
		err := errs.NewObjectNotFoundErrorWithCause("container", "RICE", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: container, ID is: RICE (cause: container was removed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Stringer IDs are rendered with String", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("container", stringer("MILLET"))
		assert.Equal(t, "object not found: MILLET", err.Error())
	})
}

type stringer string

func (s stringer) String() string { return string(s) }

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("amount")

		assert.Equal(t, "amount", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: amount", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("-1 is negative")
		err := errs.NewValueIsInvalidErrorWithCause("amount", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: amount (cause: -1 is negative)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("amount", 12.5, 0, 10)

		assert.Equal(t, 12.5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 10, err.Max)
		assert.Equal(t, "value is invalid: 12.5 is amount, min value is 0, max value is 10", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("container overflow")
		err := errs.NewValueIsOutOfRangeErrorWithCause("amount", -5, 0, 10, cause)

		assert.Equal(t,
			"value is invalid: -5 is amount, min value is 0, max value is 10 (cause: container overflow)",
			err.Error())
	})

	t.Run("sanitizes newlines in string values", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("label", "rice\nflour", 1, 64)

		assert.Contains(t, err.Error(), "rice flour")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("label")

		assert.Equal(t, "value is required: label", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsRequiredErrorWithCause("label", errors.New("empty string"))

		assert.Equal(t, "value is required: label (cause: empty string)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("container", "RICE"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("amount"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("amount", 11, 0, 10), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("label"), errs.ErrValueIsRequired)

	wrapped := fmt.Errorf("add goods: %w", errs.NewValueIsInvalidError("amount"))
	var target *errs.ValueIsInvalidError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, "amount", target.ParamName)
}

func TestIsInvalidArgument(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"invalid", errs.NewValueIsInvalidError("amount"), true},
		{"out of range", errs.NewValueIsOutOfRangeError("amount", 11, 0, 10), true},
		{"required", errs.NewValueIsRequiredError("label"), true},
		{"joined", errors.Join(errors.New("other"), errs.NewValueIsInvalidError("amount")), true},
		{"not found", errs.NewObjectNotFoundError("container", "RICE"), false},
		{"plain", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, errs.IsInvalidArgument(tc.err))
		})
	}
}
