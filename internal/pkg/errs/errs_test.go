package errs_test

import (
	"errors"
	"testing"

	"tourdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "O-17")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "O-17", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: O-17", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("driver", "D1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: driver, ID is: D1 (cause: connection reset)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("city")
	assert.Equal(t, "value is invalid: city", err.Error())

	cause := errors.New("blank")
	err = errs.NewValueIsInvalidErrorWithCause("city", cause)
	assert.Equal(t, "value is invalid: city (cause: blank)", err.Error())
	assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("message", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("hour", 25, 0, 23)

		assert.Equal(t, 25, err.Value)
		assert.Equal(t, "value is invalid: 25 is hour, min value is 0, max value is 23", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "line\nbreak", 0, 10)
		assert.Contains(t, err.Error(), "line break")
		assert.NotContains(t, err.Error(), "\n")
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("minute", -1, 0, 59, errors.New("negative"))
		assert.Equal(t,
			"value is invalid: -1 is minute, min value is 0, max value is 59 (cause: negative)",
			err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("order id")
	assert.Equal(t, "value is required: order id", err.Error())

	err = errs.NewValueIsRequiredErrorWithCause("order id", errors.New("empty"))
	assert.Equal(t, "value is required: order id (cause: empty)", err.Error())
}

func TestErrorsMatchSentinels(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("tour", "Lyon"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("n", 4, 0, 3), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("city"), errs.ErrValueIsRequired)
}
