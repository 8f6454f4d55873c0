package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"housebuilder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("houseId", "123")

		assert.Equal(t, "houseId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("houseId", "123", cause)

		assert.Equal(t, "houseId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: houseId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("houseId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})

	t.Run("newlines in ID are flattened", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("houseId", "abc\ndef")
		assert.Equal(t, "object not found: abc def", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("variant")

		assert.Equal(t, "variant", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: variant", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("variant", cause)

		assert.Equal(t, "variant", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: variant (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("houseId")

		assert.Equal(t, "houseId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: houseId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("houseId", cause)

		assert.Equal(t, "houseId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: houseId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works through wrapping", func(t *testing.T) {
		notFound := fmt.Errorf("loading house: %w", errs.NewObjectNotFoundError("houseId", "123"))
		require.ErrorIs(t, notFound, errs.ErrObjectNotFound)

		require.ErrorIs(t, errs.NewValueIsInvalidError("variant"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("houseId"), errs.ErrValueIsRequired)
	})

	t.Run("errors.As exposes details", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", errs.NewObjectNotFoundError("houseId", "123"))

		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "houseId", notFound.ParamName)
	})
}
