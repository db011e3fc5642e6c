package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("product", "123")

		assert.Equal(t, "product", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("product", "123", cause)

		assert.Equal(t, "product", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: product, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("sale", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("price")

		assert.Equal(t, "price", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: price", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("not a decimal")
		err := errs.NewValueIsInvalidErrorWithCause("price", cause)

		assert.Equal(t, "price", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: price (cause: not a decimal)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 150, 0, 120)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is quantity, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("discount", -5, 0, 100, cause)

		assert.Equal(t, "discount", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is discount, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("full name")

		assert.Equal(t, "full name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: full name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("full name", cause)

		assert.Equal(t, "full name", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: full name (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("login", "cashier")

		assert.Equal(t, "login", err.ParamName)
		assert.Equal(t, "cashier", err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object already exists: login is cashier", err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})

	t.Run("NewObjectAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key")
		err := errs.NewObjectAlreadyExistsErrorWithCause("phone", "+100", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object already exists: phone is +100 (cause: duplicate key)", err.Error())
	})

	t.Run("values pasted with line breaks stay on one line", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("name", "Bosch\r\nSerie 4\rdishwasher\nwhite")

		assert.Equal(t, "object already exists: name is Bosch Serie 4 dishwasher white", err.Error())
	})
}

func TestOperationNotAllowedError(t *testing.T) {
	t.Run("NewOperationNotAllowedError", func(t *testing.T) {
		err := errs.NewOperationNotAllowedError("warehouse has employees")

		assert.Equal(t, "warehouse has employees", err.Reason)
		require.NoError(t, err.Cause)
		assert.Equal(t, "operation is not allowed: warehouse has employees", err.Error())
		assert.Equal(t, errs.ErrOperationNotAllowed, err.Unwrap())
	})

	t.Run("NewOperationNotAllowedErrorWithCause", func(t *testing.T) {
		cause := errors.New("3 sales registered")
		err := errs.NewOperationNotAllowedErrorWithCause("employee has sales", cause)

		assert.Equal(t, "employee has sales", err.Reason)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"operation is not allowed: employee has sales (cause: 3 sales registered)",
			err.Error())
		assert.Equal(t, errs.ErrOperationNotAllowed, err.Unwrap())
	})

	t.Run("a wrapped status change still reads as not allowed", func(t *testing.T) {
		err := fmt.Errorf("take delivery: %w", errs.NewOperationNotAllowedErrorWithCause(
			"status transition is not allowed",
			errors.New("assigned is not a valid status to assign"),
		))

		require.ErrorIs(t, err, errs.ErrOperationNotAllowed)
		assert.NotErrorIs(t, err, errs.ErrValueIsInvalid)

		var notAllowed *errs.OperationNotAllowedError
		require.ErrorAs(t, err, &notAllowed)
		assert.Equal(t, "status transition is not allowed", notAllowed.Reason)
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrObjectAlreadyExists)
		require.Error(t, errs.ErrOperationNotAllowed)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "object already exists", errs.ErrObjectAlreadyExists.Error())
		assert.Equal(t, "operation is not allowed", errs.ErrOperationNotAllowed.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("product", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("price")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("quantity", 150, 0, 120)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("full name")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		existsErr := errs.NewObjectAlreadyExistsError("login", "admin")
		require.ErrorIs(t, existsErr, errs.ErrObjectAlreadyExists)

		notAllowedErr := errs.NewOperationNotAllowedError("root admin")
		require.ErrorIs(t, notAllowedErr, errs.ErrOperationNotAllowed)
	})

	t.Run("errors.Is finds every joined validation failure", func(t *testing.T) {
		err := errors.Join(errs.NewValueIsRequiredError("phone"), errs.NewValueIsInvalidError("price"))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
