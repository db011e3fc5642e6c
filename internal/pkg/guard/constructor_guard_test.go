package guard_test

import (
	"errors"
	"sync"
	"testing"

	"retail/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("receipt must be created via NewReceipt")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInStruct(t *testing.T) {
	errReceiptNotConstructed := errors.New("receipt must be created via NewReceipt")

	type receipt struct {
		number string
		guard  guard.ConstructorGuard
	}

	newReceipt := func(number string) (receipt, error) {
		if number == "" {
			return receipt{}, errors.New("number is required")
		}
		return receipt{number: number, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_marks_struct", func(t *testing.T) {
		r, err := newReceipt("R-1")

		require.NoError(t, err)
		require.NoError(t, r.guard.Validate(errReceiptNotConstructed))
	})

	t.Run("literal_struct_is_rejected", func(t *testing.T) {
		r := receipt{number: "R-2"}

		require.ErrorIs(t, r.guard.Validate(errReceiptNotConstructed), errReceiptNotConstructed)
	})

	t.Run("copies_keep_state", func(t *testing.T) {
		r, _ := newReceipt("R-3")
		c := r

		require.NoError(t, c.guard.Validate(errReceiptNotConstructed))
	})
}

func TestConstructorGuard_Concurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(validationError))
		}()
	}
	wg.Wait()
}
