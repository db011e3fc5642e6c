package inventory_test

import (
	"testing"

	"retail/internal/core/domain/model/inventory"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStock(t *testing.T, q int) *inventory.Stock {
	t.Helper()
	s, err := inventory.NewStock(kernel.NewUUID(), kernel.NewUUID(), q)
	require.NoError(t, err)
	return s
}

func TestNewStock(t *testing.T) {
	s := newStock(t, 4)
	require.NoError(t, s.Validate())
	assert.Equal(t, 4, s.Quantity())

	_, err := inventory.NewStock(kernel.NewUUID(), kernel.NewUUID(), -1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = inventory.NewStock(kernel.UUID{}, kernel.NewUUID(), 0)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	empty, err := inventory.EmptyStock(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	assert.Zero(t, empty.Quantity())
}

func TestStock_Withdraw(t *testing.T) {
	t.Run("takes units out", func(t *testing.T) {
		s := newStock(t, 5)
		require.NoError(t, s.Withdraw(5))
		assert.Zero(t, s.Quantity())
	})

	t.Run("refuses more than available", func(t *testing.T) {
		s := newStock(t, 2)
		err := s.Withdraw(3)
		require.ErrorIs(t, err, inventory.ErrInsufficientStock)
		assert.Contains(t, err.Error(), "has 2, requested 3")
		assert.Equal(t, 2, s.Quantity())
	})

	t.Run("refuses non-positive quantities", func(t *testing.T) {
		s := newStock(t, 2)
		require.ErrorIs(t, s.Withdraw(0), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, s.Withdraw(-1), errs.ErrValueIsOutOfRange)
	})
}

func TestStock_RestockAndSet(t *testing.T) {
	s := newStock(t, 1)

	require.NoError(t, s.Restock(2))
	assert.Equal(t, 3, s.Quantity())
	require.ErrorIs(t, s.Restock(0), errs.ErrValueIsOutOfRange)

	require.NoError(t, s.Set(0))
	assert.Zero(t, s.Quantity())
	require.ErrorIs(t, s.Set(-5), errs.ErrValueIsOutOfRange)
}

func TestStock_IsLow(t *testing.T) {
	s := newStock(t, 3)
	assert.True(t, s.IsLow(4))
	assert.False(t, s.IsLow(3))
	assert.False(t, s.IsLow(0))
}
