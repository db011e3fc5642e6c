package delivery_test

import (
	"testing"
	"time"

	"retail/internal/core/domain/model/delivery"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPending(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"  12 Lenina St, apt 4 ", "call before arrival",
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("creates a pending delivery", func(t *testing.T) {
		d := newPending(t)

		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.Pending, d.Status())
		assert.Equal(t, "12 Lenina St, apt 4", d.Address())
		assert.Equal(t, "call before arrival", d.Notes())
		assert.Nil(t, d.Storekeeper())
		assert.Nil(t, d.DeliveredAt())
	})

	t.Run("joins all validation errors", func(t *testing.T) {
		d, err := delivery.NewDelivery(
			kernel.UUID{}, kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), "   ", "", time.Now(),
		)

		assert.Nil(t, d)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "address")
	})
}

func TestDelivery_Validate(t *testing.T) {
	var nilDelivery *delivery.Delivery
	assert.Equal(t, delivery.ErrDeliveryIsNotConstructed, nilDelivery.Validate())
	assert.Equal(t, delivery.ErrDeliveryIsNotConstructed, (&delivery.Delivery{}).Validate())
}

func TestDelivery_Lifecycle(t *testing.T) {
	storekeeper := kernel.NewUUID()

	t.Run("pending to delivered through a group", func(t *testing.T) {
		d := newPending(t)

		require.NoError(t, d.Assign(storekeeper))
		assert.Equal(t, delivery.Assigned, d.Status())
		assert.True(t, d.IsAssignedTo(storekeeper))

		require.NoError(t, d.StartDispatch())
		assert.Equal(t, delivery.InProgress, d.Status())

		at := time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC)
		require.NoError(t, d.Complete(at))
		assert.Equal(t, delivery.Delivered, d.Status())
		require.NotNil(t, d.DeliveredAt())
		assert.Equal(t, at, *d.DeliveredAt())
	})

	t.Run("assigned delivery completes without a group", func(t *testing.T) {
		d := newPending(t)
		require.NoError(t, d.Assign(storekeeper))

		require.NoError(t, d.Complete(time.Now()))
		assert.Equal(t, delivery.Delivered, d.Status())
	})

	t.Run("cannot take an already assigned delivery", func(t *testing.T) {
		d := newPending(t)
		require.NoError(t, d.Assign(storekeeper))

		err := d.Assign(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrOperationNotAllowed)
		assert.True(t, d.IsAssignedTo(storekeeper))
	})

	t.Run("cannot assign to an invalid storekeeper", func(t *testing.T) {
		d := newPending(t)

		require.ErrorIs(t, d.Assign(kernel.UUID{}), kernel.ErrUUIDIsNotConstructed)
		assert.Equal(t, delivery.Pending, d.Status())
	})

	t.Run("pending delivery cannot be dispatched or completed", func(t *testing.T) {
		d := newPending(t)

		require.Error(t, d.StartDispatch())
		require.Error(t, d.Complete(time.Now()))
		assert.Equal(t, delivery.Pending, d.Status())
		assert.Nil(t, d.DeliveredAt())
	})

	t.Run("cancel keeps the storekeeper for history", func(t *testing.T) {
		d := newPending(t)
		require.NoError(t, d.Assign(storekeeper))

		require.NoError(t, d.Cancel())
		assert.Equal(t, delivery.Cancelled, d.Status())
		assert.True(t, d.IsAssignedTo(storekeeper))
	})

	t.Run("delivered delivery cannot be cancelled", func(t *testing.T) {
		d := newPending(t)
		require.NoError(t, d.Assign(storekeeper))
		require.NoError(t, d.Complete(time.Now()))

		require.Error(t, d.Cancel())
		assert.Equal(t, delivery.Delivered, d.Status())
	})
}

func TestRestoreDelivery(t *testing.T) {
	storekeeper := kernel.NewUUID()
	deliveredAt := time.Now()

	restore := func(status delivery.Status, sk *kernel.UUID, at *time.Time) (*delivery.Delivery, error) {
		return delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Main st 1", "", status, sk, time.Now(), at,
		)
	}

	t.Run("restores consistent states", func(t *testing.T) {
		d, err := restore(delivery.InProgress, &storekeeper, nil)
		require.NoError(t, err)
		assert.Equal(t, delivery.InProgress, d.Status())

		d, err = restore(delivery.Delivered, &storekeeper, &deliveredAt)
		require.NoError(t, err)
		assert.Equal(t, deliveredAt, *d.DeliveredAt())

		_, err = restore(delivery.Cancelled, nil, nil)
		require.NoError(t, err)
	})

	t.Run("rejects inconsistent states", func(t *testing.T) {
		_, err := restore(delivery.Pending, &storekeeper, nil)
		require.Error(t, err)

		_, err = restore(delivery.Assigned, nil, nil)
		require.Error(t, err)

		_, err = restore(delivery.Delivered, &storekeeper, nil)
		require.Error(t, err)

		_, err = restore(delivery.Assigned, &storekeeper, &deliveredAt)
		require.Error(t, err)

		_, err = restore(delivery.Unknown, nil, nil)
		require.Error(t, err)
	})
}
