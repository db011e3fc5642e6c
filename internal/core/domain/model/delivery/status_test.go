package delivery_test

import (
	"fmt"
	"testing"

	"retail/internal/core/domain/model/delivery"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[delivery.Status]string{
		delivery.Unknown:    "unknown",
		delivery.Pending:    "pending",
		delivery.Assigned:   "assigned",
		delivery.InProgress: "in_progress",
		delivery.Delivered:  "delivered",
		delivery.Cancelled:  "cancelled",
		delivery.Status(42): "unknown",
	}
	for status, want := range cases {
		assert.Equal(t, want, status.String())
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "assigned", "in_progress", "delivered", "cancelled"} {
		t.Run(s, func(t *testing.T) {
			status, err := delivery.ParseStatus(s)

			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		})
	}

	t.Run("rejects unknown names", func(t *testing.T) {
		for _, s := range []string{"", "unknown", "PENDING", "shipped"} {
			_, err := delivery.ParseStatus(s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, s)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []delivery.Status{delivery.Unknown, delivery.Status(-1), delivery.Status(6)} {
		t.Run(fmt.Sprintf("rejects %d", int(s)), func(t *testing.T) {
			err := s.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		})
	}
}

func TestStatus_Transitions(t *testing.T) {
	type transition func(delivery.Status) (delivery.Status, error)

	all := []delivery.Status{
		delivery.Pending, delivery.Assigned, delivery.InProgress, delivery.Delivered, delivery.Cancelled,
	}

	tests := []struct {
		name    string
		apply   transition
		allowed map[delivery.Status]delivery.Status
	}{
		{
			name:    "assign",
			apply:   delivery.Status.Assign,
			allowed: map[delivery.Status]delivery.Status{delivery.Pending: delivery.Assigned},
		},
		{
			name:    "dispatch",
			apply:   delivery.Status.StartDispatch,
			allowed: map[delivery.Status]delivery.Status{delivery.Assigned: delivery.InProgress},
		},
		{
			name:  "complete",
			apply: delivery.Status.Complete,
			allowed: map[delivery.Status]delivery.Status{
				delivery.Assigned:   delivery.Delivered,
				delivery.InProgress: delivery.Delivered,
			},
		},
		{
			name:  "cancel",
			apply: delivery.Status.Cancel,
			allowed: map[delivery.Status]delivery.Status{
				delivery.Pending:    delivery.Cancelled,
				delivery.Assigned:   delivery.Cancelled,
				delivery.InProgress: delivery.Cancelled,
			},
		},
	}

	for _, tt := range tests {
		for _, from := range all {
			t.Run(fmt.Sprintf("%s from %s", tt.name, from), func(t *testing.T) {
				next, err := tt.apply(from)

				want, ok := tt.allowed[from]
				if ok {
					require.NoError(t, err)
					assert.Equal(t, want, next)
					return
				}
				require.ErrorIs(t, err, errs.ErrOperationNotAllowed)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s is not a valid status to %s", from, tt.name))
				assert.Equal(t, delivery.Unknown, next)
			})
		}
	}
}

func TestStatus_ValidateCanHaveStorekeeper(t *testing.T) {
	assert.Error(t, delivery.Pending.ValidateCanHaveStorekeeper(true))
	assert.NoError(t, delivery.Pending.ValidateCanHaveStorekeeper(false))

	for _, s := range []delivery.Status{delivery.Assigned, delivery.InProgress, delivery.Delivered} {
		assert.NoError(t, s.ValidateCanHaveStorekeeper(true), s.String())
		assert.Error(t, s.ValidateCanHaveStorekeeper(false), s.String())
	}

	assert.NoError(t, delivery.Cancelled.ValidateCanHaveStorekeeper(true))
	assert.NoError(t, delivery.Cancelled.ValidateCanHaveStorekeeper(false))
}

func TestStatus_IsFinal(t *testing.T) {
	assert.True(t, delivery.Delivered.IsFinal())
	assert.True(t, delivery.Cancelled.IsFinal())
	assert.False(t, delivery.Pending.IsFinal())
	assert.False(t, delivery.InProgress.IsFinal())
}
