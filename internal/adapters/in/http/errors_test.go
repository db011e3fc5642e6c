package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/domain/model/delivery"
	"retail/internal/core/domain/model/deliverygroup"
	"retail/internal/core/domain/model/employee"
	"retail/internal/core/domain/model/inventory"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/services"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"bad credentials":    {commands.ErrInvalidCredentials, http.StatusUnauthorized},
		"other warehouse":    {commands.ErrOtherWarehouse, http.StatusForbidden},
		"foreign group":      {fmt.Errorf("add: %w", commands.ErrForeignGroup), http.StatusForbidden},
		"not found":          {errs.NewObjectNotFoundError("product", "42"), http.StatusNotFound},
		"duplicate":          {errs.NewObjectAlreadyExistsError("login", "olga"), http.StatusConflict},
		"not allowed":        {errs.NewOperationNotAllowedError("delivery is final"), http.StatusConflict},
		"insufficient stock": {inventory.ErrInsufficientStock, http.StatusConflict},
		"closed group":       {deliverygroup.ErrGroupIsClosed, http.StatusConflict},
		"invalid value":      {errs.NewValueIsInvalidError("price"), http.StatusBadRequest},
		"required value":     {errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		"empty cart":         {services.ErrEmptyCart, http.StatusBadRequest},
		"joined validation":  {errors.Join(errs.NewValueIsRequiredError("name"), errs.NewValueIsRequiredError("phone")), http.StatusBadRequest},
		"unexpected failure": {errors.New("connection reset"), http.StatusInternalServerError},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestStatusFor_StatusTransitions(t *testing.T) {
	tests := map[string]func() error{
		"complete pending delivery": func() error {
			_, err := delivery.Pending.Complete()
			return err
		},
		"take assigned delivery": func() error {
			_, err := delivery.Assigned.Assign()
			return err
		},
		"cancel delivered delivery": func() error {
			_, err := delivery.Delivered.Cancel()
			return err
		},
		"complete completed group": func() error {
			_, err := deliverygroup.Completed.Complete()
			return err
		},
	}

	for name, transition := range tests {
		t.Run(name, func(t *testing.T) {
			err := transition()

			require.Error(t, err)
			assert.Equal(t, http.StatusConflict, statusFor(err))
		})
	}
}

func TestScopeWarehouse(t *testing.T) {
	own := kernel.NewUUID()
	requested := kernel.NewUUID()

	admin, err := commands.NewActor(kernel.NewUUID(), employee.Admin, own)
	require.NoError(t, err)
	storekeeper, err := commands.NewActor(kernel.NewUUID(), employee.Storekeeper, own)
	require.NoError(t, err)

	t.Run("admin keeps the filter", func(t *testing.T) {
		assert.Equal(t, &requested, scopeWarehouse(admin, &requested))
		assert.Nil(t, scopeWarehouse(admin, nil))
	})

	t.Run("others are pinned to their warehouse", func(t *testing.T) {
		got := scopeWarehouse(storekeeper, &requested)
		require.NotNil(t, got)
		assert.True(t, got.IsEqual(own))

		got = scopeWarehouse(storekeeper, nil)
		require.NotNil(t, got)
		assert.True(t, got.IsEqual(own))
	})
}
