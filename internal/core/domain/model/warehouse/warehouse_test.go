package warehouse_test

import (
	"testing"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/warehouse"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWarehouse(t *testing.T) {
	tests := []struct {
		name    string
		id      kernel.UUID
		wName   string
		address string
		wantErr []error
	}{
		{name: "valid", id: kernel.NewUUID(), wName: "Main warehouse", address: "12 Lenina st."},
		{name: "blank name", id: kernel.NewUUID(), wName: "  ", address: "12 Lenina st.", wantErr: []error{errs.ErrValueIsRequired}},
		{
			name:    "everything missing",
			wantErr: []error{errs.ErrValueIsRequired, kernel.ErrUUIDIsNotConstructed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := warehouse.NewWarehouse(tt.id, tt.wName, tt.address)

			if len(tt.wantErr) > 0 {
				assert.Nil(t, w)
				for _, want := range tt.wantErr {
					require.ErrorIs(t, err, want)
				}
				return
			}

			require.NoError(t, err)
			require.NoError(t, w.Validate())
			assert.Equal(t, tt.id, w.ID())
			assert.Equal(t, tt.wName, w.Name())
			assert.Equal(t, tt.address, w.Address())
		})
	}
}

func TestWarehouse_Rename(t *testing.T) {
	w, err := warehouse.NewWarehouse(kernel.NewUUID(), "Main", "Old road 1")
	require.NoError(t, err)

	require.NoError(t, w.Rename(" North ", " New road 2 "))
	assert.Equal(t, "North", w.Name())
	assert.Equal(t, "New road 2", w.Address())

	err = w.Rename("South", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, "North", w.Name(), "failed rename must not change the name")
}

func TestWarehouse_Validate(t *testing.T) {
	var nilWarehouse *warehouse.Warehouse
	require.ErrorIs(t, nilWarehouse.Validate(), warehouse.ErrWarehouseIsNotConstructed)
	require.ErrorIs(t, (&warehouse.Warehouse{}).Validate(), warehouse.ErrWarehouseIsNotConstructed)
}
