package customer_test

import (
	"testing"
	"time"

	"retail/internal/core/domain/model/customer"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	at := time.Now()
	c, err := customer.NewCustomer(kernel.NewUUID(), "Ivan Ivanov", " +79001112233 ", "", "Mira 5-12", at)

	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, "+79001112233", c.Phone())
	assert.Equal(t, at, c.CreatedAt())

	_, err = customer.NewCustomer(kernel.NewUUID(), "", "", "", "", at)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	for _, field := range []string{"full name", "phone", "address"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestNewWalkInCustomer(t *testing.T) {
	c, err := customer.NewWalkInCustomer(kernel.NewUUID(), "+79005554433", "Lesnaya 1", time.Now())

	require.NoError(t, err)
	assert.Equal(t, "Customer +79005554433", c.FullName())
	assert.Empty(t, c.Email())

	_, err = customer.NewWalkInCustomer(kernel.NewUUID(), "+79005554433", " ", time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCustomer_Update(t *testing.T) {
	c, err := customer.NewCustomer(kernel.NewUUID(), "Ivan", "1", "", "Mira 5", time.Now())
	require.NoError(t, err)

	require.NoError(t, c.Update("Ivan Petrov", "2", "ivan@mail.local", "Mira 7"))
	assert.Equal(t, "Ivan Petrov", c.FullName())
	assert.Equal(t, "ivan@mail.local", c.Email())

	require.Error(t, c.Update("Ivan", "", "", "Mira 7"))
	assert.Equal(t, "2", c.Phone())
}
