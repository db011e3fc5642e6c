package sale_test

import (
	"testing"
	"time"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/sale"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(t *testing.T, productID kernel.UUID, qty int, price string) sale.Line {
	t.Helper()
	m, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	l, err := sale.NewLine(productID, qty, m)
	require.NoError(t, err)
	return l
}

func TestNewLine(t *testing.T) {
	l := line(t, kernel.NewUUID(), 3, "199.99")
	assert.Equal(t, "599.97", l.Total().String())

	_, err := sale.NewLine(kernel.NewUUID(), 0, kernel.ZeroMoney())
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = sale.NewLine(kernel.UUID{}, 1, kernel.Money{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
}

func TestNewSale(t *testing.T) {
	fridge, kettle := kernel.NewUUID(), kernel.NewUUID()

	t.Run("merges lines of the same product", func(t *testing.T) {
		s, err := sale.NewSale(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), []sale.Line{
			line(t, fridge, 1, "45990"),
			line(t, kettle, 2, "1990.50"),
			line(t, fridge, 2, "1"),
		}, time.Now())
		require.NoError(t, err)
		require.NoError(t, s.Validate())

		lines := s.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, fridge, lines[0].ProductID())
		assert.Equal(t, 3, lines[0].Quantity())
		assert.Equal(t, "45990.00", lines[0].UnitPrice().String())
		assert.Equal(t, "141951.00", s.Total().String())
		assert.Equal(t, sale.Completed, s.Status())
	})

	t.Run("requires lines", func(t *testing.T) {
		_, err := sale.NewSale(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, time.Now())
		require.ErrorIs(t, err, sale.ErrSaleHasNoLines)
	})

	t.Run("rejects zero value lines", func(t *testing.T) {
		_, err := sale.NewSale(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), []sale.Line{{}}, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSale_Cancel(t *testing.T) {
	s, err := sale.NewSale(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), []sale.Line{
		line(t, kernel.NewUUID(), 1, "10"),
	}, time.Now())
	require.NoError(t, err)

	require.NoError(t, s.Cancel())
	assert.Equal(t, sale.Cancelled, s.Status())
	require.ErrorIs(t, s.Cancel(), sale.ErrSaleAlreadyCancelled)
}

func TestRestoreSale(t *testing.T) {
	lines := []sale.Line{line(t, kernel.NewUUID(), 1, "10")}

	s, err := sale.RestoreSale(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), lines, time.Now(), sale.Cancelled)
	require.NoError(t, err)
	assert.Equal(t, sale.Cancelled, s.Status())

	_, err = sale.RestoreSale(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), lines, time.Now(), sale.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParseStatus(t *testing.T) {
	s, err := sale.ParseStatus("cancelled")
	require.NoError(t, err)
	assert.Equal(t, sale.Cancelled, s)

	_, err = sale.ParseStatus("refunded")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
