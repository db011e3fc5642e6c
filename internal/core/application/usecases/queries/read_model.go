package queries

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"retail/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// filter collects optional WHERE conditions written with "?" placeholders.
// The handler rebinds the final statement for the driver.
type filter struct {
	conditions []string
	args       []any
}

func (f *filter) add(condition string, args ...any) {
	f.conditions = append(f.conditions, condition)
	f.args = append(f.args, args...)
}

func (f *filter) where() string {
	if len(f.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(f.conditions, " AND ")
}

func restoreID(raw uuid.UUID) (kernel.UUID, error) {
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("read model id: %w", err)
	}
	return id, nil
}

func restoreMoney(amount decimal.Decimal) (kernel.Money, error) {
	m, err := kernel.NewMoney(amount)
	if err != nil {
		return kernel.Money{}, fmt.Errorf("read model amount: %w", err)
	}
	return m, nil
}

func restoreOptionalID(raw uuid.NullUUID) (*kernel.UUID, error) {
	if !raw.Valid {
		return nil, nil
	}
	id, err := restoreID(raw.UUID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
