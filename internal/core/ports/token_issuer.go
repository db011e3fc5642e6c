package ports

import (
	"time"

	"retail/internal/core/domain/model/employee"
)

// TokenIssuer signs session tokens for authenticated employees.
type TokenIssuer interface {
	Issue(e *employee.Employee) (token string, expiresAt time.Time, err error)
}
