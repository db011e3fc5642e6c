// Package token signs and verifies the HS256 session tokens handed out at
// login.
package token

import (
	"errors"
	"fmt"
	"time"

	"retail/internal/core/domain/model/employee"
	"retail/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuerName = "retail"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptySecret  = errors.New("token secret is required")
)

// Claims carry enough to build the actor without a database round trip.
type Claims struct {
	EmployeeID  uuid.UUID `json:"employee_id"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	Role        string    `json:"role"`
	Login       string    `json:"login"`
	jwt.RegisteredClaims
}

type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (i *Issuer) Issue(e *employee.Employee) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(i.ttl)
	claims := Claims{
		EmployeeID:  e.ID().Bytes(),
		WarehouseID: e.WarehouseID().Bytes(),
		Role:        e.Role().String(),
		Login:       e.Login(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuerName,
			Subject:   e.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse verifies the signature, issuer and expiry of a token.
func (i *Issuer) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return i.secret, nil
		},
		jwt.WithIssuer(issuerName),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Identity converts the claims back into domain values.
func (c *Claims) Identity() (kernel.UUID, employee.Role, kernel.UUID, error) {
	id, err := kernel.UUIDFromBytes(c.EmployeeID[:])
	if err != nil {
		return kernel.UUID{}, employee.UnknownRole, kernel.UUID{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	role, err := employee.ParseRole(c.Role)
	if err != nil {
		return kernel.UUID{}, employee.UnknownRole, kernel.UUID{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	warehouseID, err := kernel.UUIDFromBytes(c.WarehouseID[:])
	if err != nil {
		return kernel.UUID{}, employee.UnknownRole, kernel.UUID{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return id, role, warehouseID, nil
}
