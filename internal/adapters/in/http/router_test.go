package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/domain/model/delivery"
	"retail/internal/core/domain/model/employee"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/ports"
	"retail/internal/generated/servers"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBoard struct {
	served []kernel.UUID
}

func (b *fakeBoard) ServeWarehouse(w http.ResponseWriter, _ *http.Request, warehouseID kernel.UUID) error {
	b.served = append(b.served, warehouseID)
	w.WriteHeader(http.StatusSwitchingProtocols)
	return nil
}

// memoryDeliveries is a transaction-less delivery store for driving the
// real command handlers through the router.
type memoryDeliveries struct {
	byID map[kernel.UUID]*delivery.Delivery
}

func (m *memoryDeliveries) Create() commands.DeliveryUoW { return m }

func (m *memoryDeliveries) Begin(context.Context) error { return nil }
func (m *memoryDeliveries) Commit(context.Context) error { return nil }
func (m *memoryDeliveries) Rollback(context.Context) error { return nil }

func (m *memoryDeliveries) DeliveryRepository() ports.DeliveryRepository { return m }

func (m *memoryDeliveries) DeliveryGroupRepository() ports.DeliveryGroupRepository { return nil }

func (m *memoryDeliveries) Add(_ context.Context, d *delivery.Delivery) error {
	m.byID[d.ID()] = d
	return nil
}

func (m *memoryDeliveries) Update(_ context.Context, d *delivery.Delivery) error {
	m.byID[d.ID()] = d
	return nil
}

func (m *memoryDeliveries) Get(_ context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	d, ok := m.byID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("delivery", id)
	}
	return d, nil
}

func (m *memoryDeliveries) GetBySale(context.Context, kernel.UUID) ([]*delivery.Delivery, error) {
	return nil, nil
}

func (m *memoryDeliveries) ExistsForCustomer(context.Context, kernel.UUID) (bool, error) {
	return false, nil
}

type routerFixture struct {
	handler   http.Handler
	board     *fakeBoard
	warehouse kernel.UUID
}

func newRouterFixture(t *testing.T) routerFixture {
	t.Helper()
	return newRouterFixtureWith(t, Commands{})
}

func newRouterFixtureWith(t *testing.T, cmds Commands) routerFixture {
	t.Helper()

	warehouseID := kernel.NewUUID()
	admin, err := commands.NewActor(kernel.NewUUID(), employee.Admin, warehouseID)
	require.NoError(t, err)
	cashier, err := commands.NewActor(kernel.NewUUID(), employee.Cashier, warehouseID)
	require.NoError(t, err)
	storekeeper, err := commands.NewActor(kernel.NewUUID(), employee.Storekeeper, warehouseID)
	require.NoError(t, err)

	actors := map[string]commands.Actor{
		"admin-token":       admin,
		"cashier-token":     cashier,
		"storekeeper-token": storekeeper,
	}
	resolve := func(token string) (commands.Actor, error) {
		actor, ok := actors[token]
		if !ok {
			return commands.Actor{}, errors.New("unknown token")
		}
		return actor, nil
	}

	board := &fakeBoard{}
	e, err := NewRouter(RouterConfig{
		Server:  NewServer(cmds, Queries{}),
		Resolve: resolve,
		Board:   board,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return routerFixture{handler: e, board: board, warehouse: warehouseID}
}

func (f routerFixture) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRouter_Health(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestRouter_Authentication(t *testing.T) {
	f := newRouterFixture(t)

	t.Run("missing token", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/warehouses", "", "")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, http.StatusUnauthorized, decodeError(t, rec).Code)
	})

	t.Run("unknown token", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/warehouses", "forged", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("login is public", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/auth/login", "", `{"login":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_RoleIsChecked(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/warehouses", "cashier-token", `{"name":"North","address":"Lenina 1"}`)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "cashier")
}

func TestRouter_ProductRights(t *testing.T) {
	f := newRouterFixture(t)
	body := `{"name":"Kettle","category":"Small","price":"19.90"}`
	target := "/api/v1/products/" + kernel.NewUUID().String()

	t.Run("cashier cannot add products", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/products", "cashier-token", body)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("storekeeper cannot edit products", func(t *testing.T) {
		rec := f.do(http.MethodPut, target, "storekeeper-token", body)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("storekeeper cannot delete products", func(t *testing.T) {
		rec := f.do(http.MethodDelete, target, "storekeeper-token", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRouter_RequestValidation(t *testing.T) {
	f := newRouterFixture(t)

	tests := map[string]struct {
		method string
		target string
		body   string
	}{
		"missing required field": {
			method: http.MethodPost,
			target: "/api/v1/warehouses",
			body:   `{"name":"North"}`,
		},
		"negative stock": {
			method: http.MethodPut,
			target: "/api/v1/stock",
			body: `{"product_id":"` + kernel.NewUUID().String() +
				`","warehouse_id":"` + kernel.NewUUID().String() + `","quantity":-1}`,
		},
		"malformed path id": {
			method: http.MethodDelete,
			target: "/api/v1/products/not-a-uuid",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rec := f.do(tt.method, tt.target, "admin-token", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
		})
	}
}

func TestRouter_DeliveryBoard(t *testing.T) {
	f := newRouterFixture(t)
	own := "/ws/warehouses/" + f.warehouse.String() + "/deliveries"
	other := "/ws/warehouses/" + kernel.NewUUID().String() + "/deliveries"

	t.Run("token is required", func(t *testing.T) {
		rec := f.do(http.MethodGet, own, "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("other warehouse is forbidden", func(t *testing.T) {
		rec := f.do(http.MethodGet, other+"?token=cashier-token", "", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin watches any warehouse", func(t *testing.T) {
		rec := f.do(http.MethodGet, other+"?token=admin-token", "", "")

		assert.Equal(t, http.StatusSwitchingProtocols, rec.Code)
	})

	t.Run("own warehouse", func(t *testing.T) {
		rec := f.do(http.MethodGet, own+"?token=cashier-token", "", "")

		assert.Equal(t, http.StatusSwitchingProtocols, rec.Code)
		require.NotEmpty(t, f.board.served)
		assert.True(t, f.board.served[len(f.board.served)-1].IsEqual(f.warehouse))
	})
}

func TestRouter_DeliveryTransitions(t *testing.T) {
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Mira 5", "", time.Now(),
	)
	require.NoError(t, err)
	store := &memoryDeliveries{byID: map[kernel.UUID]*delivery.Delivery{d.ID(): d}}

	f := newRouterFixtureWith(t, Commands{
		TakeDelivery:     commands.NewTakeDeliveryCommandHandler(store),
		CompleteDelivery: commands.NewCompleteDeliveryCommandHandler(store),
	})
	target := "/api/v1/deliveries/" + d.ID().String()

	rec := f.do(http.MethodPost, target+"/take", "admin-token", "")
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	t.Run("taking twice conflicts", func(t *testing.T) {
		rec := f.do(http.MethodPost, target+"/take", "admin-token", "")

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "assigned is not a valid status to assign")
	})

	t.Run("completing twice conflicts", func(t *testing.T) {
		require.Equal(t, http.StatusNoContent, f.do(http.MethodPost, target+"/complete", "admin-token", "").Code)

		rec := f.do(http.MethodPost, target+"/complete", "admin-token", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown delivery", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/deliveries/"+kernel.NewUUID().String()+"/take", "admin-token", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
