// Package ws pushes committed delivery and van group changes to the
// storekeepers watching a warehouse over websockets.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"retail/internal/core/domain/model/delivery"
	"retail/internal/core/domain/model/deliverygroup"
	"retail/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

const (
	EventDeliveryChanged = "delivery.changed"
	EventGroupChanged    = "group.changed"
)

// Event is one websocket message.
type Event struct {
	Type        string          `json:"type"`
	WarehouseID uuid.UUID       `json:"warehouse_id"`
	Payload     json.RawMessage `json:"payload"`
}

type deliveryPayload struct {
	ID            uuid.UUID  `json:"id"`
	SaleID        uuid.UUID  `json:"sale_id"`
	Status        string     `json:"status"`
	StorekeeperID *uuid.UUID `json:"storekeeper_id,omitempty"`
	Address       string     `json:"address"`
	DeliveredAt   *time.Time `json:"delivered_at,omitempty"`
}

type groupPayload struct {
	ID            uuid.UUID   `json:"id"`
	StorekeeperID uuid.UUID   `json:"storekeeper_id"`
	VehicleInfo   string      `json:"vehicle_info"`
	Status        string      `json:"status"`
	Deliveries    []uuid.UUID `json:"deliveries"`
}

type roomEvent struct {
	warehouseID uuid.UUID
	message     []byte
}

// Hub keeps one room of clients per warehouse.
type Hub struct {
	rooms map[uuid.UUID]map[*Client]struct{}
	mu    sync.RWMutex

	register   chan *Client
	unregister chan *Client
	broadcast  chan roomEvent
	done       chan struct{}

	log *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		rooms:      make(map[uuid.UUID]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan roomEvent, 256),
		done:       make(chan struct{}),
		log:        log.With(slog.String("component", "delivery-board")),
	}
}

// Run serves registrations and broadcasts until ctx is done. Every client
// still connected is then closed.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for warehouseID, clients := range h.rooms {
				for c := range clients {
					close(c.send)
				}
				delete(h.rooms, warehouseID)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.warehouseID] == nil {
				h.rooms[c.warehouseID] = make(map[*Client]struct{})
			}
			h.rooms[c.warehouseID][c] = struct{}{}
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			h.drop(c)
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[ev.warehouseID] {
				select {
				case c.send <- ev.message:
				default:
					h.log.Warn("client is too slow, disconnecting", slog.String("warehouse_id", ev.warehouseID.String()))
					h.drop(c)
				}
			}
			h.mu.Unlock()
		}
	}
}

// drop must be called with mu held.
func (h *Hub) drop(c *Client) {
	clients, ok := h.rooms[c.warehouseID]
	if !ok {
		return
	}
	if _, exists := clients[c]; !exists {
		return
	}
	delete(clients, c)
	close(c.send)
	if len(clients) == 0 {
		delete(h.rooms, c.warehouseID)
	}
}

// Watchers reports how many clients follow a warehouse.
func (h *Hub) Watchers(warehouseID kernel.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[warehouseID.Bytes()])
}

func (h *Hub) DeliveryChanged(_ context.Context, d *delivery.Delivery) {
	h.publish(EventDeliveryChanged, d.WarehouseID(), deliveryPayload{
		ID:            d.ID().Bytes(),
		SaleID:        d.SaleID().Bytes(),
		Status:        d.Status().String(),
		StorekeeperID: kernel.OptionalBytes(d.Storekeeper()),
		Address:       d.Address(),
		DeliveredAt:   d.DeliveredAt(),
	})
}

func (h *Hub) GroupChanged(_ context.Context, g *deliverygroup.Group) {
	ids := make([]uuid.UUID, 0, len(g.Deliveries()))
	for _, id := range g.Deliveries() {
		ids = append(ids, id.Bytes())
	}
	h.publish(EventGroupChanged, g.WarehouseID(), groupPayload{
		ID:            g.ID().Bytes(),
		StorekeeperID: g.Storekeeper().Bytes(),
		VehicleInfo:   g.VehicleInfo(),
		Status:        g.Status().String(),
		Deliveries:    ids,
	})
}

// publish never blocks: when the queue is full the event is dropped and the
// clients catch up on their next reload.
func (h *Hub) publish(eventType string, warehouseID kernel.UUID, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("marshal event", slog.String("type", eventType), slog.Any("error", err))
		return
	}
	message, err := json.Marshal(Event{Type: eventType, WarehouseID: warehouseID.Bytes(), Payload: body})
	if err != nil {
		h.log.Error("marshal event", slog.String("type", eventType), slog.Any("error", err))
		return
	}

	select {
	case h.broadcast <- roomEvent{warehouseID: warehouseID.Bytes(), message: message}:
	default:
		h.log.Warn("event queue is full, dropping", slog.String("type", eventType))
	}
}
