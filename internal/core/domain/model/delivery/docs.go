// Package delivery models the shipment obligation created when a customer
// asks for a sale to be brought home.
//
// Lifecycle:
//
//	Pending ──> Assigned ──> InProgress ──> Delivered
//	   │           │  └──────────────────────┘ ▲ (direct completion)
//	   └───────────┴─────────┴──> Cancelled
//
// A storekeeper takes a pending delivery (Assign), loads it into a van
// group (StartDispatch) and finally reports it delivered. Delivered and
// Cancelled are final.
package delivery
