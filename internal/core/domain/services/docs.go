// Package services provides domain services for workflows that span more
// than one aggregate of the retail back office.
//
// The package includes:
//   - Checkout: turns a cart into a sale and withdraws the goods from the
//     cashier's warehouse
//   - GroupLoader: loads an assigned delivery into a storekeeper's van group
package services
