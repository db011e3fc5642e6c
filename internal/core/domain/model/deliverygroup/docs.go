// Package deliverygroup models a van load: deliveries a storekeeper batches
// together for joint dispatch. Grouping is entirely the operator's choice.
//
//	Preparing ──> Completed
package deliverygroup
