// Package sale models till receipts.
//
// A sale is created completed: stock has already left the warehouse when the
// receipt is printed. Cancelling returns the goods, which is the only other
// transition.
//
//	Completed ──> Cancelled
package sale
