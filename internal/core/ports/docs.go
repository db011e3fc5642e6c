// Package ports defines the contracts between the retail domain and the
// infrastructure: repositories for every aggregate, the unit of work that
// binds them to one transaction, and the outbound notifications sent after
// a transaction commits.
package ports
