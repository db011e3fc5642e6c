// Package queries contains the read side of the back office. Query handlers
// run SQL directly against the tables through sqlx and return flat read
// models shaped for the API and the CLI reports. They never load
// aggregates.
package queries
