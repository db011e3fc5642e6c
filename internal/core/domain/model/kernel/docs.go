// Package kernel provides the value objects shared by every aggregate of the
// retail back office:
//   - UUID: entity identifiers wrapping github.com/google/uuid
//   - Money: non-negative decimal amounts with cent precision
//
// Both are immutable; their zero values are invalid where noted.
package kernel
