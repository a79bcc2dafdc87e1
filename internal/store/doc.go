// Package store declares the persistence contracts for users and cards
// along with the store-level error values. internal/platform/postgres
// implements them.
package store
