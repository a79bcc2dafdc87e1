// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package, and embeds the
// schema migrations applied by the server binary.
//
// Queries go through store.DBTX so every store can run on the connection
// pool or inside a transaction obtained from store.RunInTransaction.
package postgres
