// Package postgres provides PostgreSQL implementations of the store
// interfaces, along with mapping of driver-level errors to the shared
// store error sentinels and the embedded goose migrations.
package postgres
