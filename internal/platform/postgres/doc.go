// Package postgres provides PostgreSQL implementations of the store
// interfaces, built on database/sql with the pgx driver. Database errors are
// mapped to the store package's sentinel taxonomy before they leave this
// package.
package postgres
