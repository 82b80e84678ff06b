// Package postgres contains the PostgreSQL implementations of the store
// interfaces, built on database/sql with the pgx driver. MapError translates
// driver errors into the sentinel errors defined by the store package.
package postgres
