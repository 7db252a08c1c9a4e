//go:build integration

// Package testdb provides PostgreSQL helpers for integration tests. Tests are
// isolated by running inside a transaction that is always rolled back.
package testdb
