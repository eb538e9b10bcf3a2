package duckdb

import (
	"database/sql"
	_ "embed"
	"errors"
)

// schemaDDL is the lint-history schema: runs, documents, blocks,
// findings, and the reporting views over them.
//
//go:embed schema.sql
var schemaDDL string

// SchemaDDL exposes the embedded DDL for tooling and tests.
func SchemaDDL() string {
	return schemaDDL
}

// EnsureSchema creates the lint-history tables and views if missing.
// The DDL is idempotent, so it is safe to run on every open.
func EnsureSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("duckdb: db is nil")
	}
	_, err := db.Exec(schemaDDL)
	return err
}
