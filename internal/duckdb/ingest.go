package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	_ "github.com/duckdb/duckdb-go/v2"

	"masterylint/internal/lint"
)

// ErrRunExists indicates the run ID was already ingested.
var ErrRunExists = errors.New("duckdb: run already ingested")

// Open opens a DuckDB database at path and applies the schema.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

// IngestResults stores one lint run with its documents, blocks, and
// findings. Ingestion is transactional; a run ID can be ingested once.
func IngestResults(ctx context.Context, db *sql.DB, results lint.Results) error {
	if ctx == nil {
		return errors.New("duckdb: context is nil")
	}
	if db == nil {
		return errors.New("duckdb: db is nil")
	}
	if results.RunID == "" {
		return errors.New("duckdb: run id is empty")
	}

	var existing int
	if err := db.QueryRowContext(ctx, "SELECT count(*) FROM runs WHERE run_id = ?", results.RunID).Scan(&existing); err != nil {
		return fmt.Errorf("check existing run: %w", err)
	}
	if existing > 0 {
		return fmt.Errorf("%w: %s", ErrRunExists, results.RunID)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ingest: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	runPK := uuid.NewString()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (run_pk, run_id, repo_name, vcs, commit_id, branch, dirty, id_scope, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runPK, results.RunID, results.Repo.Name, results.Repo.VCS, results.Repo.Commit,
		results.Repo.Branch, results.Repo.Dirty, results.IDScope, results.StartedAt, results.FinishedAt,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, file := range results.Files {
		documentID := uuid.NewString()
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO documents (document_id, run_pk, path, status, block_count, finding_count, read_error)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			documentID, runPK, file.Path, string(file.Status), len(file.Blocks), len(file.Findings), nullString(file.ReadErr),
		); err != nil {
			return fmt.Errorf("insert document %s: %w", file.Path, err)
		}
		for _, block := range file.Blocks {
			key, err := blockKey(file.Path, block)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO blocks (block_row_id, document_id, block_key, block_index, line, quiz_id, title, quiz_type)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				uuid.NewString(), documentID, key, block.Index, block.Line, block.ID, block.Title, block.Type,
			); err != nil {
				return fmt.Errorf("insert block %s: %w", block.ID, err)
			}
		}
		for _, finding := range file.Findings {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO findings (finding_id, document_id, kind, line, block_id, field, message)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				uuid.NewString(), documentID, string(finding.Kind), finding.Line,
				nullString(finding.BlockID), nullString(finding.Field), finding.Message,
			); err != nil {
				return fmt.Errorf("insert finding: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ingest: %w", err)
	}
	return nil
}

// blockKey computes a stable fingerprint for a block occurrence.
func blockKey(path string, block lint.BlockRecord) (string, error) {
	key, err := FingerprintJSON(map[string]interface{}{
		"path":    path,
		"quiz_id": block.ID,
		"line":    block.Line,
	})
	if err != nil {
		return "", fmt.Errorf("fingerprint block %s: %w", block.ID, err)
	}
	return key, nil
}

// nullString maps empty strings to SQL NULL.
func nullString(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
