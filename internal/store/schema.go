// Copyright (c) 2026 Tessa Davenport. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/xwb1989/sqlparser"
)

//go:embed schema.sql
var schemaFS embed.FS

// loadSchema returns the schema script text. An external script path
// configured at construction takes precedence over the embedded
// default. ok is false when no script is available; the reason is
// logged, matching the "absent schema yields false, not an error"
// contract of ApplySchema.
func (s *Store) loadSchema() (script string, ok bool) {
	if s.schemaPath != "" {
		data, err := os.ReadFile(s.schemaPath)
		if err != nil {
			s.logger.Warn("schema script unavailable", "path", s.schemaPath, "error", err)
			return "", false
		}
		return string(data), true
	}

	data, err := fs.ReadFile(schemaFS, "schema.sql")
	if err != nil {
		s.logger.Warn("embedded schema unavailable", "error", err)
		return "", false
	}
	return string(data), true
}

// applyScript executes the schema script as a single batch inside one
// transaction, so a script that fails partway leaves no tables behind.
func applyScript(ctx context.Context, db *sql.DB, script string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, script); err != nil {
		return fmt.Errorf("exec schema: %w", err)
	}
	return tx.Commit()
}

// TablesInScript returns the names of tables created by the DDL
// statements in script, in order of appearance. A statement the parser
// cannot handle yields an error; callers treat that as "verification
// unavailable" rather than a schema failure.
func TablesInScript(script string) ([]string, error) {
	pieces, err := sqlparser.SplitStatementToPieces(script)
	if err != nil {
		return nil, fmt.Errorf("split schema: %w", err)
	}

	var tables []string
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		stmt, err := sqlparser.Parse(piece)
		if err != nil {
			return nil, fmt.Errorf("parse schema statement: %w", err)
		}
		ddl, ok := stmt.(*sqlparser.DDL)
		if !ok || ddl.Action != sqlparser.CreateStr {
			continue
		}
		tables = append(tables, ddl.NewName.Name.String())
	}
	return tables, nil
}
