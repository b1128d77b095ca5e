// Copyright (c) 2026 Tessa Davenport. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tessadav/dbhome/internal/strset"
)

var (
	// ErrInvalidName reports an empty or all-whitespace database name,
	// or one containing path separators.
	ErrInvalidName = errors.New("invalid database name")

	// ErrNotExist reports an operation that requires the database file
	// to be present when it is not.
	ErrNotExist = errors.New("database does not exist")
)

const (
	// defaultAppName is the subdirectory under the data directory when
	// Config.AppName is empty.
	defaultAppName = "dbhome"

	// dbExtension is appended to every database name to form its filename.
	dbExtension = ".db"

	// dirPermissions is the permission mode for the base directory.
	dirPermissions = 0750

	// filePermissions is the permission mode for database files.
	filePermissions = 0600

	// connectTimeout bounds the connectivity check when opening a database.
	connectTimeout = 5 * time.Second
)

// catalogFilter selects user tables from sqlite_master, excluding the
// system tables SQLite itself maintains. No ORDER BY: catalog order is
// part of the ListTables contract.
const catalogFilter = `type = 'table' AND name NOT LIKE 'sqlite\_%' ESCAPE '\'`

// Config holds store configuration options.
type Config struct {
	// DataDir is the root application-data directory. Empty means the
	// platform's user config directory (os.UserConfigDir).
	DataDir string

	// AppName is the subdirectory under DataDir that holds database
	// files. Empty means "dbhome".
	AppName string

	// SchemaPath is an external schema script executed by ApplySchema.
	// Empty means the embedded default schema.
	SchemaPath string

	// Logger for operational logging. Uses slog.Default() if nil.
	Logger *slog.Logger
}

// Store maps logical database names to files under a single base
// directory and manages their lifecycle. It is an explicit handle: two
// stores with different configurations are fully independent, and no
// process-wide state tracks a "current" database.
type Store struct {
	baseDir    string
	schemaPath string
	logger     *slog.Logger
}

// New builds a Store from cfg, resolving the base directory once so
// that Path is a pure function afterward.
func New(cfg Config) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		var err error
		dataDir, err = os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve data directory: %w", err)
		}
	}

	appName := cfg.AppName
	if appName == "" {
		appName = defaultAppName
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		baseDir:    filepath.Join(dataDir, appName),
		schemaPath: cfg.SchemaPath,
		logger:     logger,
	}, nil
}

// BaseDir returns the directory holding this store's database files.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Path resolves name to its database file path. It performs no I/O and
// no existence check; the result is deterministic for a given Store.
func (s *Store) Path(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.baseDir, name+dbExtension), nil
}

// Exists reports whether the database file for name is present.
func (s *Store) Exists(name string) (bool, error) {
	path, err := s.Path(name)
	if err != nil {
		return false, err
	}
	return fileExists(path), nil
}

// Create makes an empty database for name. It returns false without
// error if the database already exists, so calling it twice yields
// true then false. The base directory is created on first use.
func (s *Store) Create(ctx context.Context, name string) (bool, error) {
	path, err := s.Path(name)
	if err != nil {
		return false, err
	}

	if fileExists(path) {
		s.logger.Debug("create: database already exists", "name", name, "path", path)
		return false, nil
	}

	if err := os.MkdirAll(s.baseDir, dirPermissions); err != nil {
		return false, fmt.Errorf("create %s: %w", name, err)
	}

	s.logger.Info("creating database", "name", name, "path", path)

	// Opening and pinging makes the driver materialize the file.
	db, err := s.open(ctx, path)
	if err != nil {
		return false, fmt.Errorf("create %s: %w", name, err)
	}
	if err := db.Close(); err != nil {
		return false, fmt.Errorf("create %s: close: %w", name, err)
	}

	// Owner read/write only.
	_ = os.Chmod(path, filePermissions)

	return fileExists(path), nil
}

// Connect opens a live connection to the named database. The database
// must already exist; absent databases yield ErrNotExist. The caller
// owns the returned connection and must close it.
func (s *Store) Connect(ctx context.Context, name string) (*sql.DB, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	if !fileExists(path) {
		return nil, fmt.Errorf("connect %s: %s: %w", name, path, ErrNotExist)
	}
	return s.open(ctx, path)
}

// ConnectionString returns the driver DSN for name. Pure formatting:
// no I/O, no existence requirement.
func (s *Store) ConnectionString(name string) (string, error) {
	path, err := s.Path(name)
	if err != nil {
		return "", err
	}
	return buildDSN(path, defaultPragmas), nil
}

// ListTables returns the user table names of the named database in
// catalog order. The catalog is queried live on every call, never
// cached. The database must exist.
func (s *Store) ListTables(ctx context.Context, name string) ([]string, error) {
	db, err := s.Connect(ctx, name)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE `+catalogFilter)
	if err != nil {
		return nil, fmt.Errorf("list tables %s: %w", name, err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var table string
		if err := rows.Scan(&table); err != nil {
			return nil, fmt.Errorf("list tables %s: %w", name, err)
		}
		tables = append(tables, table)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tables %s: %w", name, err)
	}
	return tables, nil
}

// ApplySchema executes the configured schema script against the named
// database as a single batch and reports whether the user table count
// increased. An absent database or unavailable script yields false
// without error. Execution failures keep the false result but are
// logged and returned, not swallowed.
func (s *Store) ApplySchema(ctx context.Context, name string) (bool, error) {
	path, err := s.Path(name)
	if err != nil {
		return false, err
	}
	if !fileExists(path) {
		s.logger.Warn("apply schema: database absent", "name", name, "path", path)
		return false, nil
	}

	script, ok := s.loadSchema()
	if !ok {
		return false, nil
	}

	db, err := s.open(ctx, path)
	if err != nil {
		return false, fmt.Errorf("apply schema %s: %w", name, err)
	}
	defer db.Close()

	before, err := countTables(ctx, db)
	if err != nil {
		return false, fmt.Errorf("apply schema %s: %w", name, err)
	}

	if err := applyScript(ctx, db, script); err != nil {
		s.logger.Error("schema application failed", "name", name, "error", err)
		return false, fmt.Errorf("apply schema %s: %w", name, err)
	}

	after, err := countTables(ctx, db)
	if err != nil {
		return false, fmt.Errorf("apply schema %s: %w", name, err)
	}

	s.logger.Debug("schema applied", "name", name, "tables_before", before, "tables_after", after)
	return after > before, nil
}

// Initialize brings the named database to a ready state. For an
// existing database it is a validation no-op: true when at least one
// table is present, false when the database is empty (no repair is
// attempted). For an absent database it creates the file and applies
// the schema; failure of either sub-step returns an error. After a
// fresh initialization the tables named by the schema script are
// verified to exist; a mismatch is logged, never fatal.
func (s *Store) Initialize(ctx context.Context, name string) (bool, error) {
	exists, err := s.Exists(name)
	if err != nil {
		return false, err
	}

	if exists {
		tables, err := s.ListTables(ctx, name)
		if err != nil {
			return false, fmt.Errorf("initialize %s: %w", name, err)
		}
		if len(tables) == 0 {
			s.logger.Warn("database exists but has no tables", "name", name)
			return false, nil
		}
		return true, nil
	}

	created, err := s.Create(ctx, name)
	if err != nil {
		return false, fmt.Errorf("initialize %s: %w", name, err)
	}
	if !created {
		return false, fmt.Errorf("initialize %s: create reported no new database", name)
	}

	applied, err := s.ApplySchema(ctx, name)
	if err != nil {
		return false, fmt.Errorf("initialize %s: %w", name, err)
	}
	if !applied {
		return false, fmt.Errorf("initialize %s: schema produced no tables", name)
	}

	s.verifyExpectedTables(ctx, name)
	return true, nil
}

// Delete removes the database file for name along with its WAL sidecar
// files and reports whether the file is gone afterward. An absent
// database yields false without error. Connections are caller-owned
// and closed deterministically, so no handle sweep is needed here.
func (s *Store) Delete(name string) (bool, error) {
	path, err := s.Path(name)
	if err != nil {
		return false, err
	}
	if !fileExists(path) {
		return false, nil
	}

	s.logger.Info("deleting database", "name", name, "path", path)

	// WAL mode creates sidecar files
	var firstErr error
	for _, suffix := range []string{"", "-shm", "-wal"} {
		target := path + suffix
		if !fileExists(target) {
			continue
		}
		if !isRegularFile(target) {
			err := fmt.Errorf("%s: not a regular file", target)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := os.Remove(target); err != nil {
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if firstErr != nil {
		return !fileExists(path), fmt.Errorf("delete %s: %w", name, firstErr)
	}
	return !fileExists(path), nil
}

// Status describes the current state of a named database.
type Status struct {
	Name   string   `json:"name"`
	Path   string   `json:"path"`
	Exists bool     `json:"exists"`
	Tables []string `json:"tables,omitempty"`
}

// Status returns a non-mutating report for name: resolved path,
// existence, and the live table list when the database is present.
func (s *Store) Status(ctx context.Context, name string) (*Status, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}

	status := &Status{Name: name, Path: path}
	if !fileExists(path) {
		return status, nil
	}
	status.Exists = true

	tables, err := s.ListTables(ctx, name)
	if err != nil {
		return nil, err
	}
	status.Tables = tables
	return status, nil
}

// open opens path with the active driver, caps the pool at a single
// connection, and verifies connectivity before returning.
func (s *Store) open(ctx context.Context, path string) (*sql.DB, error) {
	dsn := buildDSN(path, defaultPragmas)
	s.logger.Debug("opening database", "dsn", dsn)

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	// Ensure cleanup on error
	success := false
	defer func() {
		if !success {
			db.Close()
		}
	}()

	// SQLite works best with limited connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}

	success = true
	return db, nil
}

// verifyExpectedTables checks that the tables named by the schema
// script exist after initialization. Best-effort: an unparseable
// script or failed lookup only logs.
func (s *Store) verifyExpectedTables(ctx context.Context, name string) {
	script, ok := s.loadSchema()
	if !ok {
		return
	}

	expected, err := TablesInScript(script)
	if err != nil {
		s.logger.Debug("schema script not parseable, skipping table verification", "error", err)
		return
	}
	if len(expected) == 0 {
		return
	}

	tables, err := s.ListTables(ctx, name)
	if err != nil {
		s.logger.Warn("table verification failed", "name", name, "error", err)
		return
	}

	present, err := strset.ContainsAll(tables, expected...)
	if err != nil || !present {
		s.logger.Warn("expected tables missing after initialization",
			"name", name, "expected", expected, "found", tables)
	}
}

// countTables returns the number of user tables in an open database.
func countTables(ctx context.Context, db *sql.DB) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master WHERE `+catalogFilter).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count tables: %w", err)
	}
	return count, nil
}

// validateName rejects names that cannot map to exactly one file.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: blank", ErrInvalidName)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() || info.IsDir()
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
