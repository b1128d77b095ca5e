// Copyright (c) 2026 Tessa Davenport. All rights reserved.

// Package store manages the lifecycle of named local SQLite databases.
//
// A Store maps a logical database name to a file under a single base
// directory (by default the platform's user application-data directory
// plus an application name) and exposes create, exists, connect,
// list-tables, apply-schema, initialize, and delete operations over it.
// The mapping is deterministic: the same name always resolves to the
// same path, and a database "exists" exactly when its file is present.
//
// The Store holds no state beyond its configuration. Connections
// returned by Connect are owned by the caller, who must close them;
// nothing here relies on finalizers to release file handles.
//
// # Driver Support
//
// Two SQLite drivers are supported via build tags:
//   - modernc.org/sqlite (default, pure Go, no CGO)
//   - github.com/mattn/go-sqlite3 (CGO, use -tags mattn)
//
// The driver registration and DSN syntax live in the tagged files, so
// callers never name a driver directly.
//
// # Schema Source
//
// ApplySchema executes a schema script as a single batch. The script
// comes from an external file configured at construction, falling back
// to the embedded default schema when none is configured. The script is
// a precondition for initializing a new database, not for opening an
// existing one.
package store
