// Copyright (c) 2026 Tessa Davenport. All rights reserved.

//go:build mattn

package store

import (
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3" // CGO SQLite driver
)

// driverName is the database/sql driver registered by mattn/go-sqlite3.
const driverName = "sqlite3"

// pragma represents a SQLite pragma setting.
type pragma struct {
	name  string
	value string
}

// defaultPragmas are tuned for durable file-backed databases.
var defaultPragmas = []pragma{
	{name: "_foreign_keys", value: "1"},
	{name: "_busy_timeout", value: "5000"},
	{name: "_journal_mode", value: "WAL"},
	{name: "_synchronous", value: "NORMAL"},
}

// buildDSN constructs a DSN for github.com/mattn/go-sqlite3.
// mattn uses the syntax: file:path?_foreign_keys=1&_journal_mode=WAL
func buildDSN(path string, pragmas []pragma) string {
	var sb strings.Builder

	sb.WriteString("file:")
	sb.WriteString(path)

	for i, p := range pragmas {
		if i > 0 {
			sb.WriteString("&")
		} else {
			sb.WriteString("?")
		}
		fmt.Fprintf(&sb, "%s=%s", p.name, p.value)
	}

	return sb.String()
}
