// Copyright (c) 2026 Tessa Davenport. All rights reserved.

// Command dbhome manages named SQLite databases kept under the user's
// application-data directory: create them, initialize them from a
// schema script, report their tables, and delete them.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
