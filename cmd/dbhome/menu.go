// Copyright (c) 2026 Tessa Davenport. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// menu runs the interactive console loop: create a database, report
// its tables, and offer to delete the working database on exit.
func (a *app) menu(ctx context.Context) error {
	scanner := bufio.NewScanner(a.in)

	fmt.Fprintln(a.out, "dbhome - local SQLite database manager")
	fmt.Fprintf(a.out, "databases live in %s\n", a.store.BaseDir())

	// The most recently touched database; offered for deletion on exit.
	var current string

	for {
		fmt.Fprintln(a.out, "")
		fmt.Fprintln(a.out, "  1) create a database")
		fmt.Fprintln(a.out, "  2) initialize a database")
		fmt.Fprintln(a.out, "  3) list tables")
		fmt.Fprintln(a.out, "  4) show database path")
		fmt.Fprintln(a.out, "  5) delete a database")
		fmt.Fprintln(a.out, "  q) quit")
		fmt.Fprint(a.out, "> ")

		choice, ok := a.readLine(scanner)
		if !ok {
			return a.exitPrompt(scanner, current)
		}

		switch choice {
		case "1", "2", "3", "4", "5":
			name, ok := a.promptName(scanner, current)
			if !ok {
				return a.exitPrompt(scanner, current)
			}
			current = name
			if err := a.menuAction(ctx, choice, name); err != nil {
				fmt.Fprintf(a.out, "error: %v\n", err)
			}
		case "q", "quit", "exit":
			return a.exitPrompt(scanner, current)
		case "":
			// ignore empty input
		default:
			fmt.Fprintf(a.out, "unknown choice: %s\n", choice)
		}
	}
}

// menuAction maps a menu choice onto the corresponding command.
func (a *app) menuAction(ctx context.Context, choice, name string) error {
	switch choice {
	case "1":
		return a.create(ctx, []string{name})
	case "2":
		return a.initialize(ctx, []string{name})
	case "3":
		return a.tables(ctx, []string{name})
	case "4":
		return a.path([]string{name})
	case "5":
		return a.delete([]string{name})
	}
	return nil
}

// promptName asks for a database name, offering the current one as
// the default. ok is false when input has ended.
func (a *app) promptName(scanner *bufio.Scanner, current string) (name string, ok bool) {
	if current != "" {
		fmt.Fprintf(a.out, "database name [%s]: ", current)
	} else {
		fmt.Fprint(a.out, "database name: ")
	}
	name, ok = a.readLine(scanner)
	if !ok {
		return "", false
	}
	if name == "" {
		name = current
	}
	return name, true
}

// exitPrompt offers to delete the working database before quitting.
func (a *app) exitPrompt(scanner *bufio.Scanner, current string) error {
	if current == "" {
		return nil
	}
	exists, err := a.store.Exists(current)
	if err != nil || !exists {
		return nil
	}

	fmt.Fprintf(a.out, "delete %s before exiting? [y/N]: ", current)
	answer, ok := a.readLine(scanner)
	if !ok {
		return nil
	}
	if strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes") {
		return a.delete([]string{current})
	}
	return nil
}

// readLine reads one trimmed line. ok is false on EOF or read error.
func (a *app) readLine(scanner *bufio.Scanner) (line string, ok bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
