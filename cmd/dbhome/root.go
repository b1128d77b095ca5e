// Copyright (c) 2026 Tessa Davenport. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/tessadav/dbhome/internal/config"
	"github.com/tessadav/dbhome/internal/logging"
	"github.com/tessadav/dbhome/internal/store"
	"github.com/tessadav/dbhome/internal/version"
)

// defaultConfigPath is checked when DBHOME_CONFIG is unset.
const defaultConfigPath = "dbhome.yaml"

// app holds the wired dependencies for command execution, so commands
// can run against any store and any output stream in tests.
type app struct {
	store *store.Store
	in    io.Reader
	out   io.Writer
}

// Execute is the main entry point for the dbhome command.
func Execute() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logging.New(cfg.Logging, version.Version().String())

	st, err := store.New(store.Config{
		DataDir:    cfg.DataDir,
		AppName:    cfg.AppName,
		SchemaPath: cfg.SchemaPath,
		Logger:     log.Logger,
	})
	if err != nil {
		return fmt.Errorf("building store: %w", err)
	}

	a := &app{store: st, in: os.Stdin, out: os.Stdout}
	return a.run(context.Background(), os.Args[1:])
}

// loadConfig resolves the configuration: an explicit DBHOME_CONFIG
// path must exist, the default path is optional, and without either
// the built-in defaults (plus env overrides) apply.
func loadConfig() (*config.Config, error) {
	if path := os.Getenv("DBHOME_CONFIG"); path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(defaultConfigPath); err == nil {
		return config.Load(defaultConfigPath)
	}
	return config.Default(), nil
}

// run dispatches a single command, or enters the interactive menu when
// no command is given.
func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.menu(ctx)
	}

	command := args[0]
	rest := args[1:]

	switch command {
	case "help", "-h", "--help":
		a.showHelp()
		return nil
	case "version", "-v", "--version":
		fmt.Fprintf(a.out, "dbhome %s\n", version.Version().String())
		return nil
	case "create":
		return a.create(ctx, rest)
	case "init":
		return a.initialize(ctx, rest)
	case "tables":
		return a.tables(ctx, rest)
	case "status":
		return a.status(ctx, rest)
	case "path":
		return a.path(rest)
	case "exists":
		return a.exists(rest)
	case "delete":
		return a.delete(rest)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

func (a *app) create(ctx context.Context, args []string) error {
	name, _, err := nameArg(args)
	if err != nil {
		return err
	}
	created, err := a.store.Create(ctx, name)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(a.out, "created %s\n", name)
	} else {
		fmt.Fprintf(a.out, "%s already exists\n", name)
	}
	return nil
}

func (a *app) initialize(ctx context.Context, args []string) error {
	name, _, err := nameArg(args)
	if err != nil {
		return err
	}
	ready, err := a.store.Initialize(ctx, name)
	if err != nil {
		return err
	}
	if ready {
		fmt.Fprintf(a.out, "%s is ready\n", name)
	} else {
		fmt.Fprintf(a.out, "%s exists but has no tables\n", name)
	}
	return nil
}

func (a *app) tables(ctx context.Context, args []string) error {
	name, asJSON, err := nameArg(args)
	if err != nil {
		return err
	}
	tables, err := a.store.ListTables(ctx, name)
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(a.out, tables)
	}
	if len(tables) == 0 {
		fmt.Fprintf(a.out, "%s has no tables\n", name)
		return nil
	}
	for _, table := range tables {
		fmt.Fprintln(a.out, table)
	}
	return nil
}

func (a *app) status(ctx context.Context, args []string) error {
	name, asJSON, err := nameArg(args)
	if err != nil {
		return err
	}
	status, err := a.store.Status(ctx, name)
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(a.out, status)
	}
	fmt.Fprintf(a.out, "name:   %s\n", status.Name)
	fmt.Fprintf(a.out, "path:   %s\n", status.Path)
	fmt.Fprintf(a.out, "exists: %t\n", status.Exists)
	if status.Exists {
		fmt.Fprintf(a.out, "tables: %d\n", len(status.Tables))
		for _, table := range status.Tables {
			fmt.Fprintf(a.out, "  %s\n", table)
		}
	}
	return nil
}

func (a *app) path(args []string) error {
	name, _, err := nameArg(args)
	if err != nil {
		return err
	}
	path, err := a.store.Path(name)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, path)
	return nil
}

func (a *app) exists(args []string) error {
	name, _, err := nameArg(args)
	if err != nil {
		return err
	}
	exists, err := a.store.Exists(name)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, exists)
	return nil
}

func (a *app) delete(args []string) error {
	name, _, err := nameArg(args)
	if err != nil {
		return err
	}
	deleted, err := a.store.Delete(name)
	if err != nil {
		return err
	}
	if deleted {
		fmt.Fprintf(a.out, "deleted %s\n", name)
	} else {
		fmt.Fprintf(a.out, "%s does not exist\n", name)
	}
	return nil
}

// nameArg extracts the required database name and optional --json flag
// from a command's arguments.
func nameArg(args []string) (name string, asJSON bool, err error) {
	for _, arg := range args {
		switch {
		case arg == "--json":
			asJSON = true
		case name == "":
			name = arg
		default:
			return "", false, fmt.Errorf("unexpected argument: %s", arg)
		}
	}
	if name == "" {
		return "", false, fmt.Errorf("a database name is required")
	}
	return name, asJSON, nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func (a *app) showHelp() {
	fmt.Fprintln(a.out, "dbhome - local SQLite database manager")
	fmt.Fprintln(a.out, "")
	fmt.Fprintln(a.out, "Usage:")
	fmt.Fprintln(a.out, "  dbhome                   interactive menu")
	fmt.Fprintln(a.out, "  dbhome [command] <name>")
	fmt.Fprintln(a.out, "")
	fmt.Fprintln(a.out, "Available Commands:")
	fmt.Fprintln(a.out, "  create <name>            create an empty database")
	fmt.Fprintln(a.out, "  init <name>              create and apply the schema")
	fmt.Fprintln(a.out, "  tables <name> [--json]   list the database's tables")
	fmt.Fprintln(a.out, "  status <name> [--json]   report path, existence, tables")
	fmt.Fprintln(a.out, "  path <name>              print the resolved file path")
	fmt.Fprintln(a.out, "  exists <name>            report whether the file is present")
	fmt.Fprintln(a.out, "  delete <name>            remove the database file")
	fmt.Fprintln(a.out, "  version                  print the version")
	fmt.Fprintln(a.out, "  help                     show this help")
}
