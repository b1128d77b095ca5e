// Copyright (c) 2026 Tessa Davenport. All rights reserved.

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// menuApp wires an app whose stdin is the scripted input.
func menuApp(t *testing.T, input string) (*app, *bytes.Buffer) {
	t.Helper()
	a, out := newTestApp(t)
	a.in = strings.NewReader(input)
	return a, out
}

func TestMenu_CreateAndQuit(t *testing.T) {
	ctx := context.Background()
	a, out := menuApp(t, "1\nTest_1\nq\nn\n")

	if err := a.menu(ctx); err != nil {
		t.Fatalf("menu failed: %v", err)
	}
	if !strings.Contains(out.String(), "created Test_1") {
		t.Errorf("expected creation message, got %q", out.String())
	}

	exists, err := a.store.Exists("Test_1")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("database should survive when deletion is declined")
	}
}

func TestMenu_DeleteOnExit(t *testing.T) {
	ctx := context.Background()
	a, out := menuApp(t, "1\nTest_2\nq\ny\n")

	if err := a.menu(ctx); err != nil {
		t.Fatalf("menu failed: %v", err)
	}
	if !strings.Contains(out.String(), "deleted Test_2") {
		t.Errorf("expected deletion message, got %q", out.String())
	}

	exists, err := a.store.Exists("Test_2")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("database should be gone after delete-on-exit")
	}
}

func TestMenu_ReportsTables(t *testing.T) {
	ctx := context.Background()
	a, out := menuApp(t, "2\nsample\n3\n\nq\nn\n")

	if err := a.menu(ctx); err != nil {
		t.Fatalf("menu failed: %v", err)
	}
	for _, table := range []string{"Profile", "Image"} {
		if !strings.Contains(out.String(), table) {
			t.Errorf("expected table %q in output %q", table, out.String())
		}
	}
}

func TestMenu_EOFWithoutWork(t *testing.T) {
	ctx := context.Background()
	a, _ := menuApp(t, "")

	// No database was touched, so EOF exits cleanly with no prompt.
	if err := a.menu(ctx); err != nil {
		t.Fatalf("menu on EOF failed: %v", err)
	}
}

func TestMenu_UnknownChoice(t *testing.T) {
	ctx := context.Background()
	a, out := menuApp(t, "9\nq\n")

	if err := a.menu(ctx); err != nil {
		t.Fatalf("menu failed: %v", err)
	}
	if !strings.Contains(out.String(), "unknown choice") {
		t.Errorf("expected unknown-choice message, got %q", out.String())
	}
}
