// Copyright (c) 2026 Tessa Davenport. All rights reserved.

package strset_test

import (
	"errors"
	"testing"

	"github.com/tessadav/dbhome/internal/strset"
)

func TestContains(t *testing.T) {
	list := []string{"Profile", "Image"}

	tests := []struct {
		name string
		want bool
	}{
		{name: "Profile", want: true},
		{name: "profile", want: true}, // case-insensitive
		{name: "IMAGE", want: true},
		{name: "Pro", want: false}, // exact match, not substring
		{name: "Profiles", want: false},
		{name: "Other", want: false},
	}

	for _, tc := range tests {
		got, err := strset.Contains(list, tc.name)
		if err != nil {
			t.Errorf("Contains(%q): unexpected error: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Contains(%q) = %t, want %t", tc.name, got, tc.want)
		}
	}
}

func TestContains_BlankName(t *testing.T) {
	list := []string{"Profile"}
	for _, name := range []string{"", "  ", "\t"} {
		if _, err := strset.Contains(list, name); !errors.Is(err, strset.ErrInvalidName) {
			t.Errorf("Contains(%q): expected ErrInvalidName, got %v", name, err)
		}
	}
}

func TestContains_EmptyList(t *testing.T) {
	if _, err := strset.Contains(nil, "Profile"); !errors.Is(err, strset.ErrEmptyList) {
		t.Errorf("nil list: expected ErrEmptyList, got %v", err)
	}
	if _, err := strset.Contains([]string{}, "Profile"); !errors.Is(err, strset.ErrEmptyList) {
		t.Errorf("empty list: expected ErrEmptyList, got %v", err)
	}
}

func TestContainsAll(t *testing.T) {
	list := []string{"Profile", "Image"}

	got, err := strset.ContainsAll(list, "profile", "image")
	if err != nil {
		t.Fatalf("ContainsAll failed: %v", err)
	}
	if !got {
		t.Error("ContainsAll should match case-insensitively")
	}

	got, err = strset.ContainsAll(list, "Profile", "Other")
	if err != nil {
		t.Fatalf("ContainsAll failed: %v", err)
	}
	if got {
		t.Error("ContainsAll should be false when any name is missing")
	}
}

func TestContainsAll_BlankEntriesIgnored(t *testing.T) {
	list := []string{"Profile", "Image"}

	got, err := strset.ContainsAll(list, "profile", "")
	if err != nil {
		t.Fatalf("ContainsAll failed: %v", err)
	}
	if !got {
		t.Error("blank entries should be treated as satisfied")
	}

	// all-blank name set is vacuously satisfied
	got, err = strset.ContainsAll(list, "", "  ")
	if err != nil {
		t.Fatalf("ContainsAll failed: %v", err)
	}
	if !got {
		t.Error("all-blank name set should be satisfied")
	}
}

func TestContainsAll_EmptyList(t *testing.T) {
	if _, err := strset.ContainsAll(nil, "Profile"); !errors.Is(err, strset.ErrEmptyList) {
		t.Errorf("expected ErrEmptyList, got %v", err)
	}
}
