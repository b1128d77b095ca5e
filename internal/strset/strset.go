// Copyright (c) 2026 Tessa Davenport. All rights reserved.

// Package strset provides case-insensitive membership checks over
// small lists of names, such as the table names of a database catalog.
package strset

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidName reports an empty or all-whitespace name.
	ErrInvalidName = errors.New("invalid name")

	// ErrEmptyList reports a membership check against an empty list.
	ErrEmptyList = errors.New("empty list")
)

// Contains reports whether name matches any element of list. Matching
// is case-insensitive and exact: "profile" matches "Profile" but "Pro"
// does not. The check short-circuits on the first match.
func Contains(list []string, name string) (bool, error) {
	if len(list) == 0 {
		return false, ErrEmptyList
	}
	if strings.TrimSpace(name) == "" {
		return false, fmt.Errorf("%w: blank", ErrInvalidName)
	}

	for _, candidate := range list {
		if strings.EqualFold(candidate, name) {
			return true, nil
		}
	}
	return false, nil
}

// ContainsAll reports whether every name in names matches some element
// of list. Blank names are skipped, treated as automatically
// satisfied; that makes the call safe to build from loosely assembled
// inputs. An empty list is still an error.
func ContainsAll(list []string, names ...string) (bool, error) {
	if len(list) == 0 {
		return false, ErrEmptyList
	}

	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		found, err := Contains(list, name)
		if err != nil {
			return false, err
		}
		if !found {
			return false, nil
		}
	}
	return true, nil
}
