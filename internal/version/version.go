// Copyright (c) 2026 Tessa Davenport. All rights reserved.

// Package version reports the application version.
package version

import (
	"github.com/maloquacious/semver"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 1,
		Patch: 0,
		Build: semver.Commit(),
	}
)

func Version() semver.Version {
	return version
}
