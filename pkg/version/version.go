package version

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var raw string

// Commit is set at build time with -ldflags "-X .../pkg/version.Commit=<sha>".
var Commit = ""

// Get returns the release version, e.g. v0.1.0.
func Get() string {
	return strings.TrimSpace(raw)
}

// Full returns the version with the commit suffix when one was linked in.
func Full() string {
	if Commit == "" {
		return Get()
	}
	return Get() + "+" + Commit
}
