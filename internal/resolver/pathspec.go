// Package resolver implements test-file resolution for testpick: classifying
// raw path arguments, expanding prefixes against the filesystem, and producing
// the final ordered set of test files.
package resolver

import (
	"strings"

	"github.com/testpick/testpick/pkg/config"
)

// Kind classifies a raw path argument
type Kind int

const (
	// KindPrefix is a directory or filename stem to be expanded by globbing
	KindPrefix Kind = iota

	// KindSingleTest is a path:line argument naming one exact test file
	KindSingleTest
)

// PathSpec is a classified raw path argument
type PathSpec struct {
	// Raw is the argument exactly as given
	Raw string
	// File is the path component without any trailing :line
	File string
	// Line is the trailing line number, empty for prefixes
	Line string
	// Kind is the classification result
	Kind Kind
}

// Classify parses an optional trailing :<line-number> suffix from a raw
// argument. The argument is a single test only when a non-empty numeric line
// is present and the file part matches a configured test suffix. A trailing
// colon with an empty line segment drops the colon and globs the file part.
func Classify(raw string, cfg *config.Config) PathSpec {
	if i := strings.LastIndex(raw, ":"); i >= 0 {
		file, line := raw[:i], raw[i+1:]
		switch {
		case line == "":
			return PathSpec{Raw: raw, File: file, Kind: KindPrefix}
		case isDigits(line) && cfg.MatchesSuffix(file):
			return PathSpec{Raw: raw, File: file, Line: line, Kind: KindSingleTest}
		}
	}
	return PathSpec{Raw: raw, File: raw, Kind: KindPrefix}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
