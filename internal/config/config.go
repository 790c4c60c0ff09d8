// Package config holds the small set of runtime knobs TechZen programs
// and the CLI share: where `run` resolves included scripts from, and
// whether output is colorized, layered as env vars overridable by flags
// (spec.md's ambient configuration expansion; grounded on go-dws's root
// command flag layering).
package config

import (
	"github.com/xyproto/env/v2"
)

// Config is TechZen's resolved runtime configuration.
type Config struct {
	// IncludePath is the directory `run` resolves relative script names
	// against when a bare filename doesn't exist in the working directory.
	IncludePath string

	// NoColor disables ANSI color in error/trace output.
	NoColor bool

	// Verbose is the resolved verbose setting (TECHZEN_VERBOSE or
	// --verbose). No command changes its output based on it.
	Verbose bool
}

// FromEnv builds a Config from TECHZEN_* environment variables,
// falling back to sensible defaults when unset.
func FromEnv() *Config {
	return &Config{
		IncludePath: env.StrOr("TECHZEN_INCLUDE_PATH", "."),
		NoColor:     env.Bool("TECHZEN_NO_COLOR"),
		Verbose:     env.Bool("TECHZEN_VERBOSE"),
	}
}

// ApplyFlags overrides fields whose corresponding CLI flag was explicitly
// set, giving flags precedence over environment variables.
func (c *Config) ApplyFlags(includePath string, includePathSet bool, noColor, noColorSet, verbose, verboseSet bool) {
	if includePathSet {
		c.IncludePath = includePath
	}
	if noColorSet {
		c.NoColor = noColor
	}
	if verboseSet {
		c.Verbose = verbose
	}
}
