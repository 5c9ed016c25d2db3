// Package cmd provides the texpr subcommands for formatting, validating,
// and interactively exploring LaTeX-flavored math notation.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the default configuration file.
	ConfigIdentifier = "config"
)

// ConfigKey is the optional top-level mapping key recognized in the YAML
// configuration file.
const ConfigKey = "config"
