package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag values from a
// YAML configuration file.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve("config"), "/path/to/config.yaml")
//
// The YAML document is interpreted as follows:
//   - If the document contains a top-level mapping under the given key, that
//     mapping provides the flag values. Otherwise the document root is used.
//   - Flag names with hyphens (e.g., "log-level") may use underscores in the
//     config file (e.g., "log_level"); both spellings are recognized.
//   - Scalar values map directly to flag values; numbers are converted to
//     strings for Kong to parse.
//
// Example config file:
//
//	config:
//	  log-level: debug
//	  log-format: json
//	  log-pretty: true
//
// Command-line flags override config file values.
func resolve(name string) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			// Unreadable config - return empty config
			return config{}, nil
		}

		var doc map[string]any

		if err := yaml.Unmarshal(data, &doc); err != nil {
			// Parse error - return empty config
			return config{}, nil
		}

		// Prefer a mapping nested under the given key, falling back to the
		// document root when the key is absent or not a mapping.
		if sub, ok := doc[name].(map[string]any); ok {
			doc = sub
		}

		return config(flattenValues(doc)), nil
	}
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but config keys
	// may use underscores. Try both forms.
	name := flag.Name
	underscoreName := strings.ReplaceAll(name, "-", "_")

	// Look up the value in our config
	if value, ok := r[name]; ok {
		return value, nil
	}

	// Try underscore variant
	if value, ok := r[underscoreName]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flattenValues converts YAML scalar values to representations Kong can
// apply to flags. Numbers are converted to strings for Kong's own parsing.
func flattenValues(doc map[string]any) map[string]any {
	result := make(map[string]any, len(doc))

	for key, value := range doc {
		switch v := value.(type) {
		case int64:
			result[key] = strconv.FormatInt(v, 10)

		case uint64:
			result[key] = strconv.FormatUint(v, 10)

		case float64:
			result[key] = strconv.FormatFloat(v, 'f', -1, 64)

		default:
			result[key] = value
		}
	}

	return result
}
