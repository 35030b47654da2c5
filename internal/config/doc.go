// Package config loads and validates the notekeep configuration.
//
// Values are merged from four sources in priority order: environment
// variables, command-line flags, an optional JSON file, and built-in
// defaults. The merged result is validated before use; a configuration
// without a resolvable MongoDB target is a fatal startup error.
package config
