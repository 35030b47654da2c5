package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for notekeep.
// It is populated by merging values from environment variables, command-line
// flags, an optional JSON file, and the built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds configuration for the document database and the image
	// blob bucket. Env names are kept flat (MONGODB_URI, MONGO_URL, ...)
	// for compatibility with existing deployments.
	Storage Storage

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the persistence backends.
type Storage struct {
	// Mongo holds the document database connection settings. The GridFS
	// image bucket lives in the same database.
	Mongo Mongo
}

// Mongo holds the connection settings for the MongoDB backend.
//
// Either URI alone, or HostURL together with Database, must be supplied;
// validation fails otherwise and the process refuses to start.
type Mongo struct {
	// URI is the full MongoDB connection string
	// (e.g. "mongodb://localhost:27017/notes").
	// Env: MONGODB_URI
	URI string `env:"MONGODB_URI"`

	// HostURL is the server address without a database name
	// (e.g. "mongodb://localhost:27017"). Used together with Database
	// when URI is not set.
	// Env: MONGO_URL
	HostURL string `env:"MONGO_URL"`

	// Database is the database name paired with HostURL.
	// Env: MONGO_DB
	Database string `env:"MONGO_DB"`

	// DefaultDatabase is the fallback database name used when URI carries
	// no database path component. Defaults to "notes".
	// Env: MONGODB_DATABASE
	DefaultDatabase string `env:"MONGODB_DATABASE"`
}

// Server holds network and timeout settings for the HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format. Defaults to ":8000".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request (read and write).
	// Defaults to 30s.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for fields they set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
