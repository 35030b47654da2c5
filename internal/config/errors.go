package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete.
var (
	// ErrInvalidStorageConfigs indicates that no usable MongoDB target was
	// supplied: neither a full connection URI nor a host URL plus database
	// name pair.
	ErrInvalidStorageConfigs = errors.New("missing MongoDB configuration: set MONGODB_URI or MONGO_URL + MONGO_DB")

	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
