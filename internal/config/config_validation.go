package config

// validate checks that the final merged [StructuredConfig] satisfies the
// startup contract.
//
// The storage backend must be resolvable: either a full connection URI, or
// a host URL together with a database name. Without one of those forms the
// process cannot start.
func (cfg *StructuredConfig) validate() error {
	mongo := cfg.Storage.Mongo
	if mongo.URI == "" && (mongo.HostURL == "" || mongo.Database == "") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
