package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tgusarov/notekeep/internal/config"
	"github.com/tgusarov/notekeep/internal/logger"
)

// notesCollection is the single collection all note documents live in.
const notesCollection = "notes"

// defaultDatabaseName is the last-resort database name when neither the URI
// path nor the configuration names one.
const defaultDatabaseName = "notes"

// DB bundles the live MongoDB client with the resolved database handle and
// the GridFS bucket scoped to that database. One DB instance is shared by
// all repositories; concurrent use is safe, the driver pools connections.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	bucket   *gridfs.Bucket

	logger *logger.Logger
}

// NewMongoDB resolves the connection target from cfg, connects, verifies the
// connection with a ping, and prepares the GridFS bucket.
//
// The target is either a full connection URI (database name taken from the
// URI path, falling back to cfg.DefaultDatabase), or a host URL plus an
// explicit database name. When neither form is present the returned error
// wraps [ErrMissingMongoConfig]; main treats that as fatal.
func NewMongoDB(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*DB, error) {
	uri, databaseName, err := resolveTarget(cfg)
	if err != nil {
		log.Err(err).Str("func", "NewMongoDB").Msg("no usable MongoDB target in configuration")
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Err(err).Str("func", "NewMongoDB").Msg("error occured during database connection")
		return nil, fmt.Errorf("%w: %w", ErrConnectingToDatabase, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewMongoDB").Msg("error connecting to database (ping)")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: %w", ErrConnectingToDatabase, err)
	}

	database := client.Database(databaseName)

	bucket, err := gridfs.NewBucket(database)
	if err != nil {
		log.Err(err).Str("func", "NewMongoDB").Msg("error creating GridFS bucket")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: %w", ErrConnectingToDatabase, err)
	}

	log.Info().Str("func", "NewMongoDB").Str("database", databaseName).Msg("connected to database successfully")

	return &DB{
		client:   client,
		database: database,
		bucket:   bucket,
		logger:   log,
	}, nil
}

// Notes returns the handle to the notes collection.
func (d *DB) Notes() *mongo.Collection {
	return d.database.Collection(notesCollection)
}

// Bucket returns the GridFS bucket holding uploaded image blobs.
func (d *DB) Bucket() *gridfs.Bucket {
	return d.bucket
}

// Close disconnects the underlying client. Safe to call once at shutdown.
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// resolveTarget picks the connection URI and database name from cfg.
func resolveTarget(cfg config.Mongo) (string, string, error) {
	switch {
	case cfg.URI != "":
		// database fallback chain: URI path, MONGO_DB, MONGODB_DATABASE
		name := databaseFromURI(cfg.URI)
		if name == "" {
			name = cfg.Database
		}
		if name == "" {
			name = cfg.DefaultDatabase
		}
		if name == "" {
			name = defaultDatabaseName
		}
		return cfg.URI, name, nil

	case cfg.HostURL != "" && cfg.Database != "":
		return cfg.HostURL, cfg.Database, nil

	default:
		return "", "", fmt.Errorf("%w: set MONGODB_URI or MONGO_URL + MONGO_DB", ErrMissingMongoConfig)
	}
}

// databaseFromURI extracts the database name from the path component of a
// mongodb:// or mongodb+srv:// URI. Returns "" when the URI carries none or
// cannot be parsed.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}

	return strings.TrimPrefix(u.Path, "/")
}
