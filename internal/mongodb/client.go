package mongodb

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shama2369/trichygold-campaignsc/internal/config"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
	"github.com/shama2369/trichygold-campaignsc/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client wraps the mongo client and the application database handle
type Client struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logger.Logger
}

// NewClient connects to MongoDB and pings the primary before returning.
// Transient connect errors are retried with exponential backoff.
func NewClient(cfg *config.Configuration, log *logger.Logger) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to connect to the database").
			Mark(ierr.ErrDatabase)
	}

	ping := func() error {
		pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pingCancel()
		return client.Ping(pingCtx, readpref.Primary())
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = cfg.Mongo.ConnectTimeout
	if err := backoff.Retry(ping, bo); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Database is unreachable").
			Mark(ierr.ErrDatabase)
	}

	log.Infow("connected to mongodb", "database", cfg.Mongo.Database)

	return &Client{
		client: client,
		db:     client.Database(cfg.Mongo.Database),
		logger: log,
	}, nil
}

// Collection returns a handle to the named collection in the application
// database
func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Disconnect closes the underlying connections
func (c *Client) Disconnect(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
