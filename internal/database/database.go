package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"

	"portfolioapi/internal/config"
)

// NewMongo connects to the document store and returns the client together
// with a handle on the configured database. The client is shared by all
// requests for the lifetime of the process; the caller is responsible for
// disconnecting it at shutdown.
func NewMongo(c config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	if c.URL == "" {
		return nil, nil, fmt.Errorf("invalid mongo config: url is required")
	}
	if c.Database == "" {
		return nil, nil, fmt.Errorf("invalid mongo config: database name is required")
	}

	timeout := time.Duration(c.ConnectTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts := options.Client().
		ApplyURI(c.URL).
		SetConnectTimeout(timeout).
		// Command-level tracing spans for every store operation
		SetMonitor(otelmongo.NewMonitor())

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	// Verify connectivity with a short timeout
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(c.Database), nil
}
