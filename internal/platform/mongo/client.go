package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"user-service-backend/internal/common/config"
	"user-service-backend/internal/common/logger"
)

type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewClient(cfg *config.Config) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logger.Info().
		Str("uri", cfg.Mongo.URI).
		Str("database", cfg.Mongo.Database).
		Msg("MongoDB client initialized")

	return &Client{
		client: client,
		db:     client.Database(cfg.Mongo.Database),
	}, nil
}

// Database возвращает экземпляр базы данных
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Close закрывает соединение с базой данных
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// HealthCheck проверяет здоровье базы данных
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}
