package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/fraud-shield/internal/config"
	"github.com/MKhiriev/fraud-shield/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// isMongoDSN reports whether dsn selects the MongoDB credential store.
func isMongoDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "mongodb://") || strings.HasPrefix(dsn, "mongodb+srv://")
}

// NewConnectMongo connects to MongoDB, pings the primary and makes sure the
// users collection carries its unique email index.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DSN).SetMaxPoolSize(20))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting mongo")
		return nil, fmt.Errorf("error occured during mongo connection: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting mongo (ping)")
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	database := client.Database(cfg.MongoDatabase)
	if err = ensureUserIndexes(ctx, database.Collection(usersCollection)); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("error creating user indexes: %w", err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.MongoDatabase).Msg("connected to mongo successfully")

	return database, nil
}

func ensureUserIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("users_email_uindex"),
		},
		{
			Keys:    bson.D{{Key: "shield_coins", Value: -1}},
			Options: options.Index().SetName("users_shield_coins_index"),
		},
	})
	return err
}
