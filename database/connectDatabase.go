package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	UserCollection         = "users"
	GameCollection         = "games"
	CategoryCollection     = "categories"
	DepositCollection      = "depositTransactions"
	WithdrawCollection     = "withdraws"
	OpayDepositCollection  = "Opay-deposit"
	SettingsCollection     = "settings"
	FeatureImageCollection = "featureImages"
	SocialLinkCollection   = "socialLinks"
)

const connectTimeout = 10 * time.Second

// Connect dials MongoDB and pings the primary.
func Connect(ctx context.Context, mongoURI string, log logrus.FieldLogger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	log.Info("connected to MongoDB")
	return client, nil
}

func OpenCollection(db *mongo.Database, collectionName string) *mongo.Collection {
	return db.Collection(collectionName)
}

// EnsureIndexes creates the unique indexes the handlers rely on for duplicate detection.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := func(keys bson.D) mongo.IndexModel {
		return mongo.IndexModel{Keys: keys, Options: options.Index().SetUnique(true)}
	}
	indexes := map[string][]mongo.IndexModel{
		UserCollection: {
			unique(bson.D{{Key: "email", Value: 1}}),
			unique(bson.D{{Key: "referCode", Value: 1}}),
			{Keys: bson.D{{Key: "referredBy", Value: 1}}},
		},
		GameCollection:     {unique(bson.D{{Key: "gameID", Value: 1}})},
		CategoryCollection: {unique(bson.D{{Key: "name", Value: 1}})},
		DepositCollection: {
			unique(bson.D{{Key: "trxid", Value: 1}}),
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		WithdrawCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}}},
		},
		OpayDepositCollection: {
			unique(bson.D{{Key: "trxid", Value: 1}}),
			{Keys: bson.D{{Key: "applied", Value: 1}}},
		},
		SettingsCollection: {unique(bson.D{{Key: "type", Value: 1}})},
	}
	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}
