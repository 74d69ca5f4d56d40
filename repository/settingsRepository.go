package repository

import (
	"context"
	"time"

	"github.com/simhonchourasia/playbet-be/database"
	"github.com/simhonchourasia/playbet-be/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SettingsRepository keeps one document per setting type: {type, value, updatedAt}.
type SettingsRepository struct {
	coll *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{coll: database.OpenCollection(db, database.SettingsCollection)}
}

func (r *SettingsRepository) Get(ctx context.Context, typ models.SettingType, out interface{}) error {
	var doc struct {
		Value bson.Raw `bson:"value"`
	}
	if err := r.coll.FindOne(ctx, bson.M{"type": typ}).Decode(&doc); err != nil {
		return err
	}
	if len(doc.Value) == 0 {
		return mongo.ErrNoDocuments
	}
	return bson.Unmarshal(doc.Value, out)
}

func (r *SettingsRepository) Put(ctx context.Context, typ models.SettingType, value interface{}) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"type": typ},
		bson.M{"$set": bson.M{"value": value, "updatedAt": time.Now().UTC()}},
		options.Update().SetUpsert(true),
	)
	return err
}
