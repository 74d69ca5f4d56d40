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

type GameRepository struct {
	coll *mongo.Collection
}

func NewGameRepository(db *mongo.Database) *GameRepository {
	return &GameRepository{coll: database.OpenCollection(db, database.GameCollection)}
}

func (r *GameRepository) FindAll(ctx context.Context) ([]models.Game, error) {
	games := make([]models.Game, 0)
	if err := findAll(ctx, r.coll, bson.M{}, &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (r *GameRepository) FindFlagged(ctx context.Context, flag models.GameFlag) ([]models.Game, error) {
	games := make([]models.Game, 0)
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	if err := findAll(ctx, r.coll, bson.M{string(flag): true}, &games, opts); err != nil {
		return nil, err
	}
	return games, nil
}

// Upsert creates the flag document on first use; flags never set stay false.
func (r *GameRepository) Upsert(ctx context.Context, gameID string, update models.GameFlagsUpdate) (*models.Game, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	onInsert := bson.M{}
	strField := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		} else {
			onInsert[key] = ""
		}
	}
	boolField := func(key string, v *bool) {
		if v != nil {
			set[key] = *v
		} else {
			onInsert[key] = false
		}
	}
	strField("name", update.Name)
	strField("provider", update.Provider)
	strField("image", update.Image)
	boolField("hot", update.Hot)
	boolField("new", update.New)
	boolField("lobby", update.Lobby)
	boolField("selected", update.Selected)

	doc := bson.M{"$set": set}
	if len(onInsert) > 0 {
		doc["$setOnInsert"] = onInsert
	}

	var game models.Game
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"gameID": gameID}, doc, opts).Decode(&game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *GameRepository) Delete(ctx context.Context, gameID string) error {
	return deleteOne(ctx, r.coll, bson.M{"gameID": gameID})
}
