package repository

import (
	"context"

	"github.com/simhonchourasia/playbet-be/database"
	"github.com/simhonchourasia/playbet-be/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// txCollection holds what deposits and withdraws share: a status that leaves pending once.
type txCollection[T any] struct {
	coll *mongo.Collection
}

func (r txCollection[T]) findByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var doc T
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r txCollection[T]) list(ctx context.Context, filter models.TxFilter) ([]T, int64, error) {
	query := bson.M{}
	if filter.UserID != nil {
		query["userId"] = *filter.UserID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(filter.Page.Skip()).
		SetLimit(filter.Page.Size)
	docs := make([]T, 0)
	if err := findAll(ctx, r.coll, query, &docs, opts); err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

func (r txCollection[T]) transition(ctx context.Context, id primitive.ObjectID, from models.TxStatus, t models.Transition) (*T, error) {
	set := bson.M{
		"status":      t.To,
		"processedAt": t.At,
		"processedBy": t.ProcessedBy,
	}
	if t.Note != "" {
		set["note"] = t.Note
	}
	var doc T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id, "status": from}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r txCollection[T]) reopen(ctx context.Context, id primitive.ObjectID, from models.TxStatus) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{
			"$set":   bson.M{"status": models.StatusPending},
			"$unset": bson.M{"processedAt": "", "processedBy": "", "note": ""},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

type DepositRepository struct {
	txCollection[models.DepositTransaction]
}

func NewDepositRepository(db *mongo.Database) *DepositRepository {
	return &DepositRepository{txCollection[models.DepositTransaction]{
		coll: database.OpenCollection(db, database.DepositCollection),
	}}
}

func (r *DepositRepository) Create(ctx context.Context, deposit *models.DepositTransaction) error {
	if deposit.ID.IsZero() {
		deposit.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, deposit)
	return err
}

func (r *DepositRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.DepositTransaction, error) {
	return r.findByID(ctx, id)
}

func (r *DepositRepository) List(ctx context.Context, filter models.TxFilter) ([]models.DepositTransaction, int64, error) {
	return r.list(ctx, filter)
}

func (r *DepositRepository) Transition(ctx context.Context, id primitive.ObjectID, from models.TxStatus, t models.Transition) (*models.DepositTransaction, error) {
	return r.transition(ctx, id, from, t)
}

func (r *DepositRepository) Reopen(ctx context.Context, id primitive.ObjectID, from models.TxStatus) error {
	return r.reopen(ctx, id, from)
}

func (r *DepositRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, r.coll, bson.M{"_id": id})
}

type WithdrawRepository struct {
	txCollection[models.Withdraw]
}

func NewWithdrawRepository(db *mongo.Database) *WithdrawRepository {
	return &WithdrawRepository{txCollection[models.Withdraw]{
		coll: database.OpenCollection(db, database.WithdrawCollection),
	}}
}

func (r *WithdrawRepository) Create(ctx context.Context, withdraw *models.Withdraw) error {
	if withdraw.ID.IsZero() {
		withdraw.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, withdraw)
	return err
}

func (r *WithdrawRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Withdraw, error) {
	return r.findByID(ctx, id)
}

func (r *WithdrawRepository) List(ctx context.Context, filter models.TxFilter) ([]models.Withdraw, int64, error) {
	return r.list(ctx, filter)
}

func (r *WithdrawRepository) Transition(ctx context.Context, id primitive.ObjectID, from models.TxStatus, t models.Transition) (*models.Withdraw, error) {
	return r.transition(ctx, id, from, t)
}

func (r *WithdrawRepository) Reopen(ctx context.Context, id primitive.ObjectID, from models.TxStatus) error {
	return r.reopen(ctx, id, from)
}

// PendingTotal sums the amounts of the user's pending withdraws.
func (r *WithdrawRepository) PendingTotal(ctx context.Context, userID primitive.ObjectID) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID, "status": models.StatusPending}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}
