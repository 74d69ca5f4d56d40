package repository

import (
	"context"
	"time"

	"github.com/simhonchourasia/playbet-be/database"
	"github.com/simhonchourasia/playbet-be/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OpayRepository struct {
	coll *mongo.Collection
}

func NewOpayRepository(db *mongo.Database) *OpayRepository {
	return &OpayRepository{coll: database.OpenCollection(db, database.OpayDepositCollection)}
}

func (r *OpayRepository) Create(ctx context.Context, deposit *models.OpayDeposit) error {
	if deposit.ID.IsZero() {
		deposit.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, deposit)
	return err
}

func (r *OpayRepository) FindByTrxID(ctx context.Context, trxID string) (*models.OpayDeposit, error) {
	var deposit models.OpayDeposit
	if err := r.coll.FindOne(ctx, bson.M{"trxid": trxID}).Decode(&deposit); err != nil {
		return nil, err
	}
	return &deposit, nil
}

func (r *OpayRepository) MarkApplied(ctx context.Context, trxID string, userID primitive.ObjectID, at time.Time) (*models.OpayDeposit, error) {
	var deposit models.OpayDeposit
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"trxid": trxID, "applied": false},
		bson.M{"$set": bson.M{"applied": true, "userId": userID, "appliedAt": at}},
		opts,
	).Decode(&deposit)
	if err != nil {
		return nil, err
	}
	return &deposit, nil
}

// Unapply clears the applied flag. With release set the record also drops its user and stops
// showing up in ListClaimable.
func (r *OpayRepository) Unapply(ctx context.Context, trxID string, release bool) error {
	unset := bson.M{"appliedAt": ""}
	if release {
		unset["userId"] = ""
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"trxid": trxID, "applied": true},
		bson.M{"$set": bson.M{"applied": false}, "$unset": unset},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ListClaimable returns unapplied records that already name their user, oldest first.
func (r *OpayRepository) ListClaimable(ctx context.Context, limit int64) ([]models.OpayDeposit, error) {
	deposits := make([]models.OpayDeposit, 0)
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}).SetLimit(limit)
	filter := bson.M{"applied": false, "userId": bson.M{"$exists": true}}
	if err := findAll(ctx, r.coll, filter, &deposits, opts); err != nil {
		return nil, err
	}
	return deposits, nil
}

func (r *OpayRepository) List(ctx context.Context, filter models.OpayFilter) ([]models.OpayDeposit, int64, error) {
	query := bson.M{}
	if filter.Applied != nil {
		query["applied"] = *filter.Applied
	}
	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(filter.Page.Skip()).
		SetLimit(filter.Page.Size)
	deposits := make([]models.OpayDeposit, 0)
	if err := findAll(ctx, r.coll, query, &deposits, opts); err != nil {
		return nil, 0, err
	}
	return deposits, total, nil
}
