package repository

import (
	"context"
	"regexp"
	"time"

	"github.com/simhonchourasia/playbet-be/database"
	"github.com/simhonchourasia/playbet-be/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: database.OpenCollection(db, database.UserCollection)}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, user)
	return err
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByReferCode(ctx context.Context, code string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"referCode": code})
}

func (r *UserRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, int64, error) {
	query := bson.M{}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"email": pattern},
			bson.M{"phone": pattern},
		}
	}
	if filter.Role != "" {
		query["role"] = filter.Role
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(filter.Page.Skip()).
		SetLimit(filter.Page.Size)
	users := make([]models.User, 0)
	if err := findAll(ctx, r.coll, query, &users, opts); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) ListReferred(ctx context.Context, referrerID primitive.ObjectID) ([]models.User, error) {
	users := make([]models.User, 0)
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if err := findAll(ctx, r.coll, bson.M{"referredBy": referrerID}, &users, opts); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id primitive.ObjectID, update models.UserUpdate) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.DeviceID != nil {
		set["deviceId"] = *update.DeviceID
	}
	if update.Role != nil {
		set["role"] = *update.Role
	}
	if update.Balance != nil {
		set["balance"] = *update.Balance
	}
	if update.Blocked != nil {
		set["blocked"] = *update.Blocked
	}

	var user models.User
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) IncBalance(ctx context.Context, id primitive.ObjectID, amount float64) error {
	return r.updateMatched(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"balance": amount},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	})
}

func (r *UserRepository) DebitBalance(ctx context.Context, id primitive.ObjectID, amount float64) error {
	return r.updateMatched(ctx, bson.M{"_id": id, "balance": bson.M{"$gte": amount}}, bson.M{
		"$inc": bson.M{"balance": -amount},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	})
}

func (r *UserRepository) CreditReferral(ctx context.Context, id primitive.ObjectID, amount float64) error {
	return r.updateMatched(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"balance": amount, "referEarnings": amount},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	})
}

func (r *UserRepository) SetPassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	return r.updateMatched(ctx, bson.M{"_id": id}, bson.M{
		"$set":   bson.M{"password": hash, "updatedAt": time.Now().UTC()},
		"$unset": bson.M{"resetCode": "", "resetExpires": ""},
	})
}

func (r *UserRepository) SetResetCode(ctx context.Context, id primitive.ObjectID, codeHash string, expires time.Time) error {
	return r.updateMatched(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"resetCode": codeHash, "resetExpires": expires},
	})
}

func (r *UserRepository) ClearExpiredResetCodes(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.coll.UpdateMany(ctx,
		bson.M{"resetExpires": bson.M{"$lt": now}},
		bson.M{"$unset": bson.M{"resetCode": "", "resetExpires": ""}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, r.coll, bson.M{"_id": id})
}

func (r *UserRepository) updateMatched(ctx context.Context, filter, update bson.M) error {
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
