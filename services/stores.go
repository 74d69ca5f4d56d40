package services

import (
	"context"
	"time"

	"github.com/simhonchourasia/playbet-be/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=./mocks/mock_stores.go -package=mocks github.com/simhonchourasia/playbet-be/services UserStore,GameStore,CategoryStore,DepositStore,WithdrawStore,OpayStore,SettingsStore,FeatureImageStore,SocialLinkStore,GameProvider,OpayGateway,PresenceChecker,Mailer,Notifier

// Stores return mongo.ErrNoDocuments when nothing matched and the driver's duplicate key error
// when a unique index rejected a write.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByReferCode(ctx context.Context, code string) (*models.User, error)
	List(ctx context.Context, filter models.UserFilter) ([]models.User, int64, error)
	ListReferred(ctx context.Context, referrerID primitive.ObjectID) ([]models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, update models.UserUpdate) (*models.User, error)
	IncBalance(ctx context.Context, id primitive.ObjectID, amount float64) error
	// DebitBalance only matches while balance >= amount.
	DebitBalance(ctx context.Context, id primitive.ObjectID, amount float64) error
	CreditReferral(ctx context.Context, id primitive.ObjectID, amount float64) error
	SetPassword(ctx context.Context, id primitive.ObjectID, hash string) error
	SetResetCode(ctx context.Context, id primitive.ObjectID, codeHash string, expires time.Time) error
	ClearExpiredResetCodes(ctx context.Context, now time.Time) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type GameStore interface {
	FindAll(ctx context.Context) ([]models.Game, error)
	FindFlagged(ctx context.Context, flag models.GameFlag) ([]models.Game, error)
	Upsert(ctx context.Context, gameID string, update models.GameFlagsUpdate) (*models.Game, error)
	Delete(ctx context.Context, gameID string) error
}

type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	List(ctx context.Context, activeOnly bool) ([]models.Category, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	Replace(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type DepositStore interface {
	Create(ctx context.Context, deposit *models.DepositTransaction) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.DepositTransaction, error)
	List(ctx context.Context, filter models.TxFilter) ([]models.DepositTransaction, int64, error)
	// Transition only matches while the document is still in status from.
	Transition(ctx context.Context, id primitive.ObjectID, from models.TxStatus, t models.Transition) (*models.DepositTransaction, error)
	Reopen(ctx context.Context, id primitive.ObjectID, from models.TxStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type WithdrawStore interface {
	Create(ctx context.Context, withdraw *models.Withdraw) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Withdraw, error)
	List(ctx context.Context, filter models.TxFilter) ([]models.Withdraw, int64, error)
	Transition(ctx context.Context, id primitive.ObjectID, from models.TxStatus, t models.Transition) (*models.Withdraw, error)
	Reopen(ctx context.Context, id primitive.ObjectID, from models.TxStatus) error
	PendingTotal(ctx context.Context, userID primitive.ObjectID) (float64, error)
}

type OpayStore interface {
	Create(ctx context.Context, deposit *models.OpayDeposit) error
	FindByTrxID(ctx context.Context, trxID string) (*models.OpayDeposit, error)
	// MarkApplied only matches an unapplied record.
	MarkApplied(ctx context.Context, trxID string, userID primitive.ObjectID, at time.Time) (*models.OpayDeposit, error)
	// Unapply with release also unsets userId.
	Unapply(ctx context.Context, trxID string, release bool) error
	ListClaimable(ctx context.Context, limit int64) ([]models.OpayDeposit, error)
	List(ctx context.Context, filter models.OpayFilter) ([]models.OpayDeposit, int64, error)
}

type SettingsStore interface {
	// Get decodes the value of the singleton document into out.
	Get(ctx context.Context, typ models.SettingType, out interface{}) error
	Put(ctx context.Context, typ models.SettingType, value interface{}) error
}

type FeatureImageStore interface {
	Create(ctx context.Context, image *models.FeatureImage) error
	List(ctx context.Context) ([]models.FeatureImage, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.FeatureImage, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type SocialLinkStore interface {
	Create(ctx context.Context, link *models.SocialLink) error
	List(ctx context.Context) ([]models.SocialLink, error)
	Update(ctx context.Context, id primitive.ObjectID, req models.SocialLinkRequest) (*models.SocialLink, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// GameProvider is the premium games catalog API.
type GameProvider interface {
	ListGames(ctx context.Context, query models.CatalogQuery) (*models.CatalogPage, error)
	Providers(ctx context.Context) ([]models.Provider, error)
	LaunchURL(ctx context.Context, params models.LaunchParams) (string, error)
}

type OpayGateway interface {
	Validate(ctx context.Context, settings models.OpaySettings, trxID string) (*models.OpayValidation, error)
}

type PresenceChecker interface {
	Status(ctx context.Context, deviceID string) (*models.PresenceStatus, error)
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type Notifier interface {
	Notify(ctx context.Context, text string) error
}
