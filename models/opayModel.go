package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OpaySourceWebhook  = "webhook"
	OpaySourceValidate = "validate"
)

// OpayDeposit is one gateway payment. Applied flips to true exactly once, when the amount is
// credited to UserID.
type OpayDeposit struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	TrxID     string              `bson:"trxid" json:"trxid"`
	Amount    float64             `bson:"amount" json:"amount"`
	Sender    string              `bson:"sender" json:"sender"`
	UserID    *primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	Applied   bool                `bson:"applied" json:"applied"`
	Source    string              `bson:"source" json:"source"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	AppliedAt *time.Time          `bson:"appliedAt,omitempty" json:"appliedAt,omitempty"`
}

type OpaySettings struct {
	APIKey         string    `bson:"apiKey" json:"apiKey" validate:"max=200"`
	BaseURL        string    `bson:"baseUrl" json:"baseUrl" validate:"omitempty,url"`
	MerchantNumber string    `bson:"merchantNumber" json:"merchantNumber" validate:"max=30"`
	WebhookSecret  string    `bson:"webhookSecret" json:"webhookSecret" validate:"max=200"`
	Enabled        bool      `bson:"enabled" json:"enabled"`
	MinDeposit     float64   `bson:"minDeposit" json:"minDeposit" validate:"gte=0"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// OpayInfo is the part of the settings a player may see.
type OpayInfo struct {
	Enabled        bool    `json:"enabled"`
	MerchantNumber string  `json:"merchantNumber"`
	MinDeposit     float64 `json:"minDeposit"`
}

type OpayWebhookPayload struct {
	TrxID  string  `json:"trxid" validate:"required,max=64"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Sender string  `json:"sender" validate:"max=30"`
	UserID string  `json:"userId" validate:"omitempty,len=24,hexadecimal"`
}

type OpayValidateRequest struct {
	TrxID string `json:"trxid" validate:"required,max=64"`
}

// OpayValidation is the gateway's answer about a trxid.
type OpayValidation struct {
	Valid  bool    `json:"valid"`
	Amount float64 `json:"amount"`
	Sender string  `json:"sender"`
}

type OpayFilter struct {
	Applied *bool
	Page    Page
}
