package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const MethodOpay = "opay"

type DepositTransaction struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID  `bson:"userId" json:"userId"`
	Amount      float64             `bson:"amount" json:"amount"`
	Method      string              `bson:"method" json:"method"`
	TrxID       string              `bson:"trxid" json:"trxid"`
	Sender      string              `bson:"sender" json:"sender"`
	Status      TxStatus            `bson:"status" json:"status"`
	Note        string              `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	ProcessedAt *time.Time          `bson:"processedAt,omitempty" json:"processedAt,omitempty"`
	ProcessedBy *primitive.ObjectID `bson:"processedBy,omitempty" json:"processedBy,omitempty"`
}

type DepositRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Method string  `json:"method" validate:"required,max=30"`
	TrxID  string  `json:"trxid" validate:"required,max=64"`
	Sender string  `json:"sender" validate:"required,max=30"`
}

type Withdraw struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID  `bson:"userId" json:"userId"`
	Amount      float64             `bson:"amount" json:"amount"`
	Method      string              `bson:"method" json:"method"`
	Account     string              `bson:"account" json:"account"`
	Status      TxStatus            `bson:"status" json:"status"`
	Note        string              `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	ProcessedAt *time.Time          `bson:"processedAt,omitempty" json:"processedAt,omitempty"`
	ProcessedBy *primitive.ObjectID `bson:"processedBy,omitempty" json:"processedBy,omitempty"`
}

type WithdrawRequest struct {
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	Method  string  `json:"method" validate:"required,max=30"`
	Account string  `json:"account" validate:"required,max=30"`
}

// TxFilter narrows deposit and withdraw listings.
type TxFilter struct {
	UserID *primitive.ObjectID
	Status TxStatus
	Page   Page
}

// Transition moves a pending deposit or withdraw to its final status.
type Transition struct {
	To          TxStatus
	Note        string
	ProcessedBy primitive.ObjectID
	At          time.Time
}
