package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name          string              `bson:"name" json:"name"`
	Email         string              `bson:"email" json:"email"`
	Phone         string              `bson:"phone" json:"phone"`
	Password      string              `bson:"password" json:"-"`
	Role          Role                `bson:"role" json:"role"`
	Balance       float64             `bson:"balance" json:"balance"`
	ReferCode     string              `bson:"referCode" json:"referCode"`
	ReferredBy    *primitive.ObjectID `bson:"referredBy,omitempty" json:"referredBy,omitempty"`
	ReferEarnings float64             `bson:"referEarnings" json:"referEarnings"`
	DeviceID      string              `bson:"deviceId,omitempty" json:"deviceId,omitempty"`
	Blocked       bool                `bson:"blocked" json:"blocked"`
	ResetCode     string              `bson:"resetCode,omitempty" json:"-"`
	ResetExpires  *time.Time          `bson:"resetExpires,omitempty" json:"-"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserProfile is a user plus the balance still free to withdraw.
type UserProfile struct {
	User
	PendingWithdraw  float64 `json:"pendingWithdraw"`
	AvailableBalance float64 `json:"availableBalance"`
}

type SignUpRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=60"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=6,max=20"`
	Password  string `json:"password" validate:"required,min=6,max=100"`
	ReferCode string `json:"referCode" validate:"omitempty,max=16"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type ProfileUpdate struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=60"`
	Phone    *string `json:"phone" validate:"omitempty,min=6,max=20"`
	DeviceID *string `json:"deviceId" validate:"omitempty,max=128"`
}

// AdminUserUpdate is what an admin may change on any account.
type AdminUserUpdate struct {
	Role    *Role    `json:"role" validate:"omitempty,oneof=user admin"`
	Balance *float64 `json:"balance" validate:"omitempty,gte=0"`
	Blocked *bool    `json:"blocked"`
}

// UserUpdate is the $set document a store applies; nil fields are left alone.
type UserUpdate struct {
	Name     *string
	Phone    *string
	DeviceID *string
	Role     *Role
	Balance  *float64
	Blocked  *bool
}

type PasswordChange struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=100"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Code     string `json:"code" validate:"required,len=6"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

type UserFilter struct {
	Search string
	Role   Role
	Page   Page
}

type PresenceStatus struct {
	DeviceID string     `json:"deviceId"`
	Online   bool       `json:"online"`
	LastSeen *time.Time `json:"lastSeen,omitempty"`
}
