package services

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrEmailTaken          = errors.New("an account with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrBlocked             = errors.New("account is blocked")
	ErrWrongPassword       = errors.New("current password is incorrect")
	ErrInvalidResetCode    = errors.New("reset code is invalid or expired")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBalanceBelowPending = errors.New("balance cannot be lower than pending withdrawals")
	ErrBelowMinimum        = errors.New("amount is below the minimum")
	ErrAboveMaximum        = errors.New("amount is above the maximum")
	ErrAlreadyProcessed    = errors.New("transaction was already processed")
	ErrInvalidStatus       = errors.New("unknown transaction status")
	ErrDuplicateTrx        = errors.New("transaction id was already submitted")
	ErrAlreadyApplied      = errors.New("payment was already applied")
	ErrInvalidTrx          = errors.New("payment could not be validated")
	ErrOpayDisabled        = errors.New("opay payments are disabled")
	ErrWebhookUnauthorized = errors.New("webhook secret mismatch")
	ErrInvalidFlag         = errors.New("unknown game flag")
	ErrCategoryExists      = errors.New("a category with this name already exists")
	ErrNoDevice            = errors.New("user has no registered device")
	ErrInvalidUpload       = errors.New("only image uploads are accepted")
	ErrUpstream            = errors.New("upstream service failed")
)

func isNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// notFound maps a store miss to ErrNotFound and passes everything else through.
func notFound(err error) error {
	if isNotFound(err) {
		return ErrNotFound
	}
	return err
}
