package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/simhonchourasia/playbet-be/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const reconcileBatch = 100

type OpayService struct {
	payments OpayStore
	deposits DepositStore
	users    UserStore
	settings *SettingsService
	gateway  OpayGateway
	notifier Notifier
	log      logrus.FieldLogger
	now      func() time.Time
}

func NewOpayService(
	payments OpayStore,
	deposits DepositStore,
	users UserStore,
	settings *SettingsService,
	gateway OpayGateway,
	notifier Notifier,
	log logrus.FieldLogger,
) *OpayService {
	return &OpayService{
		payments: payments,
		deposits: deposits,
		users:    users,
		settings: settings,
		gateway:  gateway,
		notifier: notifier,
		log:      log.WithField("component", "opay"),
		now:      time.Now,
	}
}

func (s *OpayService) Info(ctx context.Context) (models.OpayInfo, error) {
	settings, err := s.settings.Opay(ctx)
	if err != nil {
		return models.OpayInfo{}, err
	}
	return models.OpayInfo{
		Enabled:        settings.Enabled,
		MerchantNumber: settings.MerchantNumber,
		MinDeposit:     settings.MinDeposit,
	}, nil
}

// HandleWebhook records a payment pushed by the gateway. A payment naming a user is credited
// right away; a failed credit is left for the reconcile job.
func (s *OpayService) HandleWebhook(ctx context.Context, secret string, payload models.OpayWebhookPayload) (*models.OpayDeposit, error) {
	settings, err := s.settings.Opay(ctx)
	if err != nil {
		return nil, err
	}
	if settings.WebhookSecret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(settings.WebhookSecret)) != 1 {
		return nil, ErrWebhookUnauthorized
	}

	payment := &models.OpayDeposit{
		ID:        primitive.NewObjectID(),
		TrxID:     strings.TrimSpace(payload.TrxID),
		Amount:    roundAmount(payload.Amount),
		Sender:    strings.TrimSpace(payload.Sender),
		Source:    models.OpaySourceWebhook,
		CreatedAt: s.now().UTC(),
	}
	if payload.UserID != "" {
		userID, err := primitive.ObjectIDFromHex(payload.UserID)
		if err != nil {
			return nil, ErrInvalidTrx
		}
		_, err = s.users.FindByID(ctx, userID)
		switch {
		case err == nil:
			payment.UserID = &userID
		case isNotFound(err):
			s.log.WithFields(logrus.Fields{"trxid": payment.TrxID, "user": userID.Hex()}).
				Warn("opay webhook names an unknown user, stored unclaimed")
		default:
			return nil, err
		}
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateTrx
		}
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"trxid": payment.TrxID, "amount": payment.Amount}).Info("opay webhook recorded")

	if payment.UserID == nil {
		return payment, nil
	}
	applied, err := s.apply(ctx, payment.TrxID, *payment.UserID)
	if err != nil {
		s.log.WithError(err).WithField("trxid", payment.TrxID).Warn("opay webhook payment not credited")
		return payment, nil
	}
	return applied, nil
}

// Validate lets a player claim a payment by trxid. A stored unapplied payment is claimed
// directly; an unknown trxid is checked against the gateway first.
func (s *OpayService) Validate(ctx context.Context, userID primitive.ObjectID, req models.OpayValidateRequest) (*models.OpayDeposit, error) {
	settings, err := s.settings.Opay(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.Enabled {
		return nil, ErrOpayDisabled
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, notFound(err)
	}
	if user.Blocked {
		return nil, ErrBlocked
	}

	trxID := strings.TrimSpace(req.TrxID)
	existing, err := s.payments.FindByTrxID(ctx, trxID)
	switch {
	case err == nil:
		if existing.Applied {
			return nil, ErrAlreadyApplied
		}
		if existing.UserID != nil && *existing.UserID != userID {
			return nil, ErrDuplicateTrx
		}
		if exceeds(settings.MinDeposit, existing.Amount) {
			return nil, ErrBelowMinimum
		}
		return s.apply(ctx, trxID, userID)
	case !isNotFound(err):
		return nil, err
	}

	result, err := s.gateway.Validate(ctx, settings, trxID)
	if err != nil {
		s.log.WithError(err).WithField("trxid", trxID).Error("opay validation failed")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if !result.Valid {
		return nil, ErrInvalidTrx
	}
	if exceeds(settings.MinDeposit, result.Amount) {
		return nil, ErrBelowMinimum
	}

	payment := &models.OpayDeposit{
		ID:        primitive.NewObjectID(),
		TrxID:     trxID,
		Amount:    roundAmount(result.Amount),
		Sender:    result.Sender,
		UserID:    &userID,
		Source:    models.OpaySourceValidate,
		CreatedAt: s.now().UTC(),
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateTrx
		}
		return nil, err
	}
	return s.apply(ctx, trxID, userID)
}

// apply flips the applied flag once, books an approved deposit under the trxid and credits the
// balance. The deposit's unique trxid keeps a payment from being credited both here and through a
// manual deposit. Any failure rolls the flag back; a trxid owned by a manual deposit or a missing
// user also releases the record's user so reconcile stops retrying it.
func (s *OpayService) apply(ctx context.Context, trxID string, userID primitive.ObjectID) (*models.OpayDeposit, error) {
	now := s.now().UTC()
	payment, err := s.payments.MarkApplied(ctx, trxID, userID, now)
	if isNotFound(err) {
		return nil, ErrAlreadyApplied
	}
	if err != nil {
		return nil, err
	}

	deposit := &models.DepositTransaction{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Amount:      payment.Amount,
		Method:      models.MethodOpay,
		TrxID:       payment.TrxID,
		Sender:      payment.Sender,
		Status:      models.StatusApproved,
		Note:        payment.Source,
		CreatedAt:   now,
		ProcessedAt: &now,
	}
	if err := s.deposits.Create(ctx, deposit); err != nil {
		duplicate := mongo.IsDuplicateKeyError(err)
		s.unapply(ctx, trxID, duplicate)
		if duplicate {
			return nil, ErrDuplicateTrx
		}
		return nil, err
	}

	if err := s.users.IncBalance(ctx, userID, payment.Amount); err != nil {
		if deleteErr := s.deposits.Delete(ctx, deposit.ID); deleteErr != nil {
			s.log.WithError(deleteErr).WithField("trxid", trxID).Error("opay deposit record left without credit")
		}
		s.unapply(ctx, trxID, isNotFound(err))
		return nil, notFound(err)
	}

	s.log.WithFields(logrus.Fields{
		"trxid":  trxID,
		"user":   userID.Hex(),
		"amount": payment.Amount,
	}).Info("opay payment credited")
	if err := s.notifier.Notify(ctx, fmt.Sprintf("Opay payment credited: %.2f (trx %s)", payment.Amount, trxID)); err != nil {
		s.log.WithError(err).Warn("admin notification failed")
	}
	return payment, nil
}

func (s *OpayService) unapply(ctx context.Context, trxID string, release bool) {
	if err := s.payments.Unapply(ctx, trxID, release); err != nil {
		s.log.WithError(err).WithField("trxid", trxID).Error("opay payment left applied without credit")
	}
}

// Reconcile credits stored payments that name a user but were never applied.
func (s *OpayService) Reconcile(ctx context.Context) (int, error) {
	pending, err := s.payments.ListClaimable(ctx, reconcileBatch)
	if err != nil {
		return 0, err
	}
	applied := 0
	for _, payment := range pending {
		if payment.UserID == nil {
			continue
		}
		if _, err := s.apply(ctx, payment.TrxID, *payment.UserID); err != nil {
			s.log.WithError(err).WithField("trxid", payment.TrxID).Warn("reconcile skipped payment")
			continue
		}
		applied++
	}
	return applied, nil
}

func (s *OpayService) List(ctx context.Context, filter models.OpayFilter) ([]models.OpayDeposit, int64, error) {
	return s.payments.List(ctx, filter)
}
