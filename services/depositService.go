package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/simhonchourasia/playbet-be/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DepositService struct {
	deposits DepositStore
	users    UserStore
	settings *SettingsService
	notifier Notifier
	log      logrus.FieldLogger
	now      func() time.Time
}

func NewDepositService(deposits DepositStore, users UserStore, settings *SettingsService, notifier Notifier, log logrus.FieldLogger) *DepositService {
	return &DepositService{
		deposits: deposits,
		users:    users,
		settings: settings,
		notifier: notifier,
		log:      log.WithField("component", "deposits"),
		now:      time.Now,
	}
}

func checkStatus(status models.TxStatus) error {
	if status != "" && !status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// missedTransition explains why a conditional status update matched nothing.
func missedTransition(err error, exists func() error) error {
	if !isNotFound(err) {
		return err
	}
	if findErr := exists(); findErr != nil {
		return notFound(findErr)
	}
	return ErrAlreadyProcessed
}

func (s *DepositService) Create(ctx context.Context, userID primitive.ObjectID, req models.DepositRequest) (*models.DepositTransaction, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, notFound(err)
	}
	if user.Blocked {
		return nil, ErrBlocked
	}
	limits, err := s.settings.Limits(ctx)
	if err != nil {
		return nil, err
	}
	if exceeds(limits.MinDeposit, req.Amount) {
		return nil, ErrBelowMinimum
	}

	deposit := &models.DepositTransaction{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Amount:    roundAmount(req.Amount),
		Method:    strings.ToLower(strings.TrimSpace(req.Method)),
		TrxID:     strings.TrimSpace(req.TrxID),
		Sender:    strings.TrimSpace(req.Sender),
		Status:    models.StatusPending,
		CreatedAt: s.now().UTC(),
	}
	if err := s.deposits.Create(ctx, deposit); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateTrx
		}
		return nil, err
	}

	s.notify(ctx, fmt.Sprintf("New deposit request: %.2f via %s from %s (trx %s)",
		deposit.Amount, deposit.Method, user.Email, deposit.TrxID))
	return deposit, nil
}

func (s *DepositService) notify(ctx context.Context, text string) {
	if err := s.notifier.Notify(ctx, text); err != nil {
		s.log.WithError(err).Warn("admin notification failed")
	}
}

func (s *DepositService) List(ctx context.Context, filter models.TxFilter) ([]models.DepositTransaction, int64, error) {
	if err := checkStatus(filter.Status); err != nil {
		return nil, 0, err
	}
	return s.deposits.List(ctx, filter)
}

// Approve moves a pending deposit to approved and credits the user. When the credit fails the
// deposit goes back to pending.
func (s *DepositService) Approve(ctx context.Context, id, adminID primitive.ObjectID) (*models.DepositTransaction, error) {
	deposit, err := s.deposits.Transition(ctx, id, models.StatusPending, models.Transition{
		To:          models.StatusApproved,
		ProcessedBy: adminID,
		At:          s.now().UTC(),
	})
	if err != nil {
		return nil, missedTransition(err, func() error {
			_, err := s.deposits.FindByID(ctx, id)
			return err
		})
	}

	if err := s.users.IncBalance(ctx, deposit.UserID, deposit.Amount); err != nil {
		if reopenErr := s.deposits.Reopen(ctx, id, models.StatusApproved); reopenErr != nil {
			s.log.WithError(reopenErr).WithField("deposit", id.Hex()).Error("deposit left approved without credit")
		}
		return nil, notFound(err)
	}

	s.log.WithFields(logrus.Fields{
		"deposit": id.Hex(),
		"user":    deposit.UserID.Hex(),
		"amount":  deposit.Amount,
	}).Info("deposit approved")
	return deposit, nil
}

func (s *DepositService) Reject(ctx context.Context, id, adminID primitive.ObjectID, reason string) (*models.DepositTransaction, error) {
	deposit, err := s.deposits.Transition(ctx, id, models.StatusPending, models.Transition{
		To:          models.StatusRejected,
		Note:        strings.TrimSpace(reason),
		ProcessedBy: adminID,
		At:          s.now().UTC(),
	})
	if err != nil {
		return nil, missedTransition(err, func() error {
			_, err := s.deposits.FindByID(ctx, id)
			return err
		})
	}
	s.log.WithField("deposit", id.Hex()).Info("deposit rejected")
	return deposit, nil
}
