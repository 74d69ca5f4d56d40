package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/simhonchourasia/playbet-be/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WithdrawService struct {
	withdraws WithdrawStore
	users     UserStore
	settings  *SettingsService
	notifier  Notifier
	log       logrus.FieldLogger
	now       func() time.Time
}

func NewWithdrawService(withdraws WithdrawStore, users UserStore, settings *SettingsService, notifier Notifier, log logrus.FieldLogger) *WithdrawService {
	return &WithdrawService{
		withdraws: withdraws,
		users:     users,
		settings:  settings,
		notifier:  notifier,
		log:       log.WithField("component", "withdraws"),
		now:       time.Now,
	}
}

// Create files a pending withdraw. The amount has to fit in what the balance still covers once
// earlier pending withdraws are taken out.
func (s *WithdrawService) Create(ctx context.Context, userID primitive.ObjectID, req models.WithdrawRequest) (*models.Withdraw, error) {
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
	if exceeds(limits.MinWithdraw, req.Amount) {
		return nil, ErrBelowMinimum
	}
	if limits.MaxWithdraw > 0 && exceeds(req.Amount, limits.MaxWithdraw) {
		return nil, ErrAboveMaximum
	}

	pending, err := s.withdraws.PendingTotal(ctx, userID)
	if err != nil {
		return nil, err
	}
	if exceeds(req.Amount, subAmount(user.Balance, pending)) {
		return nil, ErrInsufficientBalance
	}

	withdraw := &models.Withdraw{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Amount:    roundAmount(req.Amount),
		Method:    strings.ToLower(strings.TrimSpace(req.Method)),
		Account:   strings.TrimSpace(req.Account),
		Status:    models.StatusPending,
		CreatedAt: s.now().UTC(),
	}
	if err := s.withdraws.Create(ctx, withdraw); err != nil {
		return nil, err
	}

	text := fmt.Sprintf("New withdraw request: %.2f via %s to %s from %s",
		withdraw.Amount, withdraw.Method, withdraw.Account, user.Email)
	if err := s.notifier.Notify(ctx, text); err != nil {
		s.log.WithError(err).Warn("admin notification failed")
	}
	return withdraw, nil
}

func (s *WithdrawService) List(ctx context.Context, filter models.TxFilter) ([]models.Withdraw, int64, error) {
	if err := checkStatus(filter.Status); err != nil {
		return nil, 0, err
	}
	return s.withdraws.List(ctx, filter)
}

// Approve marks the withdraw approved and then debits the balance. A debit the balance cannot
// cover puts the withdraw back to pending.
func (s *WithdrawService) Approve(ctx context.Context, id, adminID primitive.ObjectID) (*models.Withdraw, error) {
	withdraw, err := s.withdraws.Transition(ctx, id, models.StatusPending, models.Transition{
		To:          models.StatusApproved,
		ProcessedBy: adminID,
		At:          s.now().UTC(),
	})
	if err != nil {
		return nil, missedTransition(err, func() error {
			_, err := s.withdraws.FindByID(ctx, id)
			return err
		})
	}

	if err := s.users.DebitBalance(ctx, withdraw.UserID, withdraw.Amount); err != nil {
		if reopenErr := s.withdraws.Reopen(ctx, id, models.StatusApproved); reopenErr != nil {
			s.log.WithError(reopenErr).WithField("withdraw", id.Hex()).Error("withdraw left approved without debit")
		}
		if isNotFound(err) {
			return nil, ErrInsufficientBalance
		}
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"withdraw": id.Hex(),
		"user":     withdraw.UserID.Hex(),
		"amount":   withdraw.Amount,
	}).Info("withdraw approved")
	return withdraw, nil
}

func (s *WithdrawService) Reject(ctx context.Context, id, adminID primitive.ObjectID, reason string) (*models.Withdraw, error) {
	withdraw, err := s.withdraws.Transition(ctx, id, models.StatusPending, models.Transition{
		To:          models.StatusRejected,
		Note:        strings.TrimSpace(reason),
		ProcessedBy: adminID,
		At:          s.now().UTC(),
	})
	if err != nil {
		return nil, missedTransition(err, func() error {
			_, err := s.withdraws.FindByID(ctx, id)
			return err
		})
	}
	s.log.WithField("withdraw", id.Hex()).Info("withdraw rejected")
	return withdraw, nil
}
