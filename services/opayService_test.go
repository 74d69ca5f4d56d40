package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/simhonchourasia/playbet-be/models"
	"github.com/simhonchourasia/playbet-be/services"
	"github.com/simhonchourasia/playbet-be/services/mocks"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type opayDeps struct {
	payments *mocks.MockOpayStore
	deposits *mocks.MockDepositStore
	users    *mocks.MockUserStore
	settings *mocks.MockSettingsStore
	gateway  *mocks.MockOpayGateway
	notifier *mocks.MockNotifier
}

func newOpayService(t *testing.T) (*services.OpayService, opayDeps) {
	ctrl := gomock.NewController(t)
	deps := opayDeps{
		payments: mocks.NewMockOpayStore(ctrl),
		deposits: mocks.NewMockDepositStore(ctrl),
		users:    mocks.NewMockUserStore(ctrl),
		settings: mocks.NewMockSettingsStore(ctrl),
		gateway:  mocks.NewMockOpayGateway(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
	}
	svc := services.NewOpayService(
		deps.payments,
		deps.deposits,
		deps.users,
		services.NewSettingsService(deps.settings, "https://opay.example"),
		deps.gateway,
		deps.notifier,
		nullLogger(),
	)
	return svc, deps
}

var opaySettings = models.OpaySettings{
	APIKey:         "key",
	MerchantNumber: "01999999999",
	WebhookSecret:  "hook-secret",
	Enabled:        true,
	MinDeposit:     100,
}

// expectApply covers a successful credit of amount for trxID.
func expectApply(d opayDeps, trxID string, userID primitive.ObjectID, amount float64) {
	d.payments.EXPECT().
		MarkApplied(gomock.Any(), trxID, userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, trxID string, userID primitive.ObjectID, at time.Time) (*models.OpayDeposit, error) {
			return &models.OpayDeposit{TrxID: trxID, Amount: amount, UserID: &userID, Applied: true, AppliedAt: &at}, nil
		})
	d.users.EXPECT().IncBalance(gomock.Any(), userID, amount).Return(nil)
	d.deposits.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, deposit *models.DepositTransaction) error {
			if deposit.Method != models.MethodOpay || deposit.Status != models.StatusApproved || deposit.TrxID != trxID {
				return errors.New("unexpected deposit record")
			}
			return nil
		})
	d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
}

func TestOpayService_Info(t *testing.T) {
	svc, deps := newOpayService(t)
	expectSetting(deps.settings, models.SettingOpay, opaySettings)

	info, err := svc.Info(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.OpayInfo{Enabled: true, MerchantNumber: "01999999999", MinDeposit: 100}, info)
}

func TestOpayService_HandleWebhook(t *testing.T) {
	userID := primitive.NewObjectID()

	tests := []struct {
		name        string
		secret      string
		payload     models.OpayWebhookPayload
		prepare     func(d opayDeps)
		wantErr     error
		wantApplied bool
	}{
		{
			name:    "wrong secret",
			secret:  "guess",
			payload: models.OpayWebhookPayload{TrxID: "T1", Amount: 200},
			prepare: func(d opayDeps) {},
			wantErr: services.ErrWebhookUnauthorized,
		},
		{
			name:    "stored without user",
			secret:  "hook-secret",
			payload: models.OpayWebhookPayload{TrxID: "T1", Amount: 200, Sender: "017"},
			prepare: func(d opayDeps) {
				d.payments.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *models.OpayDeposit) error {
						require.Equal(t, models.OpaySourceWebhook, p.Source)
						require.False(t, p.Applied)
						require.Nil(t, p.UserID)
						return nil
					})
			},
		},
		{
			name:    "credited to named user",
			secret:  "hook-secret",
			payload: models.OpayWebhookPayload{TrxID: "T2", Amount: 200, UserID: userID.Hex()},
			prepare: func(d opayDeps) {
				d.users.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
				d.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				expectApply(d, "T2", userID, 200)
			},
			wantApplied: true,
		},
		{
			name:    "credit failure keeps the record for reconcile",
			secret:  "hook-secret",
			payload: models.OpayWebhookPayload{TrxID: "T3", Amount: 200, UserID: userID.Hex()},
			prepare: func(d opayDeps) {
				d.users.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
				d.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				d.payments.EXPECT().MarkApplied(gomock.Any(), "T3", userID, gomock.Any()).
					Return(&models.OpayDeposit{TrxID: "T3", Amount: 200}, nil)
				d.deposits.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				d.users.EXPECT().IncBalance(gomock.Any(), userID, 200.0).Return(errors.New("write conflict"))
				d.deposits.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				d.payments.EXPECT().Unapply(gomock.Any(), "T3", false).Return(nil)
			},
		},
		{
			name:    "unknown user stored unclaimed",
			secret:  "hook-secret",
			payload: models.OpayWebhookPayload{TrxID: "T4", Amount: 200, UserID: userID.Hex()},
			prepare: func(d opayDeps) {
				d.users.EXPECT().FindByID(gomock.Any(), userID).Return(nil, mongo.ErrNoDocuments)
				d.payments.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *models.OpayDeposit) error {
						require.Nil(t, p.UserID)
						return nil
					})
			},
		},
		{
			name:    "duplicate trxid",
			secret:  "hook-secret",
			payload: models.OpayWebhookPayload{TrxID: "T1", Amount: 200},
			prepare: func(d opayDeps) {
				d.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errDuplicate)
			},
			wantErr: services.ErrDuplicateTrx,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newOpayService(t)
			expectSetting(deps.settings, models.SettingOpay, opaySettings)
			tt.prepare(deps)

			payment, err := svc.HandleWebhook(context.Background(), tt.secret, tt.payload)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantApplied, payment.Applied)
		})
	}
}

func TestOpayService_HandleWebhook_NoSecretConfigured(t *testing.T) {
	svc, deps := newOpayService(t)
	expectNoSetting(deps.settings, models.SettingOpay)

	_, err := svc.HandleWebhook(context.Background(), "", models.OpayWebhookPayload{TrxID: "T1", Amount: 1})
	require.ErrorIs(t, err, services.ErrWebhookUnauthorized)
}

func TestOpayService_Validate(t *testing.T) {
	userID := primitive.NewObjectID()
	other := primitive.NewObjectID()

	tests := []struct {
		name    string
		prepare func(d opayDeps)
		wantErr error
	}{
		{
			name: "stored unapplied payment is claimed",
			prepare: func(d opayDeps) {
				d.payments.EXPECT().FindByTrxID(gomock.Any(), "T1").Return(&models.OpayDeposit{TrxID: "T1", Amount: 300}, nil)
				expectApply(d, "T1", userID, 300)
			},
		},
		{
			name: "already applied",
			prepare: func(d opayDeps) {
				d.payments.EXPECT().FindByTrxID(gomock.Any(), "T1").Return(&models.OpayDeposit{TrxID: "T1", Amount: 300, Applied: true}, nil)
			},
			wantErr: services.ErrAlreadyApplied,
		},
		{
			name: "stored for another user",
			prepare: func(d opayDeps) {
				d.payments.EXPECT().FindByTrxID(gomock.Any(), "T1").Return(&models.OpayDeposit{TrxID: "T1", Amount: 300, UserID: &other}, nil)
			},
			wantErr: services.ErrDuplicateTrx,
		},
		{
			name: "claim lost to a concurrent apply",
			prepare: func(d opayDeps) {
				d.payments.EXPECT().FindByTrxID(gomock.Any(), "T1").Return(&models.OpayDeposit{TrxID: "T1", Amount: 300}, nil)
				d.payments.EXPECT().MarkApplied(gomock.Any(), "T1", userID, gomock.Any()).Return(nil, mongo.ErrNoDocuments)
			},
			wantErr: services.ErrAlreadyApplied,
		},
		{
			name: "unknown trxid validated by the gateway",
			prepare: func(d opayDeps) {
				d.payments.EXPECT().FindByTrxID(gomock.Any(), "T1").Return(nil, mongo.ErrNoDocuments)
				d.gateway.EXPECT().
					Validate(gomock.Any(), gomock.Any(), "T1").
					DoAndReturn(func(_ context.Context, settings models.OpaySettings, _ string) (*models.OpayValidation, error) {
						require.Equal(t, "https://opay.example", settings.BaseURL)
						return &models.OpayValidation{Valid: true, Amount: 150, Sender: "018"}, nil
					})
				d.payments.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *models.OpayDeposit) error {
						require.Equal(t, models.OpaySourceValidate, p.Source)
						require.Equal(t, userID, *p.UserID)
						return nil
					})
				expectApply(d, "T1", userID, 150)
			},
		},
		{
			name: "gateway says invalid",
			prepare: func(d opayDeps) {
				d.payments.EXPECT().FindByTrxID(gomock.Any(), "T1").Return(nil, mongo.ErrNoDocuments)
				d.gateway.EXPECT().Validate(gomock.Any(), gomock.Any(), "T1").Return(&models.OpayValidation{Valid: false}, nil)
			},
			wantErr: services.ErrInvalidTrx,
		},
		{
			name: "gateway amount below minimum",
			prepare: func(d opayDeps) {
				d.payments.EXPECT().FindByTrxID(gomock.Any(), "T1").Return(nil, mongo.ErrNoDocuments)
				d.gateway.EXPECT().Validate(gomock.Any(), gomock.Any(), "T1").Return(&models.OpayValidation{Valid: true, Amount: 99}, nil)
			},
			wantErr: services.ErrBelowMinimum,
		},
		{
			name: "gateway unreachable",
			prepare: func(d opayDeps) {
				d.payments.EXPECT().FindByTrxID(gomock.Any(), "T1").Return(nil, mongo.ErrNoDocuments)
				d.gateway.EXPECT().Validate(gomock.Any(), gomock.Any(), "T1").Return(nil, errors.New("dial tcp: timeout"))
			},
			wantErr: services.ErrUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newOpayService(t)
			expectSetting(deps.settings, models.SettingOpay, opaySettings)
			deps.users.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
			tt.prepare(deps)

			payment, err := svc.Validate(context.Background(), userID, models.OpayValidateRequest{TrxID: " T1 "})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.True(t, payment.Applied)
		})
	}
}

func TestOpayService_Validate_Disabled(t *testing.T) {
	svc, deps := newOpayService(t)
	disabled := opaySettings
	disabled.Enabled = false
	expectSetting(deps.settings, models.SettingOpay, disabled)

	_, err := svc.Validate(context.Background(), primitive.NewObjectID(), models.OpayValidateRequest{TrxID: "T1"})
	require.ErrorIs(t, err, services.ErrOpayDisabled)
}

func TestOpayService_Reconcile(t *testing.T) {
	svc, deps := newOpayService(t)
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	deps.payments.EXPECT().ListClaimable(gomock.Any(), int64(100)).Return([]models.OpayDeposit{
		{TrxID: "A", Amount: 100, UserID: &first},
		{TrxID: "B", Amount: 200, UserID: &second},
		{TrxID: "C", Amount: 300},
	}, nil)
	expectApply(deps, "A", first, 100)
	deps.payments.EXPECT().MarkApplied(gomock.Any(), "B", second, gomock.Any()).Return(nil, mongo.ErrNoDocuments)

	applied, err := svc.Reconcile(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, applied)
}

func TestOpayService_Validate_RollsBack(t *testing.T) {
	userID := primitive.NewObjectID()

	tests := []struct {
		name    string
		prepare func(d opayDeps)
		wantErr error
	}{
		{
			name: "trxid already booked as a manual deposit",
			prepare: func(d opayDeps) {
				d.deposits.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errDuplicate)
				d.payments.EXPECT().Unapply(gomock.Any(), "T1", true).Return(nil)
			},
			wantErr: services.ErrDuplicateTrx,
		},
		{
			name: "user deleted before the credit",
			prepare: func(d opayDeps) {
				d.deposits.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				d.users.EXPECT().IncBalance(gomock.Any(), userID, 300.0).Return(mongo.ErrNoDocuments)
				d.deposits.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				d.payments.EXPECT().Unapply(gomock.Any(), "T1", true).Return(nil)
			},
			wantErr: services.ErrNotFound,
		},
		{
			name: "deposit write fails",
			prepare: func(d opayDeps) {
				d.deposits.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
				d.payments.EXPECT().Unapply(gomock.Any(), "T1", false).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newOpayService(t)
			expectSetting(deps.settings, models.SettingOpay, opaySettings)
			deps.users.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
			deps.payments.EXPECT().FindByTrxID(gomock.Any(), "T1").Return(&models.OpayDeposit{TrxID: "T1", Amount: 300}, nil)
			deps.payments.EXPECT().MarkApplied(gomock.Any(), "T1", userID, gomock.Any()).
				Return(&models.OpayDeposit{TrxID: "T1", Amount: 300, Applied: true}, nil)
			tt.prepare(deps)

			_, err := svc.Validate(context.Background(), userID, models.OpayValidateRequest{TrxID: "T1"})
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// paymentBook backs the opay and deposit stores with maps so both services see the same
// trxid index.
type paymentBook struct {
	payments map[string]*models.OpayDeposit
	deposits map[primitive.ObjectID]*models.DepositTransaction
	credited float64
}

func newPaymentBook(d opayDeps) *paymentBook {
	b := &paymentBook{
		payments: map[string]*models.OpayDeposit{},
		deposits: map[primitive.ObjectID]*models.DepositTransaction{},
	}
	d.payments.EXPECT().FindByTrxID(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, trxID string) (*models.OpayDeposit, error) {
			p, ok := b.payments[trxID]
			if !ok {
				return nil, mongo.ErrNoDocuments
			}
			cp := *p
			return &cp, nil
		})
	d.payments.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, p *models.OpayDeposit) error {
			if _, ok := b.payments[p.TrxID]; ok {
				return errDuplicate
			}
			cp := *p
			b.payments[p.TrxID] = &cp
			return nil
		})
	d.payments.EXPECT().MarkApplied(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, trxID string, userID primitive.ObjectID, at time.Time) (*models.OpayDeposit, error) {
			p, ok := b.payments[trxID]
			if !ok || p.Applied {
				return nil, mongo.ErrNoDocuments
			}
			p.Applied, p.UserID, p.AppliedAt = true, &userID, &at
			cp := *p
			return &cp, nil
		})
	d.payments.EXPECT().Unapply(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, trxID string, release bool) error {
			p := b.payments[trxID]
			p.Applied, p.AppliedAt = false, nil
			if release {
				p.UserID = nil
			}
			return nil
		})
	d.deposits.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, deposit *models.DepositTransaction) error {
			for _, existing := range b.deposits {
				if existing.TrxID == deposit.TrxID {
					return errDuplicate
				}
			}
			cp := *deposit
			b.deposits[deposit.ID] = &cp
			return nil
		})
	d.deposits.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, id primitive.ObjectID) error {
			delete(b.deposits, id)
			return nil
		})
	d.deposits.EXPECT().Transition(gomock.Any(), gomock.Any(), models.StatusPending, gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, id primitive.ObjectID, from models.TxStatus, tr models.Transition) (*models.DepositTransaction, error) {
			deposit, ok := b.deposits[id]
			if !ok || deposit.Status != from {
				return nil, mongo.ErrNoDocuments
			}
			deposit.Status = tr.To
			cp := *deposit
			return &cp, nil
		})
	d.users.EXPECT().IncBalance(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, amount float64) error {
			b.credited += amount
			return nil
		})
	return b
}

func TestOpayAndManualDeposit_CreditOnce(t *testing.T) {
	userID := primitive.NewObjectID()
	manual := models.DepositRequest{Amount: 500, Method: "opay", TrxID: "T1", Sender: "017"}
	claim := models.OpayValidateRequest{TrxID: "T1"}

	type flow struct {
		opay     *services.OpayService
		deposits *services.DepositService
	}

	tests := []struct {
		name string
		run  func(t *testing.T, f flow)
	}{
		{
			name: "manual deposit pending then opay claim",
			run: func(t *testing.T, f flow) {
				deposit, err := f.deposits.Create(context.Background(), userID, manual)
				require.NoError(t, err)
				_, err = f.opay.Validate(context.Background(), userID, claim)
				require.ErrorIs(t, err, services.ErrDuplicateTrx)
				_, err = f.deposits.Approve(context.Background(), deposit.ID, primitive.NewObjectID())
				require.NoError(t, err)
			},
		},
		{
			name: "manual deposit approved then opay claim",
			run: func(t *testing.T, f flow) {
				deposit, err := f.deposits.Create(context.Background(), userID, manual)
				require.NoError(t, err)
				_, err = f.deposits.Approve(context.Background(), deposit.ID, primitive.NewObjectID())
				require.NoError(t, err)
				_, err = f.opay.Validate(context.Background(), userID, claim)
				require.ErrorIs(t, err, services.ErrDuplicateTrx)
			},
		},
		{
			name: "opay claim then manual deposit",
			run: func(t *testing.T, f flow) {
				_, err := f.opay.Validate(context.Background(), userID, claim)
				require.NoError(t, err)
				_, err = f.deposits.Create(context.Background(), userID, manual)
				require.ErrorIs(t, err, services.ErrDuplicateTrx)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opay, deps := newOpayService(t)
			book := newPaymentBook(deps)
			expectSetting(deps.settings, models.SettingOpay, opaySettings).AnyTimes()
			expectSetting(deps.settings, models.SettingLimits, models.LimitSettings{MinDeposit: 100}).AnyTimes()
			deps.users.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID, Email: "a@b.co"}, nil).AnyTimes()
			deps.gateway.EXPECT().Validate(gomock.Any(), gomock.Any(), "T1").
				Return(&models.OpayValidation{Valid: true, Amount: 500, Sender: "017"}, nil).AnyTimes()
			deps.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			deposits := services.NewDepositService(deps.deposits, deps.users,
				services.NewSettingsService(deps.settings, ""), deps.notifier, nullLogger())
			tt.run(t, flow{opay: opay, deposits: deposits})

			require.Equal(t, 500.0, book.credited)
		})
	}
}

func TestOpayService_Reconcile_ReleasesMissingUser(t *testing.T) {
	svc, deps := newOpayService(t)
	gone := primitive.NewObjectID()
	deps.users.EXPECT().IncBalance(gomock.Any(), gone, 200.0).Return(mongo.ErrNoDocuments)
	book := newPaymentBook(deps)
	book.payments["G"] = &models.OpayDeposit{TrxID: "G", Amount: 200, UserID: &gone}
	deps.payments.EXPECT().ListClaimable(gomock.Any(), int64(100)).Return([]models.OpayDeposit{*book.payments["G"]}, nil)

	applied, err := svc.Reconcile(context.Background())
	require.NoError(t, err)
	require.Zero(t, applied)
	require.False(t, book.payments["G"].Applied)
	require.Nil(t, book.payments["G"].UserID)
	require.Empty(t, book.deposits)
}
