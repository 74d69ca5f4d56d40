package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/simhonchourasia/playbet-be/authentication"
	"github.com/simhonchourasia/playbet-be/models"
	"github.com/simhonchourasia/playbet-be/services"
	"github.com/simhonchourasia/playbet-be/services/mocks"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type userDeps struct {
	users     *mocks.MockUserStore
	withdraws *mocks.MockWithdrawStore
	settings  *mocks.MockSettingsStore
	mailer    *mocks.MockMailer
	presence  *mocks.MockPresenceChecker
	tokens    *authentication.TokenManager
}

func newUserService(t *testing.T) (*services.UserService, userDeps) {
	ctrl := gomock.NewController(t)
	deps := userDeps{
		users:     mocks.NewMockUserStore(ctrl),
		withdraws: mocks.NewMockWithdrawStore(ctrl),
		settings:  mocks.NewMockSettingsStore(ctrl),
		mailer:    mocks.NewMockMailer(ctrl),
		presence:  mocks.NewMockPresenceChecker(ctrl),
		tokens:    authentication.NewTokenManager("secret", time.Hour),
	}
	svc := services.NewUserService(
		deps.users,
		deps.withdraws,
		services.NewSettingsService(deps.settings, ""),
		deps.tokens,
		deps.mailer,
		deps.presence,
		nullLogger(),
	)
	return svc, deps
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := authentication.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func TestUserService_SignUp(t *testing.T) {
	referrer := models.User{ID: primitive.NewObjectID(), ReferCode: "ABCD1234"}
	bonus := models.BonusSettings{ReferBonus: 50, WelcomeBonus: 20}

	tests := []struct {
		name    string
		req     models.SignUpRequest
		prepare func(d userDeps)
		wantErr error
		check   func(t *testing.T, resp *models.AuthResponse)
	}{
		{
			name: "welcome bonus and referral credit",
			req: models.SignUpRequest{
				Name: "Rahim", Email: " Rahim@Example.com ", Phone: "01700000000",
				Password: "secret1", ReferCode: "abcd1234",
			},
			prepare: func(d userDeps) {
				d.users.EXPECT().FindByEmail(gomock.Any(), "rahim@example.com").Return(nil, mongo.ErrNoDocuments)
				expectSetting(d.settings, models.SettingBonus, bonus)
				d.users.EXPECT().FindByReferCode(gomock.Any(), "ABCD1234").Return(&referrer, nil)
				d.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				d.users.EXPECT().CreditReferral(gomock.Any(), referrer.ID, 50.0).Return(nil)
			},
			check: func(t *testing.T, resp *models.AuthResponse) {
				require.Equal(t, "rahim@example.com", resp.User.Email)
				require.Equal(t, 20.0, resp.User.Balance)
				require.Equal(t, models.RoleUser, resp.User.Role)
				require.NotNil(t, resp.User.ReferredBy)
				require.Equal(t, referrer.ID, *resp.User.ReferredBy)
				require.Len(t, resp.User.ReferCode, 8)
				require.Equal(t, strings.ToUpper(resp.User.ReferCode), resp.User.ReferCode)
				require.True(t, authentication.VerifyPassword("secret1", resp.User.Password))
				require.NotEmpty(t, resp.Token)
			},
		},
		{
			name: "unknown refer code is ignored",
			req:  models.SignUpRequest{Name: "A", Email: "a@b.co", Phone: "0170000", Password: "secret1", ReferCode: "NOPE"},
			prepare: func(d userDeps) {
				d.users.EXPECT().FindByEmail(gomock.Any(), "a@b.co").Return(nil, mongo.ErrNoDocuments)
				expectNoSetting(d.settings, models.SettingBonus)
				d.users.EXPECT().FindByReferCode(gomock.Any(), "NOPE").Return(nil, mongo.ErrNoDocuments)
				d.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, resp *models.AuthResponse) {
				require.Nil(t, resp.User.ReferredBy)
				require.Zero(t, resp.User.Balance)
			},
		},
		{
			name: "email taken",
			req:  models.SignUpRequest{Name: "A", Email: "a@b.co", Phone: "0170000", Password: "secret1"},
			prepare: func(d userDeps) {
				d.users.EXPECT().FindByEmail(gomock.Any(), "a@b.co").Return(&models.User{}, nil)
			},
			wantErr: services.ErrEmailTaken,
		},
		{
			name: "refer code collision is retried",
			req:  models.SignUpRequest{Name: "A", Email: "a@b.co", Phone: "0170000", Password: "secret1"},
			prepare: func(d userDeps) {
				gomock.InOrder(
					d.users.EXPECT().FindByEmail(gomock.Any(), "a@b.co").Return(nil, mongo.ErrNoDocuments),
					d.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errDuplicate),
					d.users.EXPECT().FindByEmail(gomock.Any(), "a@b.co").Return(nil, mongo.ErrNoDocuments),
					d.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
				)
				expectNoSetting(d.settings, models.SettingBonus)
			},
			check: func(t *testing.T, resp *models.AuthResponse) {
				require.NotEmpty(t, resp.User.ReferCode)
			},
		},
		{
			name: "concurrent signup with same email",
			req:  models.SignUpRequest{Name: "A", Email: "a@b.co", Phone: "0170000", Password: "secret1"},
			prepare: func(d userDeps) {
				gomock.InOrder(
					d.users.EXPECT().FindByEmail(gomock.Any(), "a@b.co").Return(nil, mongo.ErrNoDocuments),
					d.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errDuplicate),
					d.users.EXPECT().FindByEmail(gomock.Any(), "a@b.co").Return(&models.User{}, nil),
				)
				expectNoSetting(d.settings, models.SettingBonus)
			},
			wantErr: services.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newUserService(t)
			tt.prepare(deps)

			resp, err := svc.SignUp(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, resp)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	user := models.User{ID: primitive.NewObjectID(), Email: "a@b.co", Password: hashed(t, "pass123"), Role: models.RoleAdmin}
	blocked := user
	blocked.Blocked = true

	tests := []struct {
		name     string
		password string
		found    *models.User
		findErr  error
		wantErr  error
	}{
		{name: "valid credentials", password: "pass123", found: &user},
		{name: "wrong password", password: "nope", found: &user, wantErr: services.ErrInvalidCredentials},
		{name: "unknown email", password: "pass123", findErr: mongo.ErrNoDocuments, wantErr: services.ErrInvalidCredentials},
		{name: "blocked account", password: "pass123", found: &blocked, wantErr: services.ErrBlocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newUserService(t)
			deps.users.EXPECT().FindByEmail(gomock.Any(), "a@b.co").Return(tt.found, tt.findErr)

			resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "A@b.co", Password: tt.password})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			claims, err := deps.tokens.ValidateToken(resp.Token)
			require.NoError(t, err)
			require.Equal(t, user.ID.Hex(), claims.UserID)
			require.Equal(t, models.RoleAdmin, claims.Role)
		})
	}
}

func TestUserService_Profile(t *testing.T) {
	svc, deps := newUserService(t)
	id := primitive.NewObjectID()
	deps.users.EXPECT().FindByID(gomock.Any(), id).Return(&models.User{ID: id, Balance: 100.1}, nil)
	deps.withdraws.EXPECT().PendingTotal(gomock.Any(), id).Return(30.05, nil)

	profile, err := svc.Profile(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, 30.05, profile.PendingWithdraw)
	require.Equal(t, 70.05, profile.AvailableBalance)
}

func TestUserService_Profile_NotFound(t *testing.T) {
	svc, deps := newUserService(t)
	deps.users.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, mongo.ErrNoDocuments)

	_, err := svc.Profile(context.Background(), primitive.NewObjectID())
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestUserService_AdminUpdate(t *testing.T) {
	id := primitive.NewObjectID()
	balance := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		req     models.AdminUserUpdate
		prepare func(d userDeps)
		wantErr error
	}{
		{
			name: "balance below pending withdraws",
			req:  models.AdminUserUpdate{Balance: balance(40)},
			prepare: func(d userDeps) {
				d.withdraws.EXPECT().PendingTotal(gomock.Any(), id).Return(50.0, nil)
			},
			wantErr: services.ErrBalanceBelowPending,
		},
		{
			name: "balance covering pending withdraws",
			req:  models.AdminUserUpdate{Balance: balance(50)},
			prepare: func(d userDeps) {
				d.withdraws.EXPECT().PendingTotal(gomock.Any(), id).Return(50.0, nil)
				d.users.EXPECT().
					Update(gomock.Any(), id, models.UserUpdate{Balance: balance(50)}).
					Return(&models.User{ID: id, Balance: 50}, nil)
			},
		},
		{
			name: "block without touching balance",
			req:  models.AdminUserUpdate{Blocked: func() *bool { b := true; return &b }()},
			prepare: func(d userDeps) {
				d.users.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(&models.User{ID: id, Blocked: true}, nil)
			},
		},
		{
			name: "missing user",
			req:  models.AdminUserUpdate{},
			prepare: func(d userDeps) {
				d.users.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, mongo.ErrNoDocuments)
			},
			wantErr: services.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newUserService(t)
			tt.prepare(deps)

			_, err := svc.AdminUpdate(context.Background(), id, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUserService_ForgotPassword(t *testing.T) {
	t.Run("unknown email succeeds silently", func(t *testing.T) {
		svc, deps := newUserService(t)
		deps.users.EXPECT().FindByEmail(gomock.Any(), "ghost@b.co").Return(nil, mongo.ErrNoDocuments)

		require.NoError(t, svc.ForgotPassword(context.Background(), models.ForgotPasswordRequest{Email: "ghost@b.co"}))
	})

	t.Run("stores hashed code and mails it", func(t *testing.T) {
		svc, deps := newUserService(t)
		user := &models.User{ID: primitive.NewObjectID(), Name: "A", Email: "a@b.co"}
		var storedHash string
		var mailed string

		deps.users.EXPECT().FindByEmail(gomock.Any(), "a@b.co").Return(user, nil)
		deps.users.EXPECT().
			SetResetCode(gomock.Any(), user.ID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ primitive.ObjectID, hash string, expires time.Time) error {
				storedHash = hash
				require.WithinDuration(t, time.Now().Add(15*time.Minute), expires, time.Minute)
				return nil
			})
		deps.mailer.EXPECT().
			Send(gomock.Any(), "a@b.co", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, body string) error {
				mailed = body
				return nil
			})

		require.NoError(t, svc.ForgotPassword(context.Background(), models.ForgotPasswordRequest{Email: "a@b.co"}))

		var code string
		for _, field := range strings.Fields(mailed) {
			field = strings.TrimSuffix(field, ".")
			if len(field) == 6 && strings.Trim(field, "0123456789") == "" {
				code = field
			}
		}
		require.NotEmpty(t, code)
		require.True(t, authentication.VerifyPassword(code, storedHash))
	})

	t.Run("mail failure", func(t *testing.T) {
		svc, deps := newUserService(t)
		user := &models.User{ID: primitive.NewObjectID(), Email: "a@b.co"}
		deps.users.EXPECT().FindByEmail(gomock.Any(), "a@b.co").Return(user, nil)
		deps.users.EXPECT().SetResetCode(gomock.Any(), user.ID, gomock.Any(), gomock.Any()).Return(nil)
		deps.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		err := svc.ForgotPassword(context.Background(), models.ForgotPasswordRequest{Email: "a@b.co"})
		require.ErrorIs(t, err, services.ErrUpstream)
	})
}

func TestUserService_ResetPassword(t *testing.T) {
	future := time.Now().Add(10 * time.Minute)
	past := time.Now().Add(-time.Minute)
	code := hashed(t, "123456")

	tests := []struct {
		name    string
		user    *models.User
		code    string
		wantErr error
	}{
		{name: "valid code", user: &models.User{ResetCode: code, ResetExpires: &future}, code: "123456"},
		{name: "wrong code", user: &models.User{ResetCode: code, ResetExpires: &future}, code: "654321", wantErr: services.ErrInvalidResetCode},
		{name: "expired code", user: &models.User{ResetCode: code, ResetExpires: &past}, code: "123456", wantErr: services.ErrInvalidResetCode},
		{name: "no code requested", user: &models.User{}, code: "123456", wantErr: services.ErrInvalidResetCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newUserService(t)
			tt.user.ID = primitive.NewObjectID()
			deps.users.EXPECT().FindByEmail(gomock.Any(), "a@b.co").Return(tt.user, nil)
			if tt.wantErr == nil {
				deps.users.EXPECT().
					SetPassword(gomock.Any(), tt.user.ID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ primitive.ObjectID, hash string) error {
						require.True(t, authentication.VerifyPassword("newpass", hash))
						return nil
					})
			}

			err := svc.ResetPassword(context.Background(), models.ResetPasswordRequest{
				Email: "a@b.co", Code: tt.code, Password: "newpass",
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUserService_ChangePassword(t *testing.T) {
	svc, deps := newUserService(t)
	id := primitive.NewObjectID()
	deps.users.EXPECT().FindByID(gomock.Any(), id).Return(&models.User{ID: id, Password: hashed(t, "old123")}, nil).Times(2)
	deps.users.EXPECT().SetPassword(gomock.Any(), id, gomock.Any()).Return(nil)

	err := svc.ChangePassword(context.Background(), id, models.PasswordChange{OldPassword: "bad", NewPassword: "new123"})
	require.ErrorIs(t, err, services.ErrWrongPassword)

	err = svc.ChangePassword(context.Background(), id, models.PasswordChange{OldPassword: "old123", NewPassword: "new123"})
	require.NoError(t, err)
}

func TestUserService_Presence(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("no device", func(t *testing.T) {
		svc, deps := newUserService(t)
		deps.users.EXPECT().FindByID(gomock.Any(), id).Return(&models.User{ID: id}, nil)

		_, err := svc.Presence(context.Background(), id)
		require.ErrorIs(t, err, services.ErrNoDevice)
	})

	t.Run("service failure", func(t *testing.T) {
		svc, deps := newUserService(t)
		deps.users.EXPECT().FindByID(gomock.Any(), id).Return(&models.User{ID: id, DeviceID: "dev-1"}, nil)
		deps.presence.EXPECT().Status(gomock.Any(), "dev-1").Return(nil, errors.New("timeout"))

		_, err := svc.Presence(context.Background(), id)
		require.ErrorIs(t, err, services.ErrUpstream)
	})

	t.Run("online", func(t *testing.T) {
		svc, deps := newUserService(t)
		deps.users.EXPECT().FindByID(gomock.Any(), id).Return(&models.User{ID: id, DeviceID: "dev-1"}, nil)
		deps.presence.EXPECT().Status(gomock.Any(), "dev-1").Return(&models.PresenceStatus{DeviceID: "dev-1", Online: true}, nil)

		status, err := svc.Presence(context.Background(), id)
		require.NoError(t, err)
		require.True(t, status.Online)
	})
}

func TestUserService_EnsureAdmin(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		svc, _ := newUserService(t)
		require.NoError(t, svc.EnsureAdmin(context.Background(), "", ""))
	})

	t.Run("already present", func(t *testing.T) {
		svc, deps := newUserService(t)
		deps.users.EXPECT().FindByEmail(gomock.Any(), "root@b.co").Return(&models.User{}, nil)
		require.NoError(t, svc.EnsureAdmin(context.Background(), "root@b.co", "pw"))
	})

	t.Run("created", func(t *testing.T) {
		svc, deps := newUserService(t)
		deps.users.EXPECT().FindByEmail(gomock.Any(), "root@b.co").Return(nil, mongo.ErrNoDocuments)
		deps.users.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *models.User) error {
				require.Equal(t, models.RoleAdmin, user.Role)
				require.True(t, authentication.VerifyPassword("pw", user.Password))
				return nil
			})
		require.NoError(t, svc.EnsureAdmin(context.Background(), "Root@b.co", "pw"))
	})
}
