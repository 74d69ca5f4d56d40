package services

import (
	"context"
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/simhonchourasia/playbet-be/authentication"
	"github.com/simhonchourasia/playbet-be/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	resetCodeTTL      = 15 * time.Minute
	referCodeAttempts = 3
)

type UserService struct {
	users     UserStore
	withdraws WithdrawStore
	settings  *SettingsService
	tokens    *authentication.TokenManager
	mailer    Mailer
	presence  PresenceChecker
	log       logrus.FieldLogger
	now       func() time.Time
}

func NewUserService(
	users UserStore,
	withdraws WithdrawStore,
	settings *SettingsService,
	tokens *authentication.TokenManager,
	mailer Mailer,
	presence PresenceChecker,
	log logrus.FieldLogger,
) *UserService {
	return &UserService{
		users:     users,
		withdraws: withdraws,
		settings:  settings,
		tokens:    tokens,
		mailer:    mailer,
		presence:  presence,
		log:       log.WithField("component", "users"),
		now:       time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func newReferCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func newResetCode() string {
	u := uuid.New()
	return fmt.Sprintf("%06d", binary.BigEndian.Uint32(u[:4])%1000000)
}

func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !isNotFound(err) {
		return nil, err
	}

	bonus, err := s.settings.Bonus(ctx)
	if err != nil {
		return nil, err
	}

	var referrer *models.User
	if code := strings.ToUpper(strings.TrimSpace(req.ReferCode)); code != "" {
		referrer, err = s.users.FindByReferCode(ctx, code)
		if isNotFound(err) {
			s.log.WithField("referCode", code).Info("signup with unknown refer code")
			referrer = nil
		} else if err != nil {
			return nil, err
		}
	}

	hash, err := authentication.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	user := &models.User{
		ID:        primitive.NewObjectID(),
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		Password:  hash,
		Role:      models.RoleUser,
		Balance:   roundAmount(bonus.WelcomeBonus),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if referrer != nil {
		user.ReferredBy = &referrer.ID
	}
	if err := s.insertWithReferCode(ctx, user); err != nil {
		return nil, err
	}

	if referrer != nil && bonus.ReferBonus > 0 {
		if err := s.users.CreditReferral(ctx, referrer.ID, roundAmount(bonus.ReferBonus)); err != nil {
			s.log.WithError(err).WithField("referrer", referrer.ID.Hex()).Error("refer bonus not credited")
		}
	}

	return s.authResponse(user)
}

// insertWithReferCode retries on a refer code collision; a duplicate email wins over retrying.
func (s *UserService) insertWithReferCode(ctx context.Context, user *models.User) error {
	for attempt := 0; attempt < referCodeAttempts; attempt++ {
		user.ReferCode = newReferCode()
		err := s.users.Create(ctx, user)
		if err == nil {
			return nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return err
		}
		if _, findErr := s.users.FindByEmail(ctx, user.Email); findErr == nil {
			return ErrEmailTaken
		}
	}
	return fmt.Errorf("could not allocate a refer code after %d attempts", referCodeAttempts)
}

func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(req.Email))
	if isNotFound(err) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !authentication.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	if user.Blocked {
		return nil, ErrBlocked
	}
	return s.authResponse(user)
}

func (s *UserService) authResponse(user *models.User) (*models.AuthResponse, error) {
	token, err := s.tokens.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return user, nil
}

// Profile reports the balance alongside what pending withdrawals already hold back.
func (s *UserService) Profile(ctx context.Context, id primitive.ObjectID) (*models.UserProfile, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	pending, err := s.withdraws.PendingTotal(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.UserProfile{
		User:             *user,
		PendingWithdraw:  roundAmount(pending),
		AvailableBalance: subAmount(user.Balance, pending),
	}, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, req models.ProfileUpdate) (*models.User, error) {
	user, err := s.users.Update(ctx, id, models.UserUpdate{
		Name:     req.Name,
		Phone:    req.Phone,
		DeviceID: req.DeviceID,
	})
	if err != nil {
		return nil, notFound(err)
	}
	return user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, id primitive.ObjectID, req models.PasswordChange) error {
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !authentication.VerifyPassword(req.OldPassword, user.Password) {
		return ErrWrongPassword
	}
	hash, err := authentication.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return notFound(s.users.SetPassword(ctx, id, hash))
}

// ForgotPassword mails a reset code. Unknown emails succeed silently.
func (s *UserService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	email := normalizeEmail(req.Email)
	user, err := s.users.FindByEmail(ctx, email)
	if isNotFound(err) {
		s.log.WithField("email", email).Info("password reset for unknown email")
		return nil
	}
	if err != nil {
		return err
	}

	code := newResetCode()
	hash, err := authentication.HashPassword(code)
	if err != nil {
		return err
	}
	if err := s.users.SetResetCode(ctx, user.ID, hash, s.now().UTC().Add(resetCodeTTL)); err != nil {
		return notFound(err)
	}

	body := fmt.Sprintf("Hello %s,\n\nYour password reset code is %s. It expires in %d minutes.\n",
		user.Name, code, int(resetCodeTTL.Minutes()))
	if err := s.mailer.Send(ctx, user.Email, "Password reset code", body); err != nil {
		s.log.WithError(err).WithField("user", user.ID.Hex()).Error("reset mail not sent")
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return nil
}

func (s *UserService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(req.Email))
	if isNotFound(err) {
		return ErrInvalidResetCode
	}
	if err != nil {
		return err
	}
	if user.ResetCode == "" || user.ResetExpires == nil || s.now().After(*user.ResetExpires) {
		return ErrInvalidResetCode
	}
	if !authentication.VerifyPassword(req.Code, user.ResetCode) {
		return ErrInvalidResetCode
	}
	hash, err := authentication.HashPassword(req.Password)
	if err != nil {
		return err
	}
	return notFound(s.users.SetPassword(ctx, user.ID, hash))
}

func (s *UserService) Referrals(ctx context.Context, id primitive.ObjectID) ([]models.User, error) {
	return s.users.ListReferred(ctx, id)
}

func (s *UserService) List(ctx context.Context, filter models.UserFilter) ([]models.User, int64, error) {
	return s.users.List(ctx, filter)
}

// AdminUpdate refuses to set a balance below what pending withdrawals still need.
func (s *UserService) AdminUpdate(ctx context.Context, id primitive.ObjectID, req models.AdminUserUpdate) (*models.User, error) {
	update := models.UserUpdate{Role: req.Role, Blocked: req.Blocked}
	if req.Balance != nil {
		pending, err := s.withdraws.PendingTotal(ctx, id)
		if err != nil {
			return nil, err
		}
		if exceeds(pending, *req.Balance) {
			return nil, ErrBalanceBelowPending
		}
		balance := roundAmount(*req.Balance)
		update.Balance = &balance
	}
	user, err := s.users.Update(ctx, id, update)
	if err != nil {
		return nil, notFound(err)
	}
	s.log.WithFields(logrus.Fields{"user": id.Hex(), "balanceSet": req.Balance != nil}).Info("user updated by admin")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return notFound(s.users.Delete(ctx, id))
}

func (s *UserService) Presence(ctx context.Context, id primitive.ObjectID) (*models.PresenceStatus, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.DeviceID == "" {
		return nil, ErrNoDevice
	}
	status, err := s.presence.Status(ctx, user.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return status, nil
}

// EnsureAdmin creates the bootstrap admin account when it does not exist yet.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !isNotFound(err) {
		return err
	}
	hash, err := authentication.HashPassword(password)
	if err != nil {
		return err
	}
	now := s.now().UTC()
	admin := &models.User{
		ID:        primitive.NewObjectID(),
		Name:      "Administrator",
		Email:     email,
		Password:  hash,
		Role:      models.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.insertWithReferCode(ctx, admin); err != nil {
		return err
	}
	s.log.WithField("email", email).Info("bootstrap admin created")
	return nil
}

func (s *UserService) CleanupResetCodes(ctx context.Context) (int64, error) {
	return s.users.ClearExpiredResetCodes(ctx, s.now().UTC())
}
