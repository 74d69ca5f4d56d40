package authentication

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/simhonchourasia/playbet-be/models"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	token, err := tm.GenerateToken("64b7f0c2a1b2c3d4e5f60718", models.RoleAdmin)
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "64b7f0c2a1b2c3d4e5f60718", claims.UserID)
	require.Equal(t, models.RoleAdmin, claims.Role)
}

func TestTokenManager_Rejects(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	token, err := tm.GenerateToken("user-1", models.RoleUser)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewTokenManager("other", time.Hour).ValidateToken(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tm.ValidateToken("not.a.token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		old := NewTokenManager("secret", time.Minute)
		old.now = func() time.Time { return time.Now().Add(-time.Hour) }
		expired, err := old.GenerateToken("user-1", models.RoleUser)
		require.NoError(t, err)

		_, err = tm.ValidateToken(expired)
		require.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &SignedDetails{
			UserID:         "user-1",
			StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()},
		})
		raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = tm.ValidateToken(raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", hash)
	require.True(t, VerifyPassword("hunter22", hash))
	require.False(t, VerifyPassword("hunter23", hash))
}
