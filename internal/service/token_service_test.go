package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edugest/edugest-api/internal/models"
	appErrors "github.com/edugest/edugest-api/pkg/errors"
)

func newTestTokenService(now *time.Time) *TokenService {
	svc := NewTokenService(TokenConfig{Secret: "test-secret", Expiration: 8 * time.Hour})
	svc.now = func() time.Time { return *now }
	return svc
}

func TestTokenServiceRoundTrip(t *testing.T) {
	now := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)
	svc := newTestTokenService(&now)

	token, err := svc.Issue(models.UserInfo{ID: 7, Email: "admin@demo.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "admin@demo.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.True(t, now.Add(8*time.Hour).Equal(claims.ExpiresAt.Time))
}

func TestTokenServiceExpiry(t *testing.T) {
	now := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)
	svc := newTestTokenService(&now)

	token, err := svc.Issue(models.UserInfo{ID: 1, Email: "a@b.pt", Role: models.RoleAdmin})
	require.NoError(t, err)

	now = now.Add(8*time.Hour - time.Second)
	_, err = svc.Verify(token)
	require.NoError(t, err)

	now = now.Add(2 * time.Second)
	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
	assert.Equal(t, "Token inválido", appErrors.FromError(err).Message)
}

func TestTokenServiceRejectsForeignSignatures(t *testing.T) {
	now := time.Now()
	svc := newTestTokenService(&now)

	other := NewTokenService(TokenConfig{Secret: "another-secret"})
	token, err := other.Issue(models.UserInfo{ID: 1, Email: "a@b.pt", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)

	_, err = svc.Verify("not-a-token")
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestTokenServiceRejectsOtherAlgorithms(t *testing.T) {
	now := time.Now()
	svc := newTestTokenService(&now)

	claims := &models.JWTClaims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.Verify(unsigned)
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}
