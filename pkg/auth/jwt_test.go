package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
)

const testSecret = "test-secret-0123456789"

func TestJWTService_RoundTrip(t *testing.T) {
	svc, err := NewJWTService(testSecret, 1, "master-quiz")
	require.NoError(t, err)

	token, err := svc.GenerateToken(&entity.User{ID: 7, Email: "a@b.c", Role: entity.RoleAdmin})
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, "master-quiz", claims.Issuer)
}

func TestJWTService_Expired(t *testing.T) {
	svc, err := NewJWTService(testSecret, 1, "")
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.GenerateToken(&entity.User{ID: 1})
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testSecret, 1, "")
	require.NoError(t, err)
	verifier, err := NewJWTService("another-secret-987654321", 1, "")
	require.NoError(t, err)

	token, err := issuer.GenerateToken(&entity.User{ID: 1})
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc, err := NewJWTService(testSecret, 1, "")
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &JWTCustomClaims{UserID: 1, Role: entity.RoleAdmin})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTService_ShortSecret(t *testing.T) {
	_, err := NewJWTService("short", 1, "")
	assert.Error(t, err)
}
