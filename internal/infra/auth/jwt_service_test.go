package auth

import (
	"testing"
	"time"

	"chime/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	svc, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKey{Access: "test-access-secret"},
	})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)

	userID := uuid.New()
	token, err := svc.GenerateAccessToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t)

	other, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKey{Access: "different-secret"},
	})
	require.NoError(t, err)

	token, err := other.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)

	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := newTestJWTService(t)

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": uuid.New().String(),
		"iat": now.Add(-2 * time.Hour).Unix(),
		"exp": now.Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(svc.accessSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)

	assert.Error(t, err)
}

func TestJWTService_ValidateToken_WrongSigningMethod(t *testing.T) {
	svc := newTestJWTService(t)

	// alg=none tokens must be rejected outright.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.New().String(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)

	assert.Error(t, err)
}

func TestJWTService_ValidateToken_MissingSubject(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(svc.accessSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "user ID missing from token")
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.ValidateToken("not.a.token")

	assert.Error(t, err)
}
