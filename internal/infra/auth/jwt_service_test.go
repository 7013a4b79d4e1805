package auth

import (
	"testing"
	"time"

	"vexor/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func newTestService(t *testing.T) *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_ValidateToken(t *testing.T) {
	service := newTestService(t)
	subject := uuid.New().String()

	signed := signTestToken(t, testSecret, jwt.MapClaims{
		"sub":   subject,
		"roles": []string{"customer"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	token, err := service.ValidateToken(signed, testSecret)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, subject, claims["sub"])
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	service := newTestService(t)

	signed := signTestToken(t, "some-other-secret", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := service.ValidateToken(signed, testSecret)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	service := newTestService(t)

	signed := signTestToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := service.ValidateToken(signed, testSecret)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_RejectsNonHMAC(t *testing.T) {
	service := newTestService(t)

	// alg=none tokens must never validate.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.New().String(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.ValidateToken(signed, testSecret)
	assert.Error(t, err)
}
