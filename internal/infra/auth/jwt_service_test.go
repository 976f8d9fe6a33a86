package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/config"
	"pulse/internal/domain/service"
)

const testSecret = "test-signing-secret"

func createTestTokenService(t *testing.T) service.TokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret
	cfg.Auth = &config.AuthConfig{AccessTokenTTLMinutes: 30}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)

	assert.Error(t, err)
}

func TestJWTService_IssueAndVerify_RoundTrip(t *testing.T) {
	svc := createTestTokenService(t)

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	svc := createTestTokenService(t)

	_, err := svc.Verify("not-a-token")

	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	svc := createTestTokenService(t)

	other := &jwtService{secret: "a-different-secret", ttl: 30 * time.Minute}
	token, err := other.Issue(42)
	require.NoError(t, err)

	_, err = svc.Verify(token)

	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc := createTestTokenService(t)

	expired := &jwtService{secret: testSecret, ttl: -time.Minute}
	token, err := expired.Issue(42)
	require.NoError(t, err)

	_, err = svc.Verify(token)

	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_Verify_ExactExpiryBoundary(t *testing.T) {
	svc := createTestTokenService(t)

	// A zero TTL sets exp to the issue instant. The token must already be
	// rejected: validity ends at exp, it does not include it.
	boundary := &jwtService{secret: testSecret, ttl: 0}
	token, err := boundary.Issue(42)
	require.NoError(t, err)

	_, err = svc.Verify(token)

	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_Verify_MissingUserIDClaim(t *testing.T) {
	svc := createTestTokenService(t)

	now := time.Now()
	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(30 * time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(token)

	assert.ErrorIs(t, err, service.ErrMissingClaim)
}

func TestJWTService_Verify_RejectsUnsignedToken(t *testing.T) {
	svc := createTestTokenService(t)

	now := time.Now()
	claims := accessClaims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(30 * time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(token)

	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_TTL(t *testing.T) {
	svc := createTestTokenService(t)

	assert.Equal(t, 30*time.Minute, svc.TTL())
}
