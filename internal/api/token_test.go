package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electron-shaders/sc2002-proj/pkg/config"
	"github.com/electron-shaders/sc2002-proj/pkg/types"
)

func newTestTokenManager() *TokenManager {
	return NewTokenManager(config.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenTTL: 3600,
		Issuer:         "hms-core",
	})
}

func TestTokenManager_IssueAndValidate(t *testing.T) {
	tm := newTestTokenManager()

	token, err := tm.Issue("P0001", types.RolePatient)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "P0001", claims.UserID)
	assert.Equal(t, string(types.RolePatient), claims.Role)
	assert.Equal(t, "hms-core", claims.Issuer)
	assert.Equal(t, "P0001", claims.Subject)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := newTestTokenManager()
	_, err := tm.Validate("not-a-token")
	assert.Error(t, err)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	tm := newTestTokenManager()
	token, err := tm.Issue("D001", types.RoleDoctor)
	require.NoError(t, err)

	other := NewTokenManager(config.JWTConfig{SecretKey: "different-secret", AccessTokenTTL: 3600, Issuer: "hms-core"})
	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	tm := newTestTokenManager()

	claims := &Claims{
		UserID: "P0001",
		Role:   string(types.RolePatient),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			Issuer:    "hms-core",
			Subject:   "P0001",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.Validate(signed)
	assert.Error(t, err)
}

func TestTokenManager_RejectsUnexpectedSigningMethod(t *testing.T) {
	tm := newTestTokenManager()

	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "P0001"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tm.Validate(signed)
	assert.Error(t, err)
}
