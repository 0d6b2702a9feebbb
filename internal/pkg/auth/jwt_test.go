package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims *Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims() *Claims {
	return &Claims{
		UserID:   "user_123",
		Email:    "user@example.com",
		RoleType: "STUDENT",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   "user_123",
		},
	}
}

func TestValidateTokenAcceptsValidToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: testSecret})

	claims, err := svc.ValidateToken(signToken(t, validClaims(), testSecret))

	require.NoError(t, err)
	assert.Equal(t, "user_123", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "STUDENT", claims.RoleType)
}

func TestValidateTokenFallsBackToSubject(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: testSecret})

	c := validClaims()
	c.UserID = ""

	claims, err := svc.ValidateToken(signToken(t, c, testSecret))

	require.NoError(t, err)
	assert.Equal(t, "user_123", claims.UserID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: testSecret})

	_, err := svc.ValidateToken(signToken(t, validClaims(), "other-secret"))

	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: testSecret})

	c := validClaims()
	c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	_, err := svc.ValidateToken(signToken(t, c, testSecret))

	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateAndExtractClaimsEmptyToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: testSecret})

	_, err := svc.ValidateAndExtractClaims("")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "empty header", header: "", wantErr: true},
		{name: "bearer prefix", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "raw token", header: "abc.def.ghi", want: "abc.def.ghi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
