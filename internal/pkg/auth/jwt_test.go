package auth

import (
	"testing"
	"time"

	"github.com/rajank18/prograde/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "prograde.test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:    42,
		Email: "prof@x.edu",
		Role:  models.RoleFaculty,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := testService(time.Hour)

	token, expiresIn, err := service.GenerateToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, 3600, expiresIn)

	claims, err := service.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "prof@x.edu", claims.Email)
	assert.Equal(t, "faculty", claims.Role)
	assert.Equal(t, "prograde.test", claims.Issuer)
}

func TestValidateTokenExpired(t *testing.T) {
	service := testService(-time.Minute)

	token, _, err := service.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = service.ValidateAndExtractClaims(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := testService(time.Hour).GenerateToken(testUser())
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "prograde.test",
	})

	_, err = other.ValidateAndExtractClaims(token)
	assert.Error(t, err)
}

func TestValidateAndExtractClaimsEmpty(t *testing.T) {
	_, err := testService(time.Hour).ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("abc.def.ghi")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
