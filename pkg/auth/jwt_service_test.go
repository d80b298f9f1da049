package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentbridge/pkg/config"
)

func testJWTService(ttl time.Duration) *JWTService {
	return NewJWTServiceFromConfig(&config.JWTConfig{
		SecretKey:      "test-secret-key-that-is-long-enough!",
		AccessTokenTTL: ttl,
		Issuer:         "talentbridge-test",
	})
}

func TestJWTRoundTrip(t *testing.T) {
	svc := testJWTService(time.Hour)

	token, err := svc.GenerateAccessToken(&Recruiter{
		ID:            42,
		ExecutiveCode: "EMP01",
		Name:          "Asha",
		Email:         "asha@example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.RecruiterID)
	assert.Equal(t, "EMP01", claims.ExecutiveCode)
	assert.Equal(t, "Asha", claims.Name)
	assert.Equal(t, "asha@example.com", claims.Email)
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	svc := testJWTService(-time.Minute)

	token, err := svc.GenerateAccessToken(&Recruiter{ID: 1, ExecutiveCode: "EMP01"})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTRejectsForeignSignature(t *testing.T) {
	svc := testJWTService(time.Hour)
	other := NewJWTServiceFromConfig(&config.JWTConfig{
		SecretKey:      "a-completely-different-signing-secret",
		AccessTokenTTL: time.Hour,
		Issuer:         "talentbridge-test",
	})

	token, err := other.GenerateAccessToken(&Recruiter{ID: 1, ExecutiveCode: "EMP01"})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	svc := testJWTService(time.Hour)

	_, err := svc.ValidateAccessToken("not.a.jwt")
	assert.Error(t, err)
}
