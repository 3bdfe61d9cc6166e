package auth_test

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/auth-service/internal/auth"
)

const testSecret = "test-secret"

func TestIssueAndParseRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager(testSecret, 3600)

	token, expiresAt, err := tm.Issue("id-1", "Ann", "https://www.gravatar.com/avatar/x")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "id-1", claims.ID)
	require.Equal(t, "Ann", claims.Name)
	require.Equal(t, "https://www.gravatar.com/avatar/x", claims.Avatar)
	require.Equal(t, "id-1", claims.Subject)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	claims := &auth.IdentityClaims{
		ID:   "id-1",
		Name: "Ann",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "id-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tm := auth.NewTokenManager(testSecret, 3600)
	_, err = tm.Parse(signed)
	require.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, _, err := auth.NewTokenManager("other-secret", 3600).Issue("id-1", "Ann", "")
	require.NoError(t, err)

	_, err = auth.NewTokenManager(testSecret, 3600).Parse(token)
	require.Error(t, err)
}

func TestParseRejectsMalformedToken(t *testing.T) {
	tm := auth.NewTokenManager(testSecret, 3600)
	for _, garbage := range []string{"", "not.a.token", "abc"} {
		_, err := tm.Parse(garbage)
		require.Error(t, err)
	}
}

func TestParseRejectsWrongSigningMethod(t *testing.T) {
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &auth.IdentityClaims{ID: "id-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = auth.NewTokenManager(testSecret, 3600).Parse(unsigned)
	require.Error(t, err)
}

func TestTTLDefaultsToOneHour(t *testing.T) {
	require.Equal(t, time.Hour, auth.NewTokenManager(testSecret, 0).TTL())
	require.Equal(t, 90*time.Second, auth.NewTokenManager(testSecret, 90).TTL())
}
