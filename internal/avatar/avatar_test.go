package avatar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/auth-service/internal/avatar"
)

func TestURLKnownVector(t *testing.T) {
	require.Equal(t,
		"https://www.gravatar.com/avatar/743173788aa9166801df2e18f0e7ff24?d=mm&r=pg&s=200",
		avatar.URL("a@x.com"))
}

func TestURLDeterministic(t *testing.T) {
	require.Equal(t, avatar.URL("ann@example.com"), avatar.URL("ann@example.com"))
}

func TestURLNormalizesCaseAndWhitespace(t *testing.T) {
	base := avatar.URL("ann@example.com")
	require.Equal(t, base, avatar.URL("ANN@Example.COM"))
	require.Equal(t, base, avatar.URL("  ann@example.com  "))
}

func TestURLDiffersPerEmail(t *testing.T) {
	require.NotEqual(t, avatar.URL("a@x.com"), avatar.URL("b@x.com"))
}
