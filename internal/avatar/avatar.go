// Package avatar derives gravatar URLs from email addresses. Derivation is
// pure: the same email always yields the same URL and no network call is
// made. URLs are computed once at registration and stored.
package avatar

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strings"
)

const baseURL = "https://www.gravatar.com/avatar/"

// URL returns the gravatar URL for an email. The gravatar protocol hashes
// the trimmed, lowercased address; identity lookups elsewhere stay
// case-sensitive.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))

	query := url.Values{}
	query.Set("s", "200")
	query.Set("r", "pg")
	query.Set("d", "mm")

	return baseURL + hex.EncodeToString(sum[:]) + "?" + query.Encode()
}
