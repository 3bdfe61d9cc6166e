package domain

import "time"

// Identity is the durable record for a registered user. Email is the lookup
// key and is unique; comparisons are case-sensitive byte comparisons, so
// "A@x.com" and "a@x.com" are distinct identities.
type Identity struct {
	ID           string
	Name         string
	Email        string
	AvatarURL    string
	PasswordHash string
	CreatedAt    time.Time
}
