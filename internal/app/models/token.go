package models

import "time"

// RefreshToken is a persisted opaque token used to mint new access tokens
type RefreshToken struct {
	ID        int64     `json:"id" db:"id"`
	MemberID  int64     `json:"memberId" db:"member_id"`
	Token     string    `json:"token" db:"token"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// IsExpired reports whether the token is past its expiry
func (t *RefreshToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
