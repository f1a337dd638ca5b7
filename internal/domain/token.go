package domain

import "time"

// TokenClaims represents the claims carried by a HealthTrack access token
type TokenClaims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Issuer   string `json:"iss"`
	Exp      int64  `json:"exp"`
	Iat      int64  `json:"iat"`
}

// IsExpired checks if the token is expired
func (tc TokenClaims) IsExpired() bool {
	return time.Now().Unix() > tc.Exp
}

// ExpiresAt returns the expiry as time, zero when the claim is missing
func (tc TokenClaims) ExpiresAt() time.Time {
	if tc.Exp == 0 {
		return time.Time{}
	}
	return time.Unix(tc.Exp, 0)
}
