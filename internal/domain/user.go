package domain

import "time"

// User represents a HealthTrack account
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Birthday     *time.Time `json:"birthday,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// Age returns the user's age in full years at the given moment
func (u *User) Age(now time.Time) (int, bool) {
	if u.Birthday == nil {
		return 0, false
	}
	b := *u.Birthday
	age := now.Year() - b.Year()
	if now.Month() < b.Month() || (now.Month() == b.Month() && now.Day() < b.Day()) {
		age--
	}
	return age, true
}
