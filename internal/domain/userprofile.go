package domain

import "time"

// UserProfile holds the user's element as produced by an external
// name-numerology calculation.
type UserProfile struct {
	ID        string
	Name      string
	Element   Element
	UpdatedAt time.Time
}
