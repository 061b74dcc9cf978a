package domain

import "time"

// User represents a registered user of the platform.
type User struct {
	UserID       string    `json:"userID"` // Primary Key (UUID)
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"` // Unique across all users
	PhoneNumber  string    `json:"phoneNumber"`
	DOB          string    `json:"dob"`
	PasswordHash string    `json:"-"` // Never serialized
	// Preferences is the ordered set of topic categories driving the feed.
	Preferences []string `json:"preferences"`
	// BlockedArticles holds article ids permanently excluded from this user's feed.
	BlockedArticles []string  `json:"blockedArticles"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
