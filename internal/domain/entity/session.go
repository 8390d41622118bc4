package entity

import (
	"time"

	"gorm.io/gorm"
)

// SessionRecord is a token+profile pair in the local session cache. The
// cache is the only durable store the application keeps; clearing a
// record forces re-authentication.
type SessionRecord struct {
	ID        uint           `gorm:"primaryKey" json:"-"`
	Token     string         `gorm:"uniqueIndex;size:512;not null" json:"-"`
	UserJSON  string         `gorm:"type:text;not null" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `gorm:"not null;index" json:"expires_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the SessionRecord model
func (SessionRecord) TableName() string {
	return "sessions"
}

// IsExpired checks whether the cached session has passed its expiry.
func (s *SessionRecord) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// User deserializes the cached profile.
func (s *SessionRecord) User() (*User, error) {
	return UnmarshalProfile(s.UserJSON)
}
