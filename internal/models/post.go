// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Distance units accepted for a run.
const (
	UnitMiles      = "mi"
	UnitKilometers = "km"
	UnitMeters     = "m"
	UnitYards      = "yd"
)

// Run types accepted for a post.
const (
	RunTypeRace    = "race"
	RunTypeWorkout = "workout"
)

// Privacy levels. Informational only; not enforced server-side.
const (
	PrivacyPublic  = "public"
	PrivacyFriends = "friends"
	PrivacyPrivate = "private"
)

// Post represents a single tracked run owned by a user.
// The owner is always the authenticated identity, never a body field.
// Date and Time are stored as the client submits them ("2006-01-02" and
// "15:04"); derived values such as pace are computed by clients at render
// time and never persisted.
type Post struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	Title           string   `gorm:"not null" json:"title"`
	DistanceValue   float64  `gorm:"not null" json:"distanceValue"`
	DistanceUnit    string   `gorm:"not null" json:"distanceUnit"`
	DurationHours   int      `gorm:"not null" json:"durationHours"`
	DurationMinutes int      `gorm:"not null" json:"durationMinutes"`
	DurationSeconds int      `gorm:"not null" json:"durationSeconds"`
	RunType         string   `gorm:"not null" json:"runType"`
	Date            string   `gorm:"not null" json:"date"`
	Time            string   `gorm:"not null" json:"time"`
	Description     string   `gorm:"type:text;not null" json:"description"`
	Privacy         string   `gorm:"default:public" json:"privacy"`
	UserID          uint     `gorm:"not null;index" json:"user_id"`
	User            User     `gorm:"foreignKey:UserID" json:"user"`
	Upvotes         []Upvote `gorm:"foreignKey:PostID" json:"upvotes"`
	// UpvoteCount is not persisted; computed at query time
	UpvoteCount int       `gorm:"->" json:"upvoteCount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
