// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account in the Run Tracker application.
// Username is email-shaped and unique at the database level; the duplicate-key
// error on insert is what surfaces as a validation failure, there is no
// separate existence pre-check.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	DisplayName string    `gorm:"not null" json:"displayName"`
	Username    string    `gorm:"uniqueIndex;not null" json:"username"`
	Password    string    `gorm:"not null" json:"-"`
	Avatar      int       `json:"avatar"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Posts       []Post    `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// AuthUser is the password-free projection of a User embedded in JWT claims.
// It reflects the account as of token issuance, not the current DB row.
type AuthUser struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Username    string `json:"username"`
	Avatar      int    `json:"avatar"`
}

// AuthView returns the claims projection for this user.
func (u *User) AuthView() AuthUser {
	return AuthUser{
		ID:          u.ID,
		Name:        u.Name,
		DisplayName: u.DisplayName,
		Username:    u.Username,
		Avatar:      u.Avatar,
	}
}
