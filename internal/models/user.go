package models

import "time"

// User represents application user. Authentication is out of scope;
// the API layer trusts the supplied user id.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"uid"`
	Username  string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"member_since"`
	UpdatedAt time.Time `json:"-"`
}
