package models

import "time"

// User owns moto listings. Accounts come from local registration or from the
// GitHub OAuth exchange; OAuth accounts have no password.
type User struct {
	ID            string    `json:"id" gorm:"primaryKey;size:191"`
	Name          string    `json:"name" gorm:"not null;size:255"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password      string    `json:"-" gorm:"size:255"`
	Provider      string    `json:"provider" gorm:"size:20;default:'local'"`
	EmailVerified bool      `json:"email_verified" gorm:"default:false"`
	Avatar        *string   `json:"avatar" gorm:"size:500"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Motos []Moto `json:"motos,omitempty" gorm:"foreignKey:UserID"`
}

// MotoOwner is the minimal owner shape attached to public listings.
type MotoOwner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Owner returns the public-facing owner info for this user.
func (u User) Owner() MotoOwner {
	return MotoOwner{Name: u.Name, Email: u.Email}
}
