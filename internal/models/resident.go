package models

import (
	"time"
)

// Resident is an account holder scoped to an apartment
type Resident struct {
	ID          uint           `gorm:"primaryKey;autoIncrement"`
	Username    string         `gorm:"uniqueIndex;size:150;not null"`
	Password    string         `gorm:"size:128;not null"`
	FirstName   string         `gorm:"size:150"`
	LastName    string         `gorm:"size:150"`
	Email       string         `gorm:"size:254"`
	ApartmentNo string         `gorm:"size:20"`
	PhoneNumber string         `gorm:"size:15"`
	Role        Role           `gorm:"size:20;not null"`
	Status      ResidentStatus `gorm:"size:10;not null;default:active"`
	DateJoined  time.Time      `gorm:"autoCreateTime"`
}

// AuthToken is the single reusable bearer credential of a resident
type AuthToken struct {
	Key        string    `gorm:"primaryKey;size:40"`
	ResidentID uint      `gorm:"uniqueIndex;not null"`
	Resident   *Resident `gorm:"foreignKey:ResidentID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
}

// TableName overrides the table name for Resident
func (Resident) TableName() string {
	return "residents"
}

// TableName overrides the table name for AuthToken
func (AuthToken) TableName() string {
	return "auth_tokens"
}
