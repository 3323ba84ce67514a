package models

import "time"

// User is a screening subject with an account.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex"`
	Password  string
	FirstName string
	LastName  string
	// ReminderTime is an optional "HH:MM" UTC time at which the subject
	// wants a daily reminder to complete a screening. Empty disables it.
	ReminderTime string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
