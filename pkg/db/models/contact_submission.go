package models

import "time"

// ContactSubmission is a lead captured by the public contact form.
// Rows are append-only from the public side; only IsRead changes afterwards.
type ContactSubmission struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"type:text;not null" json:"name"`
	Phone           string    `gorm:"type:text;not null" json:"phone"`
	ShiftPreference string    `gorm:"type:text;not null;default:''" json:"shift_preference"`
	Message         string    `gorm:"type:text;not null;default:''" json:"message"`
	IsRead          bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt       time.Time `json:"created_at"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
