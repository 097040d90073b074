package models

import "time"

type Program struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	DurationDays int       `gorm:"not null;default:30" json:"duration_days"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Activities []Activity     `gorm:"foreignKey:ProgramID" json:"activities,omitempty"`
	Progress   []UserProgress `gorm:"foreignKey:ProgramID" json:"-"`
}
