package models

import "time"

type UserProgress struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	UserID     uint64    `gorm:"not null;index" json:"user_id"`
	ProgramID  uint64    `gorm:"not null;index" json:"program_id"`
	StartDate  time.Time `gorm:"not null" json:"start_date"`
	CurrentDay int       `gorm:"not null;default:1" json:"current_day"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`

	// Relations
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Program Program `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
}

// TableName keeps the singular table name instead of GORM's pluralization.
func (UserProgress) TableName() string {
	return "user_progress"
}
