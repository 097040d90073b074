package models

type Activity struct {
	ID              uint64 `gorm:"primarykey" json:"id"`
	ProgramID       uint64 `gorm:"not null;index" json:"program_id"`
	Title           string `gorm:"type:varchar(255);not null" json:"title"`
	Description     string `gorm:"type:text" json:"description"`
	DayNumber       int    `gorm:"not null" json:"day_number"`
	DurationMinutes int    `gorm:"not null;default:5" json:"duration_minutes"`
	Category        string `gorm:"type:varchar(100)" json:"category"`

	// Relations
	Program     Program                  `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
	Completions []UserActivityCompletion `gorm:"foreignKey:ActivityID" json:"-"`
}
