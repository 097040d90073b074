package models

import "time"

// UserActivityCompletion records that a user performed an activity on a
// specific calendar date. CompletionDate is normalized to midnight UTC so the
// composite unique index holds one row per (user, activity, day).
type UserActivityCompletion struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	UserID         uint64    `gorm:"not null;uniqueIndex:idx_completions_user_activity_date" json:"user_id"`
	ActivityID     uint64    `gorm:"not null;uniqueIndex:idx_completions_user_activity_date" json:"activity_id"`
	CompletedAt    time.Time `gorm:"autoCreateTime" json:"completed_at"`
	CompletionDate time.Time `gorm:"not null;uniqueIndex:idx_completions_user_activity_date" json:"completion_date"`

	// Relations
	User     User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Activity Activity `gorm:"foreignKey:ActivityID" json:"activity,omitempty"`
}
