package models

import "time"

type User struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Address   *string   `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Progress    []UserProgress           `gorm:"foreignKey:UserID" json:"-"`
	Completions []UserActivityCompletion `gorm:"foreignKey:UserID" json:"-"`
}
