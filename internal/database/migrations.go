package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// AddIndexes adds the lookup indexes the plan queries depend on.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Day-plan lookup: activities for a program on a given day
		{"activities", "idx_activities_program_day", "program_id, day_number"},

		// Active-enrollment lookup
		{"user_progress", "idx_user_progress_user_program_active", "user_id, program_id, is_active"},

		// Completion window scans
		{"user_activity_completions", "idx_completions_user_date", "user_id, completion_date"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("Created index %s on %s(%s)", idx.name, idx.table, idx.columns)
	}

	return nil
}
