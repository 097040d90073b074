// Command seed wipes and reseeds the database with demo data: a handful of
// users, 30-day programs with a first-day activity each, enrollments
// staggered over the past week, and a few completions.
package main

import (
	"log"
	"time"

	"github.com/prodigylabs/programs-api/internal/calendar"
	"github.com/prodigylabs/programs-api/internal/config"
	"github.com/prodigylabs/programs-api/internal/database"
	"github.com/prodigylabs/programs-api/internal/models"
)

func main() {
	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Clear existing data, children first
	for _, model := range []interface{}{
		&models.UserActivityCompletion{},
		&models.UserProgress{},
		&models.Activity{},
		&models.Program{},
		&models.User{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			log.Fatalf("Failed to clear table: %v", err)
		}
	}

	usersData := []struct {
		Username string
		Email    string
	}{
		{"alice.smith", "alice.smith@example.com"},
		{"bob.johnson", "bob.johnson@example.com"},
		{"charlie.lee", "charlie.lee@example.com"},
		{"diana.king", "diana.king@example.com"},
		{"ethan.wright", "ethan.wright@example.com"},
		{"fiona.scott", "fiona.scott@example.com"},
		{"george.martin", "george.martin@example.com"},
	}

	users := make([]models.User, len(usersData))
	for i, u := range usersData {
		users[i] = models.User{Username: u.Username, Email: u.Email}
	}
	if err := db.Create(&users).Error; err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	programsData := []struct {
		Name        string
		Description string
	}{
		{"Mindful Meditation", "A 30-day journey to mindfulness and relaxation."},
		{"30-Day Fitness Challenge", "Daily exercises to boost your fitness."},
		{"Daily Reading Habit", "Build a habit of reading every day."},
		{"Healthy Eating Plan", "Simple steps to improve your diet."},
		{"Stress Relief Journey", "Techniques to reduce stress."},
		{"Morning Productivity Boost", "Start your day energized and focused."},
		{"Self-Confidence Builder", "Activities to build your confidence."},
	}

	programs := make([]models.Program, len(programsData))
	for i, p := range programsData {
		programs[i] = models.Program{Name: p.Name, Description: p.Description, DurationDays: 30}
	}
	if err := db.Create(&programs).Error; err != nil {
		log.Fatalf("Failed to seed programs: %v", err)
	}

	activitiesData := []struct {
		Title       string
		Description string
		Category    string
	}{
		{"Mindful Breathing", "Focus on your breath for 5 minutes.", "Mindfulness"},
		{"Jumping Jacks", "Do jumping jacks for 5 minutes.", "Exercise"},
		{"Read a Chapter", "Read one chapter from a book.", "Reading"},
		{"Eat a Salad", "Include a fresh salad in your meal.", "Nutrition"},
		{"Deep Relaxation", "Spend 5 minutes relaxing your muscles.", "Relaxation"},
		{"Plan Your Day", "Make a to-do list for the day.", "Productivity"},
		{"Positive Affirmations", "Repeat three affirmations out loud.", "Confidence"},
	}

	activities := make([]models.Activity, len(activitiesData))
	for i, a := range activitiesData {
		activities[i] = models.Activity{
			ProgramID:       programs[i].ID,
			Title:           a.Title,
			Description:     a.Description,
			DayNumber:       1,
			DurationMinutes: 5,
			Category:        a.Category,
		}
	}
	if err := db.Create(&activities).Error; err != nil {
		log.Fatalf("Failed to seed activities: %v", err)
	}

	// Enroll each user in the matching program, staggered start dates
	today := calendar.Midnight(time.Now())
	enrollments := make([]models.UserProgress, len(users))
	for i := range users {
		enrollments[i] = models.UserProgress{
			UserID:     users[i].ID,
			ProgramID:  programs[i].ID,
			StartDate:  today.AddDate(0, 0, -i),
			CurrentDay: i + 1,
			IsActive:   true,
		}
	}
	if err := db.Create(&enrollments).Error; err != nil {
		log.Fatalf("Failed to seed enrollments: %v", err)
	}

	// First three users completed their day-1 activity on its date
	completions := make([]models.UserActivityCompletion, 0, 3)
	for i := 0; i < 3; i++ {
		completions = append(completions, models.UserActivityCompletion{
			UserID:         users[i].ID,
			ActivityID:     activities[i].ID,
			CompletionDate: enrollments[i].StartDate,
		})
	}
	if err := db.Create(&completions).Error; err != nil {
		log.Fatalf("Failed to seed completions: %v", err)
	}

	log.Printf("Seeded %d users, %d programs, %d activities, %d enrollments, %d completions",
		len(users), len(programs), len(activities), len(enrollments), len(completions))
}
