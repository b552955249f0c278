package main

import (
	"log"
	"os"

	"estateflow-be/internal/constant"
	"estateflow-be/internal/model"
	"estateflow-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding default data...")

	seedSystemPrompts(db)
	seedSubscriptionPlans(db)

	color.Green("✅ Success: Seeding completed.")
}

func seedSystemPrompts(db *gorm.DB) {
	color.Yellow("Seeding system prompts...")

	prompts := []model.SystemPrompt{
		{
			Name:      constant.SystemPromptRenterBuyer,
			Content:   constant.RenterBuyerPromptContent,
			IsDefault: true,
		},
		{
			Name:      constant.SystemPromptSellerAgency,
			Content:   constant.SellerAgencyPromptContent,
			IsDefault: true,
		},
	}

	for _, prompt := range prompts {
		// Re-running the seeder refreshes the content of existing prompts.
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "is_default"}),
		}).Create(&prompt).Error
		if err != nil {
			log.Printf("Warn: Failed to seed prompt %q: %v", prompt.Name, err)
		}
	}
}

func seedSubscriptionPlans(db *gorm.DB) {
	color.Yellow("Seeding subscription plans...")

	plans := []model.SubscriptionPlan{
		{
			Name:         "Agency Monthly",
			Description:  "Agency account with an extended listing quota, billed monthly.",
			Price:        49.99,
			Currency:     "USD",
			DurationDays: 30,
		},
		{
			Name:         "Agency Yearly",
			Description:  "Agency account with an extended listing quota, billed yearly.",
			Price:        499.00,
			Currency:     "USD",
			DurationDays: 365,
		},
	}

	for _, plan := range plans {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"description", "price", "currency", "duration_days"}),
		}).Create(&plan).Error
		if err != nil {
			log.Printf("Warn: Failed to seed plan %q: %v", plan.Name, err)
		}
	}
}
