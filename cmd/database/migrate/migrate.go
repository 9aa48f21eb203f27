package migration

import (
	"Punto-Donativo-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Donor{}); err != nil {
		log.Fatalf("Error migrating donor database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DonationPoint{}); err != nil {
		log.Fatalf("Error migrating donation point database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Campaign{}); err != nil {
		log.Fatalf("Error migrating campaign database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CampaignDonor{}); err != nil {
		log.Fatalf("Error migrating campaign donor database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Donation{}); err != nil {
		log.Fatalf("Error migrating donation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
