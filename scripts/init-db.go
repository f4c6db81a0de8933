package main

import (
	"log"

	"colis_express/internal/config"
	"colis_express/internal/database"
	"colis_express/internal/migrations"
	"colis_express/internal/models"
	"colis_express/internal/pricing"
	"colis_express/internal/tracking"

	"gorm.io/gorm"
)

// Standalone bootstrap: migrates the schema, seeds the admin account and
// inserts a couple of sample shipments for local development.
func main() {
	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := seedSampleShipments(db); err != nil {
		log.Fatal("Failed to seed sample shipments:", err)
	}

	log.Println("Database initialized")
}

func seedSampleShipments(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Shipment{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Shipments already present, skipping sample data")
		return nil
	}

	codAmount := 250000.0
	samples := []models.Shipment{
		{
			TrackingNumber:   tracking.GenerateNumber(),
			SenderName:       "Mamadou Diallo",
			SenderPhone:      "622123456",
			SenderAddress:    "Quartier Almamya",
			SenderCity:       "Conakry",
			RecipientName:    "Fatoumata Camara",
			RecipientPhone:   "661234567",
			RecipientAddress: "Centre ville",
			RecipientCity:    "Kindia",
			WeightKg:         2.5,
			Service:          string(models.ServiceStandard),
			Price:            pricing.Compute(pricing.Quote{WeightKg: 2.5, Service: "standard"}),
			Status:           string(models.StatusEnTransit),
			PaymentMethod:    string(models.PaymentCashDelivery),
		},
		{
			TrackingNumber:   tracking.GenerateNumber(),
			SenderName:       "Aissatou Barry",
			SenderPhone:      "655987654",
			SenderAddress:    "Madina",
			SenderCity:       "Conakry",
			RecipientName:    "Ibrahima Sow",
			RecipientPhone:   "664555666",
			RecipientAddress: "Quartier gare",
			RecipientCity:    "Kankan",
			WeightKg:         1,
			Service:          string(models.ServiceExpress),
			Price:            pricing.Compute(pricing.Quote{WeightKg: 1, Service: "express", CODEnabled: true, CODAmount: codAmount}),
			CODEnabled:       true,
			CODAmount:        &codAmount,
			Status:           string(models.StatusEnPreparation),
			PaymentMethod:    string(models.PaymentCashDelivery),
		},
	}

	for i := range samples {
		if err := db.Create(&samples[i]).Error; err != nil {
			return err
		}
		log.Printf("Sample shipment created: %s", samples[i].TrackingNumber)
	}
	return nil
}
