package migrations

import (
	"errors"
	"log"

	"colis_express/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunMigrations brings the schema up to date and seeds the default admin
// account when none exists.
func RunMigrations(db *gorm.DB, adminEmail, adminPassword string) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Shipment{},
	)
	if err != nil {
		return err
	}

	if err := seedAdmin(db, adminEmail, adminPassword); err != nil {
		log.Printf("Warning: Failed to seed admin account: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

func seedAdmin(db *gorm.DB, email, password string) error {
	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Println("Admin account already exists")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         "Administrateur",
		IsAdmin:      true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Admin account created: %s", email)
	return nil
}
