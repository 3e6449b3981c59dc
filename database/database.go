package database

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"motosgarage-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate creates the schema, including idx_motos_user_created, the composite
// index declared on Moto that backs the owner-scoped listing.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Moto{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// SeedData populates the database with sample listings for development.
func SeedData(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	users := []models.User{
		{
			ID:            "user-1",
			Name:          "John Doe",
			Email:         "john@example.com",
			Password:      "$2a$10$dummy",
			Provider:      "local",
			EmailVerified: true,
		},
		{
			ID:            "user-2",
			Name:          "Jane Smith",
			Email:         "jane@example.com",
			Password:      "$2a$10$dummy",
			Provider:      "local",
			EmailVerified: true,
		},
	}

	for _, user := range users {
		if err := db.Create(&user).Error; err != nil {
			fmt.Printf("Warning: could not create test user %s: %v\n", user.Email, err)
		}
	}

	precio := 8999.0
	cilindrada := 689.0
	estado := models.EstadoNuevo
	now := time.Now()
	motos := []models.Moto{
		{
			ID:              "moto-1",
			UserID:          "user-1",
			Marca:           "Yamaha",
			Modelo:          "MT-07",
			Year:            2024,
			Descripcion:     "Naked de media cilindrada, motor CP2 bicilíndrico.",
			MotorCilindrada: &cilindrada,
			Precio:          &precio,
			Estado:          &estado,
			Colores:         models.StringSlice{"negro", "azul"},
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}

	for _, moto := range motos {
		if err := db.Create(&moto).Error; err != nil {
			fmt.Printf("Warning: could not create test moto %s %s: %v\n", moto.Marca, moto.Modelo, err)
		}
	}

	fmt.Println("Database seeded with test data")
	return nil
}
