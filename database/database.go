package database

import (
	"log"

	config "github.com/lumierehotels/booking-api/configs"
	"github.com/lumierehotels/booking-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	log.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Season{},
		&models.Room{},
		&models.Extra{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	log.Println("✅ Database migration successful")
}

// LockForUpdate adds a FOR UPDATE row lock on Postgres. SQLite (tests) has
// no row locks; its writes already serialize on the database lock.
func LockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("⚠️ ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var count int64
	if err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
	}
	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
	}
	passwordHash := string(hashed)

	admin := models.User{
		Name:         config.Config("ADMIN_NAME"),
		Email:        adminEmail,
		PasswordHash: &passwordHash,
		Role:         models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
	}

	log.Println("✅ Admin user seeded successfully")
}
