package database

import (
	"fmt"
	"log"

	"github.com/Ayush5112006/dduhack-sub002/config"
	"github.com/Ayush5112006/dduhack-sub002/models"
	"github.com/Ayush5112006/dduhack-sub002/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

var DefaultPassword = "admin"

// InitDB initializes the database connection, migrates the models and
// populates the database with default values if needed
func InitDB() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	Populate()
}

// Migrate runs the schema migration for all models. The unique indexes it
// creates are the primary guard for the duplicate-write invariants.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.PasswordReset{},
		&models.Hackathon{},
		&models.Registration{},
		&models.Team{},
		&models.TeamMember{},
		&models.Submission{},
		&models.Score{},
		&models.JudgeAssignment{},
		&models.Winner{},
	)
}

// Populate creates the default admin account if the database is empty
func Populate() {
	var countUser int64
	DB.Model(&models.User{}).Count(&countUser)
	if countUser != 0 {
		return
	}

	password := DefaultPassword
	if config.DefaultPassword != "" {
		password = config.DefaultPassword
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		panic(err)
	}

	admin := models.User{
		Email:     "admin@admin.com",
		Firstname: "Admin",
		Lastname:  "Admin",
		Password:  hashed,
		Role:      models.RoleAdmin,
	}
	DB.Create(&admin)
	log.Println("Default user admin created")
}
