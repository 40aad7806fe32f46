package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/PawanYadav007s/Design-Records-APP/models"
)

var DB *gorm.DB

// ConnectDatabase establishes the database connection. When DATABASE_URL is
// set a shared PostgreSQL server is used; otherwise the local SQLite file
// from the settings document, opened in WAL journal mode so readers can
// proceed while a writer commits.
func ConnectDatabase(cfg *Config) error {
	var err error

	if cfg.DatabaseURL != "" {
		DB, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		logrus.Info("Connected to PostgreSQL database")
		return nil
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_foreign_keys=on", cfg.DBPath)
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to open database file %s: %w", cfg.DBPath, err)
	}
	logrus.WithField("path", cfg.DBPath).Info("Opened SQLite database in WAL mode")
	return nil
}

// Migrate creates or updates the three application tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.PORecord{}, &models.DesignRecord{}, &models.Designer{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (primarily for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
