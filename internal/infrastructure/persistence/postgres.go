package persistence

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"aams-service/internal/interface/repository"
)

// NewPostgresDB opens the PostgreSQL connection and migrates the record
// tables the service owns.
func NewPostgresDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&repository.AircraftTasks{},
		&repository.AircraftMovements{},
		&repository.TrainingFlights{},
		&repository.Users{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
