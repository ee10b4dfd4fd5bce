package configuration

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectPostgres opens the relational store holding doctors.
func ConnectPostgres(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
	if err != nil {
		log.Println("Cannot connect to database: ", err)
		return nil, err
	}
	log.Println("Connected to postgres")
	return db, nil
}
