package archivist

import (
	"github.com/Messiiiejejj/ForexDiscordBot/archivist/models"
	"gorm.io/gorm"
)

// Entities is a struct that contains all the entities that Archivist is responsible for.
type Entities struct {
	Settings *models.SettingsDB
}

// Archivist is responsible for storing and retrieving bot state from the database.
type Archivist struct {
	db       *gorm.DB
	Entities *Entities
}

// NewArchivist creates a new Archivist with provided DSN to connect to database.
//
// DSN is a string in the format of: "user=gorm password=gorm dbname=gorm port=9920 sslmode=disable"
func NewArchivist(dsn string) (*Archivist, error) {
	conn, err := connectToPG(dsn)
	if err != nil {
		return nil, err
	}

	err = conn.AutoMigrate(&models.Settings{})
	if err != nil {
		return nil, err
	}

	return &Archivist{
		db: conn,
		Entities: &Entities{
			Settings: models.NewSettingsDB(conn),
		},
	}, nil
}
