package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "taskhive.com/taskhive/internal/models"
)

func NewDatabase(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Task{},
		&model.TaskStatusChange{},
		&model.Note{},
	)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
