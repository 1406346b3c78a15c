package database

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ctserver/config"
	"ctserver/model"
)

// Connect opens the data store named by the configured URL and migrates the
// schema. A postgres:// or postgresql:// URL selects the postgres driver;
// anything else is treated as a path to a file-backed sqlite database.
func Connect(cfg config.Database) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(cfg.Url, "postgres://") || strings.HasPrefix(cfg.Url, "postgresql://") {
		dialector = postgres.Open(cfg.Url)
	} else {
		dialector = sqlite.Open(cfg.Url)
	}
	conn, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := conn.AutoMigrate(&model.User{}); err != nil {
		return nil, err
	}
	return conn, nil
}
