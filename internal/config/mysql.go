package config

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the shared database handle, set by InitDB.
var DB *gorm.DB

// InitDB opens the MySQL connection.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	DB = db
	if Logger != nil {
		Logger.Info("✅ Database connected")
	}
	return db, nil
}
