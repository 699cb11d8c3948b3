package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// Connect opens the configured database. mysql is the production driver;
// sqlite (file path or :memory: in DBName) backs local development and
// tests. TranslateError maps driver duplicate-key errors onto
// gorm.ErrDuplicatedKey so callers can branch on them.
func Connect(cfg Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{TranslateError: true}
	switch cfg.Driver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBName), gcfg)
	case "mysql", "":
		// clientFoundRows makes RowsAffected count matched rows, not
		// changed rows, so an update that writes the value a row
		// already has still reports the row as found. Repositories
		// rely on that to tell "missing id" apart from "no change".
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
		return gorm.Open(mysql.Open(dsn), gcfg)
	}
	return nil, fmt.Errorf("unknown db driver %q", cfg.Driver)
}
