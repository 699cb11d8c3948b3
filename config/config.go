package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
}

type Session struct {
	Secret string
	Issuer string
	TTLMin int
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Admin struct {
	Username string
	Password string
}

type Config struct {
	HTTP     HTTP
	DB       DB
	Session  Session
	Redis    Redis
	Admin    Admin
	LogLevel string
}

// Load reads the YAML config file and applies environment overrides for
// the database credentials (DB_HOST, DB_PORT, DB_NAME, DB_USER,
// DB_PASSWORD). An empty path runs on defaults and environment alone.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 5000)
	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "app")
	v.SetDefault("db.pass", "password")
	v.SetDefault("db.name", "app")
	v.SetDefault("session.secret", "dev-secret")
	v.SetDefault("session.issuer", "itsm-ticket-management")
	v.SetDefault("session.ttl_min", 720)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "admin123")
	v.SetDefault("log_level", "info")

	_ = v.BindEnv("db.host", "DB_HOST")
	_ = v.BindEnv("db.port", "DB_PORT")
	_ = v.BindEnv("db.name", "DB_NAME")
	_ = v.BindEnv("db.user", "DB_USER")
	_ = v.BindEnv("db.pass", "DB_PASSWORD")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := fromViper(v)
	watched = v
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		HTTP: HTTP{Host: v.GetString("http.host"), Port: v.GetInt("http.port")},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
		},
		Session: Session{
			Secret: v.GetString("session.secret"),
			Issuer: v.GetString("session.issuer"),
			TTLMin: v.GetInt("session.ttl_min"),
		},
		Redis: Redis{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Admin:    Admin{Username: v.GetString("admin.username"), Password: v.GetString("admin.password")},
		LogLevel: v.GetString("log_level"),
	}
}

var watched *viper.Viper

// Watch re-reads the config file on change and hands the refreshed
// snapshot to fn. Only log_level is expected to move at runtime; callers
// decide what to apply.
func Watch(fn func(*Config)) {
	if watched == nil || watched.ConfigFileUsed() == "" {
		return
	}
	watched.OnConfigChange(func(_ fsnotify.Event) {
		fn(fromViper(watched))
	})
	watched.WatchConfig()
}
