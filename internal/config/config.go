package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTP  HTTP
	DB    DB
	JWT   JWT
	Admin Admin
}

type HTTP struct {
	Port         string `env:"PORT" envDefault:"5219"`
	ReadTimeout  int    `env:"HTTP_READ_TIMEOUT_SECONDS" envDefault:"5"`
	WriteTimeout int    `env:"HTTP_WRITE_TIMEOUT_SECONDS" envDefault:"10"`
	IdleTimeout  int    `env:"HTTP_IDLE_TIMEOUT_SECONDS" envDefault:"60"`
}

type DB struct {
	// Driver is either "postgres" or "sqlite". SQLite keeps local runs
	// dependency-free; deployments point at Postgres.
	Driver   string `env:"DB_DRIVER" envDefault:"sqlite"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"phonedir"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	// SQLitePath is used only when Driver is "sqlite".
	SQLitePath string `env:"DB_SQLITE_PATH" envDefault:"phonedir.db"`
}

type JWT struct {
	Secret        string `env:"JWT_SECRET,required,notEmpty"`
	Issuer        string `env:"JWT_ISSUER" envDefault:"phone-directory"`
	Audience      string `env:"JWT_AUDIENCE" envDefault:"phone-directory"`
	ExpiryMinutes int    `env:"JWT_EXPIRY_MINUTES" envDefault:"60"`
}

// Admin controls first-run seeding of the administrator account. The
// account is created only when the users table is empty AND Password is
// set; there is deliberately no built-in default password.
type Admin struct {
	Username string `env:"ADMIN_USERNAME" envDefault:"admin"`
	Password string `env:"ADMIN_PASSWORD"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
