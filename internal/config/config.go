// Package config reads the server settings from the environment, after
// loading an optional .env file.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds the runtime settings of the API server.
type Config struct {
	Port       string
	JWTSecret  []byte
	JWTTTL     time.Duration
	Location   *time.Location
	SeedData   bool
	BcryptCost int
}

// Load reads .env (when present) and the process environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("WARNING: could not load .env file, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment alone.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:       getenv("APP_PORT", "8080"),
		JWTSecret:  []byte(getenv("JWT_SECRET", "dev-secret-change-me")),
		JWTTTL:     24 * time.Hour,
		Location:   time.Local,
		SeedData:   true,
		BcryptCost: bcrypt.DefaultCost,
	}

	if v := os.Getenv("JWT_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("JWT_TTL: %w", err)
		}
		cfg.JWTTTL = d
	}
	if v := os.Getenv("APP_TIMEZONE"); v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			return nil, fmt.Errorf("APP_TIMEZONE: %w", err)
		}
		cfg.Location = loc
	}
	if v := os.Getenv("SEED_DATA"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("SEED_DATA: %w", err)
		}
		cfg.SeedData = b
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < bcrypt.MinCost || n > bcrypt.MaxCost {
			return nil, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
		}
		cfg.BcryptCost = n
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
