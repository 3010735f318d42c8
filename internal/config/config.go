// Package config collects all runtime configuration in one explicit
// struct that is loaded once at startup and passed to the components
// that need it.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Database holds the connection settings for the backing store.
// When Host is set, postgres is used, the sqlite file otherwise.
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string

	// File is the sqlite database file, only used when Host is empty
	File string
}

// DSN returns the data source name for the configured database.
func (d Database) DSN() string {
	if d.Host != "" {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s", d.Host, d.User, d.Password, d.Name)
		if d.Port != "" {
			dsn = fmt.Sprintf("%s port=%s", dsn, d.Port)
		}
		return dsn
	}

	return fmt.Sprintf("%s?_pragma=foreign_keys(1)", d.File)
}

// Config is the complete runtime configuration of the backend.
type Config struct {
	GinMode          string   // gin mode, defaults to "release"
	LogFormat        string   // "human" for a console writer, JSON otherwise
	APIURL           *url.URL // base URL used to construct resource links
	CORSAllowOrigins []string // origins allowed for CORS, empty disables CORS
	EnablePprof      bool     // serve pprof profiles under /debug/pprof

	DB Database
}

// FromEnv builds the configuration from the environment.
func FromEnv() (Config, error) {
	cfg := Config{
		GinMode:     "release",
		LogFormat:   os.Getenv("LOG_FORMAT"),
		EnablePprof: os.Getenv("ENABLE_PPROF") == "true",
		DB: Database{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			File:     "data/gorm.db",
		},
	}

	if mode, ok := os.LookupEnv("GIN_MODE"); ok {
		cfg.GinMode = mode
	}

	if file, ok := os.LookupEnv("DB_FILE"); ok {
		cfg.DB.File = file
	}

	if origins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS"); ok {
		cfg.CORSAllowOrigins = strings.Fields(origins)
	}

	rawURL := "http://localhost:8080"
	if apiURL, ok := os.LookupEnv("API_URL"); ok {
		rawURL = apiURL
	}

	apiURL, err := url.Parse(rawURL)
	if err != nil {
		return Config{}, fmt.Errorf("API_URL is not a valid URL: %w", err)
	}
	cfg.APIURL = apiURL

	return cfg, nil
}
