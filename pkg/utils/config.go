package utils

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Security SecurityConfig
	Shell    ShellConfig
}

type AppConfig struct {
	Name    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

type SecurityConfig struct {
	BcryptCost        int
	MinPasswordLength int
}

type ShellConfig struct {
	CommandTimeout time.Duration
	HistoryFile    string
}

// LoadConfig reads an optional env file, then lets process environment override it.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "restaurant-menu")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "restaurant_menu")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 5)
	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	v.SetDefault("MIN_PASSWORD_LENGTH", 6)
	v.SetDefault("COMMAND_TIMEOUT", "10s")
	v.SetDefault("HISTORY_FILE", defaultHistoryFile())

	if err := v.ReadInConfig(); err != nil {
		// the env file is optional; anything else is a real problem
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Security: SecurityConfig{
			BcryptCost:        v.GetInt("BCRYPT_COST"),
			MinPasswordLength: v.GetInt("MIN_PASSWORD_LENGTH"),
		},
		Shell: ShellConfig{
			CommandTimeout: v.GetDuration("COMMAND_TIMEOUT"),
			HistoryFile:    v.GetString("HISTORY_FILE"),
		},
	}

	return config, nil
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".restaurant_menu_history")
}
