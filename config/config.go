package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/PawanYadav007s/Design-Records-APP/models"
)

// Config holds all application configuration. ExcelSavePath and DBPath are
// persisted in the settings file; the rest comes from the environment.
type Config struct {
	ExcelSavePath string `mapstructure:"excel_save_path"`
	DBPath        string `mapstructure:"db_path"`
	DatabaseURL   string `mapstructure:"-"`
	Port          string `mapstructure:"-"`
}

var appConfig *Config

// Load loads the process configuration: .env overrides first, then the
// persisted settings file (created with defaults on first run).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	settingsPath := getEnv("SETTINGS_PATH", "settings.json")
	cfg, err := LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}

	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	cfg.Port = getEnv("PORT", "8080")

	appConfig = cfg
	return cfg, nil
}

// LoadSettings resolves the persisted settings document at the given path.
// Idempotent and safe to call repeatedly: a missing file is created with
// defaults relative to its own directory, an existing valid file is never
// overwritten. The backup folder is guaranteed to exist on return.
func LoadSettings(path string) (*Config, error) {
	base := filepath.Dir(path)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("excel_save_path", filepath.Join(base, "ExcelBackup"))
	v.SetDefault("db_path", filepath.Join(base, "design.db"))

	if err := v.ReadInConfig(); err != nil {
		if _, missing := err.(viper.ConfigFileNotFoundError); missing || os.IsNotExist(errCause(err)) {
			// First run: persist the defaults. SafeWrite refuses to clobber
			// an existing file.
			if writeErr := v.SafeWriteConfigAs(path); writeErr != nil {
				return nil, &models.ConfigurationError{Reason: "could not create settings file", Err: writeErr}
			}
			logrus.WithField("path", path).Info("Created settings file with defaults")
		} else {
			return nil, &models.ConfigurationError{Reason: "settings file is not parseable", Err: err}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, &models.ConfigurationError{Reason: "settings file has invalid field types", Err: err}
	}

	if err := os.MkdirAll(cfg.ExcelSavePath, 0o755); err != nil {
		return nil, &models.ConfigurationError{Reason: "could not create backup directory", Err: err}
	}

	return cfg, nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Config {
	return appConfig
}

// SetConfig sets the configuration (primarily for testing)
func SetConfig(c *Config) {
	appConfig = c
}

// errCause unwraps wrapped path errors so os.IsNotExist sees the real cause
func errCause(err error) error {
	type unwrapper interface{ Unwrap() error }
	for {
		u, ok := err.(unwrapper)
		if !ok || u.Unwrap() == nil {
			return err
		}
		err = u.Unwrap()
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
