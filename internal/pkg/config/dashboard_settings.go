package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DashboardSettings holds configuration for the dashboard server, including
// the listen port, the lending dataset location and logging settings.
type DashboardSettings struct {
	Port         string         `mapstructure:"port" validate:"required,numeric"`
	DatasetPath  string         `mapstructure:"dataset_path" validate:"required"`
	PreviewLimit int            `mapstructure:"preview_limit"`
	Logger       LoggerSettings `mapstructure:"logger"`
}

// Validate checks that all fields in DashboardSettings are valid
func (s *DashboardSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DashboardSettings: %w", err)
	}

	if s.PreviewLimit < 0 {
		return fmt.Errorf("preview limit must not be negative")
	}

	return s.Logger.Validate()
}

// InitializeDashboardConfig reads a YAML configuration file into
// DashboardSettings and validates the result.
func InitializeDashboardConfig(configPath string) (*DashboardSettings, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	v.SetDefault("port", "8080")
	v.SetDefault("preview_limit", 50)
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var settings DashboardSettings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}
