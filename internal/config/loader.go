package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads the YAML file at path, applies APP_* environment overrides
// (APP_HTTP_PORT overrides http.port) and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// the logger inherits identity from app unless set explicitly
	if config.Logger.Env == "" {
		config.Logger.Env = config.App.Env
	}
	if config.Logger.ServiceName == "" {
		config.Logger.ServiceName = config.App.Name
	}
	if config.Logger.ServiceVersion == "" {
		config.Logger.ServiceVersion = config.App.Version
	}

	if err := validator.New().Struct(&config.App); err != nil {
		return nil, fmt.Errorf("invalid app config: %w", err)
	}
	if err := validator.New().Struct(&config.HTTP); err != nil {
		return nil, fmt.Errorf("invalid http config: %w", err)
	}
	return &config, nil
}

// Addr is the listen address for http.Server.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// setDefaults registers every key so AutomaticEnv can override keys missing from the file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "pagination-service")
	v.SetDefault("app.version", "0.0.1")
	v.SetDefault("app.env", "prod")

	v.SetDefault("http.host", "")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.read_header_timeout", "2s")
	v.SetDefault("http.read_timeout", "10s")
	v.SetDefault("http.write_timeout", "10s")
	v.SetDefault("http.idle_timeout", "120s")
	v.SetDefault("http.shutdown_timeout", "10s")

	v.SetDefault("logger.level", "")
	v.SetDefault("logger.format", "")
	v.SetDefault("logger.output_target", "")
	v.SetDefault("logger.file_path", "")
}
