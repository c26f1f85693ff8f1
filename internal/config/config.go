package config

import (
	"time"

	"github.com/maxviazov/pagination-service/internal/logger"
)

type Config struct {
	App    AppConfig           `mapstructure:"app"`
	HTTP   HTTPConfig          `mapstructure:"http"`
	Logger logger.LoggerConfig `mapstructure:"logger"`
}

// AppConfig identifies the running service.
type AppConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	Version string `mapstructure:"version" validate:"required"`
	Env     string `mapstructure:"env" validate:"oneof=dev test staging prod"`
}

// HTTPConfig tunes the public listener. Durations accept Go syntax ("5s", "1m").
type HTTPConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port" validate:"min=1,max=65535"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" validate:"gt=0"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}
