package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "GREETER"

// ConfigFileEnv names an explicit configuration file. When unset, Load looks for
// config.yaml in the working directory and continues without it if absent.
const ConfigFileEnv = "GREETER_CONFIG_FILE"

// Load configuration from defaults, an optional config file and environment
// variables. Environment variables take precedence over values from the file.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path := os.Getenv(ConfigFileEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.public_url", "")

	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime_minutes", 5)

	v.SetDefault("pagination.page_size", 20)
	v.SetDefault("pagination.limit_to_page_size", true)

	v.SetDefault("http.cors_allowed_origins", []string{"*"})
	v.SetDefault("http.rate_limit_requests", 100)
	v.SetDefault("http.rate_limit_window_seconds", 60)
	v.SetDefault("http.shutdown_timeout_seconds", 10)
}

// AutomaticEnv only resolves keys viper already knows about; database.url has
// no default so it is bound explicitly.
func bindEnvs(v *viper.Viper) {
	_ = v.BindEnv("database.url")
}
