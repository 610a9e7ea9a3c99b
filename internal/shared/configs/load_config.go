package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"integration-audit/internal/shared/validators"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. INTEGRATION_AUDIT_SLACK_BASE_URL.
const EnvPrefix = "INTEGRATION_AUDIT"

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"log-level":    "log.level",
	"api-url":      "slack.base_url",
	"timeout":      "slack.timeout",
	"metrics-file": "metrics.textfile_path",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("slack.base_url", "https://slack.com/api")
	v.SetDefault("slack.timeout", 0)
	v.SetDefault("metrics.textfile_path", "")
}

// LoadConfig resolves configuration from defaults, an optional YAML file, environment variables
// and explicitly set flags (highest precedence), then validates it.
var LoadConfig = func(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for flagName, key := range flagKeys {
			if f := flags.Lookup(flagName); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %q: %w", flagName, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		var ve validators.ValidationErrors
		if errors.As(err, &ve) {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none) into the process
// environment. Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()

	// Namespace is "Config.slack.base_url"; drop the root type name.
	if parts := strings.Split(e.Namespace(), "."); len(parts) >= 2 {
		field = strings.Join(parts[1:], ".")
	}

	switch tag := e.Tag(); tag {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "oneof":
		return fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
