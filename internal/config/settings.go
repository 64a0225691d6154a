package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "STEPKIT"

// Settings are the process-wide options of the stepkit CLI.
type Settings struct {
	LogLevel   string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFile    string `mapstructure:"log_file"`
	Theme      string `mapstructure:"theme" validate:"oneof=light dark"`
	Tokens     string `mapstructure:"tokens"`
	Breakpoint int    `mapstructure:"breakpoint" validate:"min=0"`
	NoColor    bool   `mapstructure:"no_color"`
}

var settingKeys = []string{"log_level", "log_file", "theme", "tokens", "breakpoint", "no_color"}

// NewViper returns a viper instance carrying stepkit's defaults and
// environment bindings. Callers bind flags on top before LoadSettings.
func NewViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("theme", "light")
	v.SetDefault("tokens", "")
	v.SetDefault("breakpoint", 0)
	v.SetDefault("no_color", false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	for _, key := range settingKeys {
		if err := v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	return v, nil
}

// LoadSettings resolves settings with the precedence flags > env > file >
// defaults. An empty path skips the settings file.
func LoadSettings(v *viper.Viper, path string) (*Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading settings %s: %w", path, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unmarshaling settings: %w", err)
	}
	settings.LogLevel = strings.ToLower(settings.LogLevel)

	if err := validatorInstance().Struct(settings); err != nil {
		return nil, convertValidationError(err)
	}
	return &settings, nil
}
