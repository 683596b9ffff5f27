// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the runtime settings for a SyncGroup session.
type AppConfig struct {
	LogDev        bool
	LoginDelay    time.Duration
	CountdownTick time.Duration
	SeedDemo      bool
	DisplayName   string
	Email         string
	AvatarURL     string
}

// appKey is one configuration entry: name, default, and a description that
// doubles as documentation of the knob.
type appKey struct {
	name string
	def  any
	desc string
}

// appConfigKeys defines the configuration keys for SyncGroup. Values are
// resolved from a local config file (config.yaml/json/toml) and from
// environment variables (SYNCGROUP_LOG_DEV, SYNCGROUP_LOGIN_DELAY, ...),
// env taking precedence over the file, both over defaults.
var appConfigKeys = []appKey{
	{"log_dev", true, "Use zap development encoding (human-readable console output)"},
	{"login_delay", "1500ms", "Simulated provider round-trip before login resolves"},
	{"countdown_tick", "1s", "How often deadline countdowns re-evaluate"},
	{"seed_demo", true, "Load the demo group, project, and tasks after login"},
	{"display_name", "John Doe", "Display name of the stubbed identity"},
	{"email", "john@example.com", "Email of the stubbed identity"},
	{"avatar_url", "https://picsum.photos/seed/user1/200", "Avatar reference of the stubbed identity"},
}

// LoadConfig resolves the app configuration. A missing config file is
// fine; defaults and environment variables cover every key.
func LoadConfig() (AppConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("SYNCGROUP")
	v.AutomaticEnv()
	for _, k := range appConfigKeys {
		v.SetDefault(k.name, k.def)
	}

	v.SetConfigName("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := AppConfig{
		LogDev:        v.GetBool("log_dev"),
		LoginDelay:    v.GetDuration("login_delay"),
		CountdownTick: v.GetDuration("countdown_tick"),
		SeedDemo:      v.GetBool("seed_demo"),
		DisplayName:   v.GetString("display_name"),
		Email:         v.GetString("email"),
		AvatarURL:     v.GetString("avatar_url"),
	}
	return cfg, nil
}
