package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Store  StoreConfig  `mapstructure:"store"`
	Logger LoggerConfig `mapstructure:"logger"`
}

// StoreConfig locates the persistence backend and the slot the task
// snapshot lives under.
type StoreConfig struct {
	DataDir string `mapstructure:"data_dir"`
	Key     string `mapstructure:"key"`
}

type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from an optional file plus TASKLINE_*
// environment variables. A missing file is fine; defaults cover
// everything.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("store.data_dir", defaultDataDir())
	v.SetDefault("store.key", "taskline.tasks")
	v.SetDefault("logger.level", "warn")

	v.SetEnvPrefix("TASKLINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to the working directory when there is no home,
		// e.g. in stripped-down containers.
		return ".taskline"
	}
	return filepath.Join(home, ".taskline")
}
