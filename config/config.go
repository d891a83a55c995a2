// Package config loads the service configuration from a yaml file via
// viper and exposes typed sections for the server, logger, data layer
// and pagination.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/ncobase/notes/logging/logger"
)

// Config represents the service configuration.
type Config struct {
	AppName string
	RunMode string
	Host    string
	Port    int
	Logger  *logger.Config
	Data    *Data
	Paging  *Paging
	Viper   *viper.Viper
}

// Load reads the configuration file. An empty path falls back to a
// config.yaml next to the executable, the working directory or
// /etc/notes.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		ex, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to get executable path: %w", err)
		}
		v.SetConfigName("config")
		v.AddConfigPath("/etc/notes")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Dir(ex))
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		AppName: getStringOrDefault(v, "app_name", "notes"),
		RunMode: v.GetString("run_mode"),
		Host:    getStringOrDefault(v, "server.host", "0.0.0.0"),
		Port:    getIntOrDefault(v, "server.port", 8080),
		Logger:  getLoggerConfig(v),
		Data:    getDataConfig(v),
		Paging:  getPagingConfig(v),
		Viper:   v,
	}
}

// Watch reloads the configuration whenever the file changes and hands
// the fresh config to onChange.
func (c *Config) Watch(onChange func(*Config)) {
	c.Viper.OnConfigChange(func(e fsnotify.Event) {
		if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		onChange(fromViper(c.Viper))
	})
	c.Viper.WatchConfig()
}

// Addr returns the host:port the server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
