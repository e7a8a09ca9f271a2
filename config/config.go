package config

import (
	"blogfeed/utils"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "blogfeed.yml"

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

type DisplayConfig struct {
	Port       string `yaml:"port"`
	ContentURL string `yaml:"contentUrl"`
	Origin     string `yaml:"origin"`
}

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Display DisplayConfig `yaml:"display"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:           "8080",
			AllowedOrigins: []string{"http://localhost:5174"},
		},
		Display: DisplayConfig{
			Port:       "5174",
			ContentURL: "http://localhost:8080",
			Origin:     "http://localhost:5174",
		},
	}
}

// Load layers the YAML file at path and then the environment over the
// defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fromFile Config
		if err := yaml.Unmarshal(data, &fromFile); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
		cfg.merge(fromFile)
	case errors.Is(err, fs.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg.Server.Port = utils.GetEnvVarWithDefault("SERVER_PORT", cfg.Server.Port)
	cfg.Server.AllowedOrigins = utils.GetEnvListWithDefault("ALLOWED_ORIGINS", cfg.Server.AllowedOrigins)
	cfg.Display.Port = utils.GetEnvVarWithDefault("DISPLAY_PORT", cfg.Display.Port)
	cfg.Display.ContentURL = utils.GetEnvVarWithDefault("CONTENT_URL", cfg.Display.ContentURL)
	cfg.Display.Origin = utils.GetEnvVarWithDefault("DISPLAY_ORIGIN", cfg.Display.Origin)

	return cfg, nil
}

func (c *Config) merge(other Config) {
	if other.Server.Port != "" {
		c.Server.Port = other.Server.Port
	}
	if len(other.Server.AllowedOrigins) > 0 {
		c.Server.AllowedOrigins = other.Server.AllowedOrigins
	}
	if other.Display.Port != "" {
		c.Display.Port = other.Display.Port
	}
	if other.Display.ContentURL != "" {
		c.Display.ContentURL = other.Display.ContentURL
	}
	if other.Display.Origin != "" {
		c.Display.Origin = other.Display.Origin
	}
}
