package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"vtb/system/file"

	"github.com/spf13/afero"
)

const DefaultPath = "vtb.yaml"

const (
	defaultPythonBin   = "python3"
	defaultDatabaseURL = "sqlite:///./vtu.db"
	defaultServiceHost = "0.0.0.0"
	defaultServicePort = 8000
)

// defaultPythonPackages is the dependency set of the backend service. A
// manifest may replace it entirely; an empty manifest installs exactly this.
var defaultPythonPackages = []string{
	"fastapi",
	"uvicorn[standard]",
	"sqlmodel",
	"alembic",
	"pydantic-settings",
	"python-multipart",
	"passlib[bcrypt]",
	"bcrypt==3.2.2",
	"python-jose[cryptography]",
	"selenium",
	"webdriver-manager",
	"requests",
	"mailjet-rest",
	"jinja2",
	"asyncpg",
	"aiosqlite",
	"slowapi",
	"email-validator",
}

type Config struct {
	Python   PythonConfig   `yaml:"Python"`
	System   SystemConfig   `yaml:"System"`
	Database DatabaseConfig `yaml:"Database"`
	Service  ServiceConfig  `yaml:"Service"`
}

type PythonConfig struct {
	Bin               string   `yaml:"Bin"`
	Packages          []string `yaml:"Packages"`
	RequirementsFiles []string `yaml:"RequirementsFiles"`
}

type SystemConfig struct {
	Packages []string `yaml:"Packages"`
}

type DatabaseConfig struct {
	URL string `yaml:"URL"`
}

type ServiceConfig struct {
	Command []string `yaml:"Command"`
	Host    string   `yaml:"Host"`
	Port    int      `yaml:"Port"`
}

// Default returns the configuration used when no manifest is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the bootstrap manifest at path. A missing manifest is not an
// error: defaults describe a complete bootstrap on their own.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	exists, err := file.IsPathExist(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check for manifest at '%s': %w", path, err)
	}
	if !exists {
		cfg := Default()
		cfg.applyEnvOverrides()
		return cfg, nil
	}

	data, err := afero.ReadFile(file.AppFs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest '%s': %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse manifest '%s': %w", path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Python.Bin == "" {
		c.Python.Bin = defaultPythonBin
	}
	if len(c.Python.Packages) == 0 && len(c.Python.RequirementsFiles) == 0 {
		c.Python.Packages = defaultPythonPackages
	}
	if c.Database.URL == "" {
		c.Database.URL = defaultDatabaseURL
	}
	if c.Service.Host == "" {
		c.Service.Host = defaultServiceHost
	}
	if c.Service.Port == 0 {
		c.Service.Port = defaultServicePort
	}
	if len(c.Service.Command) == 0 {
		c.Service.Command = []string{c.Python.Bin, "-m", "uvicorn", "app.main:app"}
	}
}

func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		c.Database.URL = url
	}
	if port := os.Getenv("VTB_SERVICE_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Service.Port = p
		}
	}
}
