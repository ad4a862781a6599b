package appconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

// Config holds all configuration details
type Config struct {
	Host       string           `yaml:"host"`
	BasePath   string           `yaml:"basePath"`
	DocsPath   string           `yaml:"docsPath"`
	Ping       string           `yaml:"ping"`
	Auth       AuthConfig       `yaml:"auth"`
	Simulation SimulationConfig `yaml:"simulation"`
	CORS       CORSConfig       `yaml:"cors"`
	Pulsar     PulsarConfig     `yaml:"pulsar"`
	AWS        AWSConfig        `yaml:"aws"`
	Mail       MailConfig       `yaml:"mail"`
}

// AuthConfig controls token issuing and server side route enforcement
type AuthConfig struct {
	Enforce         bool          `yaml:"enforce"`
	SigningKey      string        `yaml:"signingKey"`
	SigningSecretID string        `yaml:"signingSecretId"`
	TokenTTL        time.Duration `yaml:"tokenTTL"`
	Issuer          string        `yaml:"issuer"`
}

// SimulationConfig tunes the simulated downstream systems
type SimulationConfig struct {
	Latency time.Duration `yaml:"latency"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// PulsarConfig defines the messaging system connection details
type PulsarConfig struct {
	URL          string `yaml:"url"`
	Topic        string `yaml:"topic"`
	Subscription string `yaml:"subscription"`
}

type AWSConfig struct {
	Region string `yaml:"region"`
}

// MailConfig defines the sender of account emails
type MailConfig struct {
	Enabled     bool   `yaml:"enabled"`
	FromAddress string `yaml:"fromAddress"`
	AppURL      string `yaml:"appURL"`
}

// LoadConfig loads and parses the configuration from a given file path. A
// .env file next to the working directory is loaded first so that its values
// are available to the template.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config file path is required")
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	// Parse the template file
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file template: %w", err)
	}

	// Execute the template with environment variables
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, loadEnvVars()); err != nil {
		return nil, fmt.Errorf("error executing config file template: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(buf.Bytes(), config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	return config, nil
}

// Default returns the configuration used for anything the file leaves out.
func Default() *Config {
	return &Config{
		Host:     "localhost:8080",
		BasePath: "/api",
		DocsPath: "/api/docs",
		Ping:     "ping",
		Auth: AuthConfig{
			TokenTTL: 8 * time.Hour,
			Issuer:   "ncc-admin",
		},
		Pulsar: PulsarConfig{
			Topic:        "persistent://public/default/ncc-audit",
			Subscription: "ncc-audit-log",
		},
	}
}

// loadEnvVars loads environment variables into a map
func loadEnvVars() map[string]string {
	envVars := make(map[string]string)
	for _, env := range os.Environ() {
		kv := strings.SplitN(env, "=", 2)
		if len(kv) == 2 {
			envVars[kv[0]] = kv[1]
		}
	}
	return envVars
}
