// Package config provides the configuration of the wireparity CLI.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	yaml3 "gopkg.in/yaml.v3"
)

// Codec A choices.
const (
	CodecGoJSON  = "go-json"
	CodecStdJSON = "encoding/json"
)

// Config holds every setting of a check run.
type Config struct {
	Namespace        string `json:"namespace" yaml:"namespace" mapstructure:"namespace"`
	CodecA           string `json:"codecA" yaml:"codecA" mapstructure:"codecA"`
	TagKeyB          string `json:"tagKeyB" yaml:"tagKeyB" mapstructure:"tagKeyB"`
	Parallelism      int    `json:"parallelism" yaml:"parallelism" mapstructure:"parallelism"`
	StrictUndeclared bool   `json:"strictUndeclared" yaml:"strictUndeclared" mapstructure:"strictUndeclared"`
	Payloads         bool   `json:"payloads" yaml:"payloads" mapstructure:"payloads"`
	Language         string `json:"language" yaml:"language" mapstructure:"language"`
	Format           string `json:"format" yaml:"format" mapstructure:"format"`
	Color            bool   `json:"color" yaml:"color" mapstructure:"color"`
	Debug            bool   `json:"debug" yaml:"debug" mapstructure:"debug"`
}

const defaultConfig = `
namespace: "github.com/reoring/wireparity/model"
codecA: "go-json"
tagKeyB: "wire"
parallelism: 0
strictUndeclared: false
payloads: false
language: "en"
format: "table"
color: true
debug: false
`

// GetDefaultConfig returns the default configuration as YAML.
func GetDefaultConfig() string {
	return defaultConfig
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	if err := yaml3.Unmarshal([]byte(defaultConfig), cfg); err != nil {
		panic(err)
	}
	return cfg
}

// Load layers an optional config file and WIREPARITY_* environment variables
// over the defaults. With an empty path, wireparity.yaml is looked up in the
// working directory and its absence is not an error. Flags bound to v before
// the call take precedence over both.
func Load(v *viper.Viper, path string) (*Config, error) {
	def := Default()
	v.SetDefault("namespace", def.Namespace)
	v.SetDefault("codecA", def.CodecA)
	v.SetDefault("tagKeyB", def.TagKeyB)
	v.SetDefault("parallelism", def.Parallelism)
	v.SetDefault("strictUndeclared", def.StrictUndeclared)
	v.SetDefault("payloads", def.Payloads)
	v.SetDefault("language", def.Language)
	v.SetDefault("format", def.Format)
	v.SetDefault("color", def.Color)
	v.SetDefault("debug", def.Debug)

	v.SetEnvPrefix("WIREPARITY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("wireparity")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal the config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown enumerated settings.
func (c *Config) Validate() error {
	if c.Namespace == "" {
		return errors.New("config: namespace is required")
	}
	switch c.CodecA {
	case CodecGoJSON, CodecStdJSON:
	default:
		return fmt.Errorf("config: unknown codecA %q", c.CodecA)
	}
	if c.TagKeyB == "" || c.TagKeyB == "json" {
		return fmt.Errorf("config: tagKeyB %q must name a tag other than json", c.TagKeyB)
	}
	switch c.Format {
	case "table", "text", "json", "yaml":
	default:
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	switch c.Language {
	case "en", "ja":
	default:
		return fmt.Errorf("config: unknown language %q", c.Language)
	}
	return nil
}
