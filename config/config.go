package config

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/spf13/viper"

	"github.com/stagelight/go-dmxboot/bootloader"
	"github.com/stagelight/go-dmxboot/flash"
	"github.com/stagelight/go-dmxboot/protocol"
)

// DefaultConfigTemplate renders a configuration file with every key.
const DefaultConfigTemplate = `port: "{{ .Port }}"
baud-rate: {{ .BaudRate }}
byte-delay: "{{ .ByteDelay }}"
page-delay: "{{ .PageDelay }}"
page-count: {{ .PageCount }}
page-bytes: {{ .PageBytes }}
program-start-page: {{ .ProgramStartPage }}
open-retries: {{ .OpenRetries }}
strict: {{ .Strict }}
log-level: "{{ .LogLevel }}"
`

// EnvPrefix prefixes every environment variable, e.g. DMXBOOT_PORT.
const EnvPrefix = "DMXBOOT"

// Config defines the uploader configuration.
type Config struct {
	Port             string        `json:"port"               mapstructure:"port"`
	BaudRate         int           `json:"baud-rate"          mapstructure:"baud-rate"`
	File             string        `json:"file"               mapstructure:"file"`
	ByteDelay        time.Duration `json:"byte-delay"         mapstructure:"byte-delay"`
	PageDelay        time.Duration `json:"page-delay"         mapstructure:"page-delay"`
	PageCount        int           `json:"page-count"         mapstructure:"page-count"`
	PageBytes        int           `json:"page-bytes"         mapstructure:"page-bytes"`
	ProgramStartPage int           `json:"program-start-page" mapstructure:"program-start-page"`
	OpenRetries      uint          `json:"open-retries"       mapstructure:"open-retries"`
	Strict           bool          `json:"strict"             mapstructure:"strict"`
	LogLevel         string        `json:"log-level"          mapstructure:"log-level"`
}

// DefaultConfig returns the configuration of the reference device.
func DefaultConfig() *Config {
	return &Config{
		Port:             "/dev/ttyUSB0",
		BaudRate:         protocol.DefaultBaudRate,
		ByteDelay:        bootloader.DefaultByteDelay,
		PageDelay:        bootloader.DefaultPageDelay,
		PageCount:        flash.DefaultPageCount,
		PageBytes:        flash.DefaultPageBytes,
		ProgramStartPage: flash.DefaultProgramStartPage,
		OpenRetries:      3,
		LogLevel:         "info",
	}
}

// Geometry returns the flash geometry described by the configuration.
func (c *Config) Geometry() flash.Geometry {
	return flash.Geometry{
		PageCount:        c.PageCount,
		PageBytes:        c.PageBytes,
		ProgramStartPage: c.ProgramStartPage,
	}
}

// Validate checks values that would otherwise fail deep inside an upload.
func (c *Config) Validate() error {
	if c.BaudRate <= 0 {
		return fmt.Errorf("baud rate must be positive, got %d", c.BaudRate)
	}
	if c.ByteDelay < 0 || c.PageDelay < 0 {
		return fmt.Errorf("delays must not be negative")
	}
	if err := c.Geometry().Validate(); err != nil {
		return fmt.Errorf("geometry: %w", err)
	}
	return nil
}

// New returns a viper instance seeded with the defaults, reading
// dmxboot.yaml from dir (if present) and DMXBOOT_* environment variables.
func New(dir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName("dmxboot")
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	d := DefaultConfig()
	v.SetDefault("port", d.Port)
	v.SetDefault("baud-rate", d.BaudRate)
	v.SetDefault("file", d.File)
	v.SetDefault("byte-delay", d.ByteDelay)
	v.SetDefault("page-delay", d.PageDelay)
	v.SetDefault("page-count", d.PageCount)
	v.SetDefault("page-bytes", d.PageBytes)
	v.SetDefault("program-start-page", d.ProgramStartPage)
	v.SetDefault("open-retries", d.OpenRetries)
	v.SetDefault("strict", d.Strict)
	v.SetDefault("log-level", d.LogLevel)

	return v
}

// Load reads the configuration file (a missing file is not an error),
// applies environment overrides and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteDefault writes the default configuration to the config path of v.
// An existing file is never overwritten.
func WriteDefault(v *viper.Viper) error {
	tmpl, err := template.New("defaultConfig").Parse(DefaultConfigTemplate)
	if err != nil {
		return err
	}

	var buffer bytes.Buffer
	if err := tmpl.Execute(&buffer, DefaultConfig()); err != nil {
		return err
	}

	if err := v.ReadConfig(&buffer); err != nil {
		return err
	}
	return v.SafeWriteConfig()
}
