package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"

	"github.com/UnownHash/polygon-labels/labeler"
	"github.com/UnownHash/polygon-labels/logging"
	"github.com/UnownHash/polygon-labels/pyroscope"
)

type IOConfig struct {
	NDJSON bool `koanf:"ndjson"`
	OSM    bool `koanf:"osm"`
	// filename to read, stdin if empty or "-".
	Input string `koanf:"input"`
}

func (cfg *IOConfig) Validate() error {
	if cfg.NDJSON && cfg.OSM {
		return errors.New("'io.ndjson' and 'io.osm' cannot both be set: osm input is a single document")
	}
	return nil
}

type Config struct {
	Labels    labeler.Config    `koanf:"labels"`
	IO        IOConfig          `koanf:"io"`
	Logging   logging.Config    `koanf:"logging"`
	Pyroscope *pyroscope.Config `koanf:"pyroscope"`
}

func (cfg *Config) CreateLogger() *logrus.Logger {
	return cfg.Logging.CreateLogger(nil)
}

func (cfg *Config) Validate() error {
	if err := cfg.Labels.Validate(); err != nil {
		return err
	}

	if err := cfg.IO.Validate(); err != nil {
		return err
	}

	if err := cfg.Logging.Validate(); err != nil {
		return err
	}

	if err := cfg.Pyroscope.Validate(); err != nil {
		return err
	}

	return nil
}

func getDefaultConfig() Config {
	return Config{
		Labels: labeler.GetDefaultConfig(),
		Logging: logging.Config{
			MaxSizeMB:  100,
			MaxAgeDays: 7,
			MaxBackups: 20,
		},
	}
}

// applyFlags copies flags given on the command line over the config, so
// they win over the config file.
func applyFlags(cfg *Config, flagSet *flag.FlagSet) {
	flagSet.Visit(func(f *flag.Flag) {
		getter, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}
		value := getter.Get()

		switch f.Name {
		case "precision":
			cfg.Labels.Precision = value.(float64)
		case "include-area":
			cfg.Labels.IncludeArea = value.(bool)
		case "include-bbox":
			cfg.Labels.IncludeBbox = value.(bool)
		case "include-minzoom":
			cfg.Labels.IncludeMinzoom = value.(string)
		case "label":
			cfg.Labels.Label = value.(string)
		case "style":
			cfg.Labels.Style = value.(string)
		case "ndjson":
			cfg.IO.NDJSON = value.(bool)
		case "osm":
			cfg.IO.OSM = value.(bool)
		case "verbose":
			cfg.Logging.Debug = value.(bool)
		case "log-file":
			cfg.Logging.Filename = value.(string)
		}
	})
}

// LoadConfig layers defaults, the optional config file and command line
// flags, in that order, then validates the result.
func LoadConfig(filename string, flagSet *flag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	err := k.Load(structs.Provider(getDefaultConfig(), "koanf"), nil)
	if err != nil {
		return nil, fmt.Errorf("couldn't load default config: %w", err)
	}

	if filename != "" {
		err = k.Load(file.Provider(filename), toml.Parser())
		if err != nil {
			return nil, fmt.Errorf("failed to load config file '%s': %w", filename, err)
		}
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if flagSet != nil {
		applyFlags(&cfg, flagSet)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
