// Copyright (c) 2026 the hanziconv authors
// released under the MIT license

package hanzi

import (
	"fmt"
	"os"
	"strings"

	"github.com/hanziconv/hanziconv/hanzi/logger"
	"gopkg.in/yaml.v2"
)

// here's how this works: exported (capitalized) members of the config structs
// are defined in the YAML file and deserialized directly from there. They may
// be postprocessed and overwritten by LoadConfig.

// PairOverride names one or more character pairs, as whitespace-delimited
// groups of simplified characters and their traditional counterparts.
type PairOverride struct {
	Simplified  string
	Traditional string
}

// MappingConfig customizes the character mapping at startup.
type MappingConfig struct {
	// Ignore suppresses pairs bundled in the default dataset.
	Ignore []PairOverride
	// Extend adds pairs missing from the default dataset.
	Extend []PairOverride
}

// Config defines the overall configuration.
type Config struct {
	Filename string `yaml:"-"`

	Logging []logger.LoggingConfig

	Mapping MappingConfig
}

// DefaultConfig returns the configuration used when no config file is given:
// warnings and errors to stderr, stock mapping.
func DefaultConfig() *Config {
	return &Config{
		Logging: []logger.LoggingConfig{
			{
				MethodStderr: true,
				Level:        logger.LogWarning,
				Types:        []string{"*"},
			},
		},
	}
}

// LoadConfig loads the given YAML configuration file.
func LoadConfig(filename string) (config *Config, err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	// an empty or comment-only file unmarshals to a nil pointer
	if config == nil {
		return nil, ErrConfigEmpty
	}

	config.Filename = filename

	// logging
	for i, logConfig := range config.Logging {
		// methods
		methods := make(map[string]bool)
		for _, method := range strings.Split(logConfig.Method, " ") {
			if len(method) > 0 {
				methods[strings.ToLower(method)] = true
			}
		}
		if methods["file"] && logConfig.Filename == "" {
			return nil, ErrLoggerFilenameMissing
		}
		logConfig.MethodFile = methods["file"]
		logConfig.MethodStdout = methods["stdout"]
		logConfig.MethodStderr = methods["stderr"]

		// levels
		level, exists := logger.LogLevelNames[strings.ToLower(logConfig.LevelString)]
		if !exists {
			return nil, fmt.Errorf("Could not translate log level [%s]", logConfig.LevelString)
		}
		logConfig.Level = level

		// types
		for _, typeStr := range strings.Split(logConfig.TypeString, " ") {
			if len(typeStr) == 0 {
				continue
			}
			if typeStr == "-" {
				return nil, ErrLoggerExcludeEmpty
			}
			if typeStr[0] == '-' {
				typeStr = typeStr[1:]
				logConfig.ExcludedTypes = append(logConfig.ExcludedTypes, typeStr)
			} else {
				logConfig.Types = append(logConfig.Types, typeStr)
			}
		}
		if len(logConfig.Types) < 1 {
			return nil, ErrLoggerHasNoTypes
		}

		config.Logging[i] = logConfig
	}

	// mapping overrides
	for _, overrides := range [][]PairOverride{config.Mapping.Ignore, config.Mapping.Extend} {
		for _, override := range overrides {
			if strings.TrimSpace(override.Simplified) == "" || strings.TrimSpace(override.Traditional) == "" {
				return nil, ErrOverrideIncomplete
			}
		}
	}

	return config, nil
}
