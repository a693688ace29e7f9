// Package config provides configuration structures and loading for
// pmd-po-helper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmd-l10n/pmd-po-helper/repository"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// UserConfigName is the config file in the home directory.
	UserConfigName = ".pmd-po-helper.yaml"
	// RepoConfigName is the config file in the root of the repository.
	RepoConfigName = "pmd-po-helper.yaml"
)

// Config holds the complete configuration.
type Config struct {
	// Unique lists phrases whose messages are never merged with other
	// messages of the same text, because their translation depends on
	// where they are used.
	Unique      []string `yaml:"unique"`
	StorageMode string   `yaml:"storage_mode"`
	Encoding    string   `yaml:"encoding"`
	SkipFiles   []string `yaml:"skip_files"`
}

// Default returns the configuration used when no config file is found.
func Default() *Config {
	return &Config{
		StorageMode: "file",
		Encoding:    "UTF-8",
		SkipFiles:   []string{"name_sort.bin"},
	}
}

// Validate checks settings which can not be used.
func (c *Config) Validate() error {
	switch strings.ToLower(c.StorageMode) {
	case "", "file", "folder":
	default:
		return fmt.Errorf("storage_mode should be either 'file' or 'folder', not '%s'", c.StorageMode)
	}
	for i, phrase := range c.Unique {
		if strings.TrimSpace(phrase) == "" {
			return fmt.Errorf("unique phrase #%d is empty", i+1)
		}
	}
	return nil
}

func loadConfigFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}
	return &cfg, nil
}

// mergeConfigs overlays the non-empty settings of override on base.
func mergeConfigs(base, override *Config) *Config {
	merged := *base
	if override == nil {
		return &merged
	}
	if override.Unique != nil {
		merged.Unique = override.Unique
	}
	if override.StorageMode != "" {
		merged.StorageMode = override.StorageMode
	}
	if override.Encoding != "" {
		merged.Encoding = override.Encoding
	}
	if override.SkipFiles != nil {
		merged.SkipFiles = override.SkipFiles
	}
	return &merged
}

// LoadConfig loads the configuration. If configFile is given it is the only
// file read, otherwise ~/.pmd-po-helper.yaml and then pmd-po-helper.yaml in
// the repository root are merged over the defaults. Missing files are skipped.
func LoadConfig(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		fileCfg, err := loadConfigFromFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg = mergeConfigs(cfg, fileCfg)
	} else {
		var candidates []string
		if home, err := os.UserHomeDir(); err == nil {
			candidates = append(candidates, filepath.Join(home, UserConfigName))
		}
		if repository.Opened() {
			candidates = append(candidates, filepath.Join(repository.WorkDir(), RepoConfigName))
		}
		for _, filename := range candidates {
			fileCfg, err := loadConfigFromFile(filename)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					continue
				}
				return nil, err
			}
			log.Debugf("loaded config from %s", filename)
			cfg = mergeConfigs(cfg, fileCfg)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
