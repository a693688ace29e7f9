package util

import (
	"fmt"
	"io"

	"github.com/pmd-l10n/pmd-po-helper/config"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// CmdShowConfig writes the merged configuration to w in YAML format.
func CmdShowConfig(w io.Writer, configFile string) error {
	log.Debugf("loading configuration")
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	yamlData, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration to YAML: %w", err)
	}

	if configFile != "" {
		fmt.Fprintf(w, "# Configuration from %s\n", configFile)
	} else {
		fmt.Fprintln(w, "# This is the merged configuration from:")
		fmt.Fprintf(w, "# - User home directory: ~/%s (lower priority)\n", config.UserConfigName)
		fmt.Fprintf(w, "# - Repository root: <repo-root>/%s (higher priority)\n", config.RepoConfigName)
	}
	fmt.Fprintln(w)
	_, err = w.Write(yamlData)
	return err
}
