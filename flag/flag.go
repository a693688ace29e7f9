// Package flag provides typed access to command line flags bound to viper.
package flag

import (
	"github.com/spf13/viper"
)

// Verbose returns how many times -v is given.
func Verbose() int {
	return viper.GetInt("verbose")
}

// Quiet returns how many times -q is given.
func Quiet() int {
	return viper.GetInt("quiet")
}

// ConfigFile returns the config file given by --config.
func ConfigFile() string {
	return viper.GetString("config")
}

// StorageMode returns the storage mode given by --storage-mode.
func StorageMode() string {
	return viper.GetString("storage-mode")
}

// Encoding returns the catalog encoding given by --encoding.
func Encoding() string {
	return viper.GetString("encoding")
}
