package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagUnique      = "unique"
	flagStorageMode = "storage-mode"
	flagEncoding    = "encoding"
)

// addStorageModeFlag adds --storage-mode to cmd.
func addStorageModeFlag(cmd *cobra.Command, usage string) {
	cmd.Flags().String(flagStorageMode, "", usage)
	setFlagGroup(cmd, flagStorageMode, groupCatalog)
}

// addEncodingFlag adds --encoding to cmd.
func addEncodingFlag(cmd *cobra.Command) {
	cmd.Flags().String(flagEncoding, "",
		"encoding of the catalog files, converted to UTF-8 with iconv (default from config: UTF-8)")
	setFlagGroup(cmd, flagEncoding, groupCatalog)
}

// bindCatalogFlags binds the catalog flags of the running command to viper.
// Several commands define the same flags, so binding happens when one of
// them is executed, not when it is created.
func bindCatalogFlags(cmd *cobra.Command) {
	for _, name := range []string{flagStorageMode, flagEncoding} {
		if f := cmd.Flags().Lookup(name); f != nil {
			_ = viper.BindPFlag(name, f)
		}
	}
}
