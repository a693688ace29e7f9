package cmd

import (
	"os"

	"github.com/pmd-l10n/pmd-po-helper/flag"
	"github.com/pmd-l10n/pmd-po-helper/util"
	"github.com/spf13/cobra"
)

type showConfigCommand struct {
	cmd *cobra.Command
}

func (v *showConfigCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "show-config",
		Short: "Show the current configuration in YAML format",
		Long: `Display the merged configuration in YAML format.

The configuration is read from:
- User home directory: ~/.pmd-po-helper.yaml (lower priority)
- Repository root: <repo-root>/pmd-po-helper.yaml (higher priority)

If --config is given, only that file is read. Settings missing from all
files keep their default values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	return v.cmd
}

func (v showConfigCommand) Execute(args []string) error {
	if len(args) != 0 {
		return NewErrorWithUsage("show-config command needs no arguments")
	}
	if err := util.CmdShowConfig(os.Stdout, flag.ConfigFile()); err != nil {
		return NewStandardErrorF("%v", err)
	}
	return nil
}

var showConfigCmd = showConfigCommand{}

func init() {
	rootCmd.AddCommand(showConfigCmd.Command())
}
