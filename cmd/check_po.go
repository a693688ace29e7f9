package cmd

import (
	"github.com/pmd-l10n/pmd-po-helper/util"
	"github.com/spf13/cobra"
)

type checkPoCommand struct {
	cmd *cobra.Command
}

func (v *checkPoCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "check-po <catalog>...",
		Short: "Check syntax of translation catalogs",
		PreRun: func(cmd *cobra.Command, args []string) {
			bindCatalogFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	addStorageModeFlag(v.cmd, "each argument is a catalog 'file' or a 'folder' of catalogs (default from config: file)")
	addEncodingFlag(v.cmd)

	v.cmd.SetUsageTemplate(groupedUsageTemplate)
	return v.cmd
}

func (v checkPoCommand) Execute(args []string) error {
	if len(args) == 0 {
		return NewErrorWithUsage("no argument for check-po command")
	}
	opts, err := loadCatalogOptions(nil)
	if err != nil {
		return err
	}
	if !util.CmdCheckPo(opts.Storage(), args...) {
		return NewStandardError("check-po command failed")
	}
	return nil
}

var checkPoCmd = checkPoCommand{}

func init() {
	rootCmd.AddCommand(checkPoCmd.Command())
}
