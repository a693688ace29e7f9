package cmd

import (
	"github.com/pmd-l10n/pmd-po-helper/util"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-vfs"
)

type fromPoCommand struct {
	cmd *cobra.Command
}

func (v *fromPoCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "from-po <input> <message-dir>",
		Short: "Write translated message dumps from translation catalog",
		Long: `Parse the translated catalog <input> and write one message dump per
resource into <message-dir>, ready to be injected into the binary message
files.

Untranslated messages keep their original text. Malformed lines are
reported as warnings and skipped, but a corrupted location comment or
escape sequence aborts the conversion.`,
		PreRun: func(cmd *cobra.Command, args []string) {
			bindCatalogFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	v.cmd.Flags().SortFlags = false
	addStorageModeFlag(v.cmd, "read a single catalog 'file' or a 'folder' of catalogs (default from config: file)")
	addEncodingFlag(v.cmd)

	v.cmd.SetUsageTemplate(groupedUsageTemplate)
	return v.cmd
}

func (v fromPoCommand) Execute(args []string) error {
	if len(args) != 2 {
		return NewErrorWithUsage("from-po requires two arguments: <input> <message-dir>")
	}
	if !util.Exist(vfs.OSFS, args[0]) {
		return NewErrorWithUsageF("catalog %s does not exist", args[0])
	}
	opts, err := loadCatalogOptions(nil)
	if err != nil {
		return err
	}

	sink := util.NewMessageDumpDir(args[1], opts.SkipFiles)
	if err := util.CmdFromPo(opts.Storage(), args[0], sink); err != nil {
		return NewStandardErrorF("fail to create the translated messages: %v", err)
	}
	return nil
}

var fromPoCmd = fromPoCommand{}

func init() {
	rootCmd.AddCommand(fromPoCmd.Command())
}
