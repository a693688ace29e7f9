package cmd

import (
	"github.com/pmd-l10n/pmd-po-helper/util"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-vfs"
)

type toPotCommand struct {
	cmd *cobra.Command
}

func (v *toPotCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "to-pot [--unique <phrase>]... <message-dir> <output>",
		Short: "Create translation catalog from message dumps",
		Long: `Read the message dumps (one <source_file>.json per message resource) in
<message-dir> and write a translation catalog to <output>.

Messages with the same text are merged into one msgid, with one "#." comment
per place they are used in. Messages containing one of the unique phrases
(case insensitive) are never merged, since their translation may depend on
the context.

With --storage-mode=file, <output> is a single catalog file. With
--storage-mode=folder, <output> is a directory with one catalog per
resource.`,
		PreRun: func(cmd *cobra.Command, args []string) {
			bindCatalogFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	fs := v.cmd.Flags()
	fs.SortFlags = false
	fs.StringArray(flagUnique, nil,
		"phrase which could have multiple meanings, can be given more than once")
	setFlagGroup(v.cmd, flagUnique, groupCatalog)
	addStorageModeFlag(v.cmd, "write a single catalog 'file' or a 'folder' of catalogs (default from config: file)")

	v.cmd.SetUsageTemplate(groupedUsageTemplate)
	return v.cmd
}

func (v toPotCommand) Execute(args []string) error {
	if len(args) != 2 {
		return NewErrorWithUsage("to-pot requires two arguments: <message-dir> <output>")
	}
	if !util.IsDir(vfs.OSFS, args[0]) {
		return NewErrorWithUsageF("message directory %s does not exist", args[0])
	}
	// read from the flag set: viper does not decode string arrays
	unique, err := v.cmd.Flags().GetStringArray(flagUnique)
	if err != nil {
		return NewErrorWithUsageF("%v", err)
	}
	opts, err := loadCatalogOptions(unique)
	if err != nil {
		return err
	}

	source := util.NewMessageDumpDir(args[0], opts.SkipFiles)
	if err := util.CmdToPot(source, opts.Storage(), args[1]); err != nil {
		return NewStandardErrorF("fail to create the catalog: %v", err)
	}
	return nil
}

var toPotCmd = toPotCommand{}

func init() {
	rootCmd.AddCommand(toPotCmd.Command())
}
