package cmd

import (
	"fmt"
	"strings"

	"github.com/pmd-l10n/pmd-po-helper/flag"
	"github.com/pmd-l10n/pmd-po-helper/util"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-vfs"
)

type statCommand struct {
	cmd *cobra.Command
}

func (v *statCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "stat <catalog>",
		Short: "Report statistics for a translation catalog",
		Long: `Report message statistics for a catalog file:
  translated   - msgid blocks with a translation
  untranslated - msgid blocks with empty msgstr
  same         - msgid blocks where msgstr equals msgid (suspect untranslated)

With -v, also report the number of message slots, unique messages,
warnings and the size of the file.`,
		PreRun: func(cmd *cobra.Command, args []string) {
			bindCatalogFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	addEncodingFlag(v.cmd)

	v.cmd.SetUsageTemplate(groupedUsageTemplate)
	return v.cmd
}

func (v statCommand) Execute(args []string) error {
	if len(args) != 1 {
		return NewErrorWithUsage("stat requires exactly one argument: <catalog>")
	}

	catalog := args[0]
	if !util.IsFile(vfs.OSFS, catalog) {
		return NewErrorWithUsage("file does not exist:", catalog)
	}
	opts, err := loadCatalogOptions(nil)
	if err != nil {
		return err
	}

	stats, err := util.CountCatalogStats(vfs.OSFS, catalog, opts.Encoding)
	if err != nil {
		return NewStandardErrorF("%v", err)
	}

	if flag.Verbose() > 0 {
		title := fmt.Sprintf("Catalog: %s", catalog)
		fmt.Println(title)
		fmt.Println(strings.Repeat("-", len(title)))
		fmt.Printf("  translated:   %d\n", stats.Translated)
		fmt.Printf("  untranslated: %d\n", stats.Untranslated)
		fmt.Printf("  same:         %d\n", stats.Same)
		fmt.Printf("  unique:       %d\n", stats.Unique)
		fmt.Printf("  messages:     %d\n", stats.Entries)
		fmt.Printf("  warnings:     %d\n", stats.Warnings)
		fmt.Printf("  size:         %s\n", stats.HumanSize())
	} else {
		fmt.Print(util.FormatStatLine(stats))
	}

	return nil
}

var statCmd = statCommand{}

func init() {
	rootCmd.AddCommand(statCmd.Command())
}
