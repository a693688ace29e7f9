package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	groupAnnotationKey = "group"

	groupCatalog = "Catalog options"
	groupGeneral = "General options"
)

// groupedUsageTemplate is a trimmed cobra usage template, with local
// flags listed by group.
const groupedUsageTemplate = `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableLocalFlags}}

{{flagUsagesByGroup . | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`

// setFlagGroup puts flag name of cmd under the group section of the usage.
func setFlagGroup(cmd *cobra.Command, name, group string) {
	_ = cmd.Flags().SetAnnotation(name, groupAnnotationKey, []string{group})
}

// flagUsagesByGroup formats local flags under one section per "group"
// annotation, in the order groups are first seen. Flags without a group,
// such as --help, go to "General options".
func flagUsagesByGroup(cmd *cobra.Command) string {
	var (
		order []string
		sets  = make(map[string]*pflag.FlagSet)
	)

	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		group := groupGeneral
		if g := f.Annotations[groupAnnotationKey]; len(g) > 0 {
			group = g[0]
		}
		set, ok := sets[group]
		if !ok {
			set = pflag.NewFlagSet(group, pflag.ContinueOnError)
			set.SortFlags = false
			sets[group] = set
			order = append(order, group)
		}
		set.AddFlag(f)
	})

	sections := make([]string, 0, len(order))
	for _, group := range order {
		sections = append(sections, fmt.Sprintf("%s:\n%s", group, sets[group].FlagUsages()))
	}
	return strings.Join(sections, "\n")
}

func init() {
	cobra.AddTemplateFunc("flagUsagesByGroup", flagUsagesByGroup)
}
