package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pmd-l10n/pmd-po-helper/cmd"
)

const (
	// Program is name for this project
	Program = "pmd-po-helper"
)

func main() {
	resp := cmd.Execute()

	if resp.Err != nil {
		errOut := resp.Cmd.ErrOrStderr()
		if resp.IsUserError() {
			fmt.Fprintf(errOut, "ERROR: %s\n\n", strings.TrimSpace(resp.Err.Error()))
			fmt.Fprint(errOut, resp.Cmd.UsageString())
		} else {
			fmt.Fprintf(errOut, "ERROR: %s\n", resp.Err)
			subCmd := strings.TrimPrefix(resp.Cmd.CommandPath(), Program+" ")
			fmt.Fprintf(errOut, "ERROR: fail to execute \"%s %s\"\n", Program, subCmd)
		}
		os.Exit(1)
	}
}
