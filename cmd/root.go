// Package cmd provides CLI implementations.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/pmd-l10n/pmd-po-helper/config"
	"github.com/pmd-l10n/pmd-po-helper/flag"
	"github.com/pmd-l10n/pmd-po-helper/repository"
	"github.com/pmd-l10n/pmd-po-helper/util"
	"github.com/pmd-l10n/pmd-po-helper/version"
	log "github.com/sirupsen/logrus"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/twpayne/go-vfs"
)

// EnvPrefix is the prefix of environment variables overriding flags,
// such as PMD_PO_HELPER_STORAGE_MODE.
const EnvPrefix = "PMD_PO_HELPER"

var rootCmd = rootCommand{}

// errorWithUsage marks an error that should display command usage.
type errorWithUsage struct{ msg string }

func (e errorWithUsage) Error() string { return e.msg }

// NewErrorWithUsage creates an error that should display usage (e.g. argument/flag errors).
func NewErrorWithUsage(a ...interface{}) error {
	return errorWithUsage{msg: fmt.Sprintln(a...)}
}

// NewErrorWithUsageF creates an error that should display usage.
func NewErrorWithUsageF(format string, a ...interface{}) error {
	return errorWithUsage{msg: fmt.Sprintf(format, a...)}
}

// NewStandardError creates an error that should not display usage.
func NewStandardError(a ...interface{}) error {
	return fmt.Errorf("%s", fmt.Sprint(a...))
}

// NewStandardErrorF creates an error that should not display usage.
func NewStandardErrorF(format string, a ...interface{}) error {
	return fmt.Errorf(format, a...)
}

// IsErrorWithUsage returns true if the error should display command usage.
func IsErrorWithUsage(err error) bool {
	_, ok := err.(errorWithUsage)
	return ok
}

// Response wraps error for subcommand, and is returned from cmd package.
type Response struct {
	// Err contains error returned from the subcommand executed.
	Err error

	// Cmd contains the command object.
	Cmd *cobra.Command
}

// IsUserError returns true if the command failed because of bad arguments.
func (v Response) IsUserError() bool {
	return IsErrorWithUsage(v.Err)
}

type rootCommand struct {
	cmd *cobra.Command
}

func (v *rootCommand) initLog() {
	f := new(log.TextFormatter)
	f.DisableTimestamp = true
	f.DisableLevelTruncation = true
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		f.DisableColors = true
	}
	log.SetFormatter(f)
	verbose := flag.Verbose()
	quiet := flag.Quiet()
	if verbose == 1 {
		log.SetLevel(log.DebugLevel)
	} else if verbose > 1 {
		log.SetLevel(log.TraceLevel)
	} else if quiet == 1 {
		log.SetLevel(log.WarnLevel)
	} else if quiet > 1 {
		log.SetLevel(log.ErrorLevel)
	}
}

func (v *rootCommand) initRepository() {
	repository.OpenRepository("")
}

// initEnv loads an optional .env file, so settings such as
// PMD_PO_HELPER_ENCODING can be kept next to the translation project.
func (v *rootCommand) initEnv() {
	envFile := filepath.Join(repository.WorkDirOrCwd(), ".env")
	if util.IsFile(vfs.OSFS, envFile) {
		if err := godotenv.Load(envFile); err != nil {
			log.Warnf("fail to load %s: %v", envFile, err)
		} else {
			log.Debugf("loaded environment from %s", envFile)
		}
	}
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Command represents the base command when called without any subcommands
func (v *rootCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "pmd-po-helper",
		Short: "Convert game message resources to and from translation catalogs",
		// Let main.go handle error output; do not show usage on every error
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	v.cmd.Version = version.Version
	v.cmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)
	v.cmd.PersistentFlags().CountP("quiet",
		"q",
		"quiet mode")
	v.cmd.PersistentFlags().CountP("verbose",
		"v",
		"verbose mode")
	v.cmd.PersistentFlags().String("config",
		"",
		"load configuration from this file (overrides ~/"+config.UserConfigName+
			" and repo "+config.RepoConfigName+")")

	_ = viper.BindPFlag(
		"quiet",
		v.cmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag(
		"verbose",
		v.cmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag(
		"config",
		v.cmd.PersistentFlags().Lookup("config"))

	return v.cmd
}

func (v rootCommand) Execute(args []string) error {
	return NewErrorWithUsage("run 'pmd-po-helper -h' for help")
}

func (v *rootCommand) AddCommand(cmds ...*cobra.Command) {
	v.Command().AddCommand(cmds...)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() Response {
	var (
		resp Response
	)

	// Ensure all commands use SilenceErrors so main.go handles error output.
	setSilenceErrorsRecursive(rootCmd.Command())

	c, err := rootCmd.Command().ExecuteC()
	resp.Err = err
	resp.Cmd = c
	return resp
}

func init() {
	cobra.OnInitialize(rootCmd.initLog)
	cobra.OnInitialize(rootCmd.initRepository)
	cobra.OnInitialize(rootCmd.initEnv)
}

// setSilenceErrorsRecursive sets SilenceErrors on c and all its descendants.
func setSilenceErrorsRecursive(c *cobra.Command) {
	c.SilenceErrors = true
	for _, child := range c.Commands() {
		setSilenceErrorsRecursive(child)
	}
}

// loadCatalogOptions merges the config file with the catalog flags and the
// unique phrases given on the command line.
func loadCatalogOptions(unique []string) (*util.CatalogOptions, error) {
	cfg, err := config.LoadConfig(flag.ConfigFile())
	if err != nil {
		return nil, NewStandardErrorF("fail to load configuration: %v", err)
	}
	opts, err := util.NewCatalogOptions(cfg, unique, flag.StorageMode(), flag.Encoding())
	if err != nil {
		return nil, NewErrorWithUsageF("%v", err)
	}
	return opts, nil
}
