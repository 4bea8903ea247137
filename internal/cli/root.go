// Package cli implements the faults command-line interface, the executable
// form of the fault taxonomy's reference table.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/groundwork/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// systemError marks a failure of the CLI's own machinery (config directory
// creation, config reads) as opposed to bad user input, so Execute can
// report it with the system exit code.
type systemError struct {
	err error
}

func (e systemError) Error() string { return e.err.Error() }

func (e systemError) Unwrap() error { return e.err }

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
}

var flags rootFlags

// configFormat holds the output format loaded from config.yaml. Set by
// PersistentPreRunE so all subcommands can use it.
var configFormat string

// NewRootCmd creates the top-level "faults" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "faults",
		Short: "Reference tool for the groundwork fault taxonomy",
		Long: "Faults prints the groundwork fault category reference table and\n" +
			"previews individual categories with field overrides applied.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := paths.ResolveConfigDir(flags.configDir)
			if err != nil {
				return systemError{fmt.Errorf("resolve config dir: %w", err)}
			}

			format, err := loadFormat(configDir)
			if err != nil {
				if errors.Is(err, ErrFormatUnknown) {
					// A bad format value is a user-correctable config
					// mistake, not a machinery failure.
					return err
				}
				return systemError{err}
			}

			configFormat = format
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newShowCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code:
// 0 on success, 1 on user error, 2 on system error.
func Execute() {
	os.Exit(exitCode(NewRootCmd().Execute()))
}

// exitCode maps the outcome of a command run to its exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var sys systemError
	if errors.As(err, &sys) {
		return exitSysError
	}
	return exitUserError
}

// jsonOutput reports whether commands should emit JSON: the --json flag
// wins, otherwise config.yaml decides.
func jsonOutput() bool {
	return flags.jsonMode || configFormat == formatJSON
}
