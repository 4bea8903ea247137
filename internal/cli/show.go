// Show command: preview one fault category with overrides applied.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/groundwork/pkg/fault"
)

// showFlags holds the per-field override flags for the show command.
type showFlags struct {
	message string
	code    int
	level   string
	hint    string
	source  string
}

// showEntry is the JSON shape of a previewed fault.
type showEntry struct {
	Category string `json:"category"`
	fault.Fault
	Render string `json:"render"`
	Hash   string `json:"hash"`
}

func newShowCmd() *cobra.Command {
	var overrides showFlags

	cmd := &cobra.Command{
		Use:   "show <category>",
		Short: "Preview a fault category, optionally overriding fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := overrideOptions(cmd, overrides)
			if err != nil {
				return err
			}

			f, err := fault.New(args[0], opts...)
			if err != nil {
				return fmt.Errorf("%w (valid categories: %v)", err, fault.Categories())
			}

			return runShow(cmd.OutOrStdout(), args[0], f, jsonOutput())
		},
	}

	cmd.Flags().StringVar(&overrides.message, "message", "", "override the default message")
	cmd.Flags().IntVar(&overrides.code, "code", 0, "override the default code")
	cmd.Flags().StringVar(&overrides.level, "level", "", "override the default severity level")
	cmd.Flags().StringVar(&overrides.hint, "hint", "", "override the default hint")
	cmd.Flags().StringVar(&overrides.source, "source", "", "override the default origin tag")

	return cmd
}

// overrideOptions converts the flags the user actually set into fault
// options.
func overrideOptions(cmd *cobra.Command, overrides showFlags) ([]fault.Option, error) {
	var opts []fault.Option
	if cmd.Flags().Changed("message") {
		opts = append(opts, fault.WithMessage(overrides.message))
	}
	if cmd.Flags().Changed("code") {
		opts = append(opts, fault.WithCode(overrides.code))
	}
	if cmd.Flags().Changed("level") {
		level := fault.Level(overrides.level)
		if !level.Valid() {
			return nil, fmt.Errorf("invalid level %q (valid: %s, %s, %s, %s)",
				overrides.level, fault.LevelInfo, fault.LevelWarning, fault.LevelError, fault.LevelCritical)
		}
		opts = append(opts, fault.WithLevel(level))
	}
	if cmd.Flags().Changed("hint") {
		opts = append(opts, fault.WithHint(overrides.hint))
	}
	if cmd.Flags().Changed("source") {
		opts = append(opts, fault.WithSource(overrides.source))
	}
	return opts, nil
}

func runShow(out io.Writer, category string, f fault.Fault, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(showEntry{
			Category: category,
			Fault:    f,
			Render:   f.String(),
			Hash:     fmt.Sprintf("%#x", f.Hash()),
		})
	}

	fmt.Fprintln(out, f.Error())
	fmt.Fprintf(out, "  category: %s\n", category)
	fmt.Fprintf(out, "  message:  %s\n", f.Message)
	fmt.Fprintf(out, "  code:     %s\n", optInt(f.Code))
	fmt.Fprintf(out, "  level:    %s\n", f.Level)
	fmt.Fprintf(out, "  hint:     %s\n", optStr(f.Hint))
	fmt.Fprintf(out, "  source:   %s\n", optStr(f.Source))
	fmt.Fprintf(out, "  render:   %s\n", f.String())
	fmt.Fprintf(out, "  hash:     %#x\n", f.Hash())
	return nil
}
