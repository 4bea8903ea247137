// List command: the fault category reference table.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/groundwork/pkg/fault"
)

// listEntry pairs a category name with its default fault for JSON output.
type listEntry struct {
	Category string `json:"category"`
	fault.Fault
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the fault category reference table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout(), jsonOutput())
		},
	}
}

func runList(out io.Writer, asJSON bool) error {
	entries := make([]listEntry, 0, len(fault.Categories()))
	for _, category := range fault.Categories() {
		f, err := fault.New(category)
		if err != nil {
			return fmt.Errorf("build category %q: %w", category, err)
		}
		entries = append(entries, listEntry{Category: category, Fault: f})
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tMESSAGE\tCODE\tLEVEL\tHINT\tSOURCE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Category, e.Message, optInt(e.Code), e.Level, optStr(e.Hint), optStr(e.Source))
	}
	return w.Flush()
}

// optInt renders an optional code for table output.
func optInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

// optStr renders an optional text field for table output.
func optStr(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}
