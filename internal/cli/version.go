// Version command for the faults CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/groundwork/pkg/groundwork"
)

const modulePath = "github.com/mesh-intelligence/groundwork"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the faults version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "faults v%s\nmodule: %s\n", groundwork.Version, modulePath)
			return nil
		},
	}
}
