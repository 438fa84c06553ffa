package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/escan-mcp/internal/chain"
)

// chainsCmd lists the known networks. Any chain ID works with the
// unified API; this is the set with friendly display names.
var chainsCmd = &cobra.Command{
	Use:   "chains",
	Short: "List known chain IDs and their names",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CHAIN ID\tNAME\tTESTNET")
		for _, n := range chain.NewRegistry().All() {
			testnet := ""
			if n.Testnet {
				testnet = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", n.ChainID, n.DisplayName, testnet)
		}
		return w.Flush()
	},
}
