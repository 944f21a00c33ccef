// ABOUTME: Stretch command that plays the stretch sequence with a countdown.
// ABOUTME: Auto-advances through each stretch and stops after the last one.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/wellness/internal/sequence"
)

var stretchFrom int

var stretchCmd = &cobra.Command{
	Use:   "stretch",
	Short: "Play the stretch sequence",
	Long: `Play the stretch sequence in order, announcing each stretch as it starts.

EXAMPLES:

  wellness stretch            # From the first stretch
  wellness stretch --from 3   # Start at the third stretch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		items := sequence.FromStretches(st.Stretches())
		if len(items) == 0 {
			fmt.Fprintln(out, "No stretches found.")
			return nil
		}
		if stretchFrom < 1 || stretchFrom > len(items) {
			return fmt.Errorf("--from must be between 1 and %d", len(items))
		}
		items = items[stretchFrom-1:]

		fmt.Fprintf(out, "%d stretches, %s total\n", len(items), clock(sequence.Total(items)))
		if !playSequence(cmd.Context(), out, items, nil) {
			fmt.Fprintln(out, "Stopped.")
			return nil
		}
		color.New(color.FgGreen).Fprintln(out, "✓ Stretch sequence complete")
		return nil
	},
}

func init() {
	stretchCmd.Flags().IntVar(&stretchFrom, "from", 1, "1-based stretch to start at")
	rootCmd.AddCommand(stretchCmd)
}
