// ABOUTME: Breathe command that guides a breathing pattern in the terminal.
// ABOUTME: Prints each phase change and stops after a number of cycles.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/wellness/internal/breathing"
)

var (
	breathePattern string
	breatheCycles  int
	breatheList    bool
)

var breatheCmd = &cobra.Command{
	Use:   "breathe",
	Short: "Guided breathing exercise",
	Long: `Run a guided breathing exercise, one instruction per phase.

PATTERNS:

  4-7-8 Breathing   inhale 4s, hold 7s, exhale 8s
  Box Breathing     inhale 4s, hold 4s, exhale 4s, rest 4s
  Calm Breathing    inhale 5s, hold 2s, exhale 5s

  The default comes from the breathing_pattern config key.

EXAMPLES:

  wellness breathe                               # 3 cycles of the default
  wellness breathe --pattern "Box Breathing" -c 5
  wellness breathe -c 0                          # Until ctrl+c
  wellness breathe --list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if breatheList {
			for _, p := range breathing.Patterns {
				fmt.Fprintf(out, "%-16s %d-%d-%d-%d (%ds per cycle)\n",
					p.Name, p.Inhale, p.Hold1, p.Exhale, p.Hold2, p.CycleSeconds())
			}
			return nil
		}
		if breatheCycles < 0 {
			return fmt.Errorf("cycles must be zero or more, got %d", breatheCycles)
		}

		name := breathePattern
		if name == "" {
			name = cfg.BreathingPattern
		}
		pattern, err := breathing.PatternByName(name)
		if err != nil {
			return err
		}

		phase := color.New(color.FgCyan, color.Bold)
		faint := color.New(color.Faint)
		sess := breathing.NewSession(pattern)
		show := func() {
			s := sess.State()
			phase.Fprintf(out, "%-7s", s.Phase)
			faint.Fprintf(out, " %ds  cycle %d\n", s.Countdown, s.Cycles+1)
		}

		fmt.Fprintf(out, "%s\n", pattern.Name)
		sess.Start()
		show()
		finished := runTicks(cmd.Context(), func() bool {
			if sess.Tick() && (breatheCycles == 0 || sess.State().Cycles < breatheCycles) {
				show()
			}
			return breatheCycles == 0 || sess.State().Cycles < breatheCycles
		})
		cycles := sess.State().Cycles
		sess.Stop()
		logger.Debug("breathing finished", "pattern", pattern.Name, "cycles", cycles)

		if !finished {
			fmt.Fprintf(out, "Stopped after %d cycles\n", cycles)
			return nil
		}
		color.New(color.FgGreen).Fprintf(out, "✓ Completed %d cycles of %s\n", cycles, pattern.Name)
		return nil
	},
}

func init() {
	breatheCmd.Flags().StringVarP(&breathePattern, "pattern", "p", "", "breathing pattern name")
	breatheCmd.Flags().IntVarP(&breatheCycles, "cycles", "c", 3, "cycles to run (0 = until interrupted)")
	breatheCmd.Flags().BoolVar(&breatheList, "list", false, "list patterns and exit")
	rootCmd.AddCommand(breatheCmd)
}
