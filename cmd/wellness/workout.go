// ABOUTME: Workout command that times the fitness routine and marks exercises done.
// ABOUTME: Also adds, toggles, and reorders exercises in the session's routine.
package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/wellness/internal/forms"
	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/sequence"
	"github.com/harperreed/wellness/internal/store"
)

var (
	workoutAdd   string
	workoutMoves []string
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"fitness"},
	Short:   "Run the fitness routine",
	Long: `Run the fitness routine with a countdown per exercise. Each exercise whose
countdown finishes is marked completed.

ROUTINE EDITS:

  Edits apply before the routine starts and last until the process exits.

  --add "Plank 3"       add an exercise (name then minutes)
  --move 3:1            move the third exercise to the top (repeatable)

EXAMPLES:

  wellness workout
  wellness workout --add "Jumping Jacks 2" --move 7:1
  wellness workout list                  # Show the routine without running it`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if err := editRoutine(st); err != nil {
			return err
		}

		exercises := st.Exercises()
		items := sequence.FromExercises(exercises)
		if len(items) == 0 {
			fmt.Fprintln(out, "No exercises found.")
			return nil
		}

		fmt.Fprintf(out, "%d exercises, %s total\n", len(items), clock(sequence.Total(items)))
		finished := playSequence(cmd.Context(), out, items, func(i int) {
			if !exercises[i].Completed {
				st.ToggleExercise(exercises[i].ID)
			}
		})
		printRoutine(cmd, st.Exercises())
		if !finished {
			fmt.Fprintln(out, "Stopped.")
			return nil
		}
		color.New(color.FgGreen).Fprintln(out, "✓ Workout complete")
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the routine without running it",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := editRoutine(st); err != nil {
			return err
		}
		printRoutine(cmd, st.Exercises())
		return nil
	},
}

// editRoutine applies --add and --move to the store in flag order.
func editRoutine(s store.Store) error {
	if workoutAdd != "" {
		e, err := forms.Exercise(workoutAdd)
		if err != nil {
			return fmt.Errorf("invalid --add: %w", err)
		}
		s.SetExercises(append(slices.Clone(s.Exercises()), e))
	}
	for _, mv := range workoutMoves {
		from, to, err := parseMove(mv)
		if err != nil {
			return err
		}
		if err := s.Reorder(store.Move{List: store.CollectionExercises, From: from, To: to}); err != nil {
			return fmt.Errorf("failed to move %s: %w", mv, err)
		}
	}
	return nil
}

// parseMove reads a 1-based "from:to" pair into 0-based indexes.
func parseMove(s string) (int, int, error) {
	a, b, ok := strings.Cut(s, ":")
	from, err1 := strconv.Atoi(a)
	to, err2 := strconv.Atoi(b)
	if !ok || err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("invalid move %q (want from:to)", s)
	}
	return from - 1, to - 1, nil
}

func printRoutine(cmd *cobra.Command, exercises []models.ExerciseEntry) {
	out := cmd.OutOrStdout()
	done := color.New(color.FgGreen)
	faint := color.New(color.Faint)
	for i, e := range exercises {
		mark := "[ ]"
		if e.Completed {
			mark = done.Sprint("[✓]")
		}
		fmt.Fprintf(out, "%s %d. %s %s\n", mark, i+1, padRight(e.Name, 20), faint.Sprintf("%d min", e.Duration))
	}
}

func init() {
	workoutCmd.PersistentFlags().StringVar(&workoutAdd, "add", "", "add an exercise: \"name minutes\"")
	workoutCmd.PersistentFlags().StringArrayVar(&workoutMoves, "move", nil, "move an exercise: from:to (1-based)")
	workoutCmd.AddCommand(workoutListCmd)
	rootCmd.AddCommand(workoutCmd)
}
