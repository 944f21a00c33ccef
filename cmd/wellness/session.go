// ABOUTME: Shared one-second scheduling for the headless timer commands.
// ABOUTME: Wraps timer.Ticker so tests can shorten the interval.
package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/harperreed/wellness/internal/sequence"
	"github.com/harperreed/wellness/internal/timer"
)

// tickInterval is one logical second.
var tickInterval = time.Second

// runTicks calls fn once per tick until it returns false or ctx ends.
// It reports whether the run finished on its own.
func runTicks(ctx context.Context, fn func() bool) bool {
	tk := timer.New(timer.WithInterval(tickInterval))
	finished := false
	tk.Start(ctx, func() bool {
		if fn() {
			return true
		}
		finished = true
		return false
	})
	tk.Wait()
	tk.Stop()
	return finished
}

// playSequence runs items in order, printing each item as it loads.
// done is called with the index of every item whose countdown ran out.
func playSequence(ctx context.Context, out io.Writer, items []sequence.Item, done func(i int)) bool {
	if len(items) == 0 {
		return true
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	announce := func(s sequence.State) {
		it := items[s.Cursor]
		bold.Fprintf(out, "▶ %d/%d %s", s.Cursor+1, len(items), it.Name)
		faint.Fprintf(out, " (%s)\n", clock(it.Seconds))
	}

	s := sequence.Start(items)
	announce(s)
	return runTicks(ctx, func() bool {
		prev := s.Cursor
		s = sequence.Tick(s, items)
		if s.Cursor != prev {
			if done != nil {
				done(prev)
			}
			if s.Active() {
				announce(s)
			}
		}
		return s.Active()
	})
}

// clock formats seconds as M:SS.
func clock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
