// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Serves the session's tracker store over stdio until interrupted.
package main

import (
	"github.com/spf13/cobra"

	"github.com/harperreed/wellness/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout and works on the same in-memory
store the other commands use, seeded from sample data. Logs go to stderr
or to log_file.

CLIENT CONFIGURATION:

  {
    "mcpServers": {
      "wellness": {
        "command": "wellness",
        "args": ["mcp", "--seed", "42"]
      }
    }
  }

AVAILABLE TOOLS:

  add_mood         Record today's mood with an optional note
  add_water        Add millilitres to a day's water total
  add_sleep        Record a night's sleep
  add_meal         Record a meal with calories
  add_weight       Record a weigh-in
  add_journal      Write a tagged journal entry
  add_exercise     Append an exercise to the routine
  toggle_exercise  Flip an exercise's completed flag
  move_item        Reorder the exercise or stretch list
  list_entries     List entries from one tracker
  search_journal   Search journal text and filter by tags

AVAILABLE RESOURCES:

  wellness://summary   Today's dashboard summary
  wellness://today     Every entry dated today`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(st, mcp.WithLogger(logger))
		if err != nil {
			return err
		}
		logger.Info("mcp server starting")
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
