// ABOUTME: Install-skill command that writes the wellness assistant skill.
// ABOUTME: Embeds SKILL.md and installs it to ~/.claude/skills/wellness/.
package main

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

//go:embed skill/SKILL.md
var skillFS embed.FS

var skillSkipConfirm bool

var installSkillCmd = &cobra.Command{
	Use:   "install-skill",
	Short: "Install the wellness assistant skill",
	Long: `Install the wellness skill for AI assistants that read ~/.claude/skills.

The skill describes the MCP tools served by 'wellness mcp' so an assistant
can log entries and read the daily summary in context.`,
	Annotations: map[string]string{skipStoreAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		return installSkill(cmd.OutOrStdout(), cmd.InOrStdin(), home, skillSkipConfirm)
	},
}

// skillPath is where the skill lives under home.
func skillPath(home string) string {
	return filepath.Join(home, ".claude", "skills", "wellness", "SKILL.md")
}

// installSkill writes the embedded skill below home, asking first unless yes.
func installSkill(out io.Writer, in io.Reader, home string, yes bool) error {
	path := skillPath(home)

	fmt.Fprintln(out, "This will install the wellness skill, letting an assistant:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  • Log mood, water, sleep, meals and weight")
	fmt.Fprintln(out, "  • Write and search journal entries")
	fmt.Fprintln(out, "  • Check today's summary")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Destination:\n  %s\n\n", path)

	if _, err := os.Stat(path); err == nil {
		fmt.Fprintln(out, "Note: A skill file already exists and will be overwritten.")
		fmt.Fprintln(out)
	}

	if !yes {
		fmt.Fprint(out, "Install the wellness skill? [y/N] ")
		response, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read response: %w", err)
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(out, "Installation canceled.")
			return nil
		}
	}

	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		return fmt.Errorf("failed to read embedded skill: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create skill directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write skill file: %w", err)
	}

	color.New(color.FgGreen).Fprintln(out, "✓ Installed wellness skill")
	return nil
}

func init() {
	installSkillCmd.Flags().BoolVarP(&skillSkipConfirm, "yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(installSkillCmd)
}
