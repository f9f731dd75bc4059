package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .designdiff.yaml config file",
	Long:  `Create a .designdiff.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".designdiff.yaml"); err == nil && !force {
			return fmt.Errorf(".designdiff.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".designdiff.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .designdiff.yaml")
		return nil
	},
}

const defaultConfig = `# designdiff configuration
# Docs: https://github.com/yacobolo/designdiff

# Components to review. Each name must have a spec artifact; a missing
# implementation is reported, not fatal.
components:
  - Button
  - Card

# Shared settings
verbose: false

# Review settings
check:
  spec-dir: design/specs          # <Component>.json / .yaml per component
  tokens: design/tokens.json      # flat token-name -> value mapping
  impl:
    - "src/**/*.{jsx,tsx,html}"
  output-format: issues           # issues | summary | full | json | markdown
  out: ""                         # optional JSON report file
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
