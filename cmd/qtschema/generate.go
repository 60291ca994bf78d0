package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var generateFlags sessionFlags

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")).Bold(true)
	langStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run quicktype for every configured target",
	Long: `Merge the configured schema fragments and run quicktype once per target.
Targets without an output path are printed to stdout, each preceded by a
"--- <language>" header.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := generateFlags.open()
		if err != nil {
			return err
		}
		if len(s.targets) == 0 {
			return errors.New("no targets: add targets to the project file or pass --lang")
		}
		if s.qt.Schema().Len() == 0 {
			return errors.New("no schema fragments: add schemas to the project file or pass --schema")
		}

		ctx := cmd.Context()
		for _, t := range s.targets {
			code, err := s.qt.Finish(ctx, t.lang)
			if err != nil {
				return fmt.Errorf("failed to generate %s: %w", t.lang.Name(), err)
			}

			if t.output == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "--- %s\n%s\n", t.lang.Name(), code)
				continue
			}
			if err := os.MkdirAll(filepath.Dir(t.output), 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			if err := os.WriteFile(t.output, []byte(code), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", t.output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s %s\n",
				successStyle.Render("✓"),
				langStyle.Render(t.lang.Name()),
				faintStyle.Render("→ "+t.output))
		}
		return nil
	},
}

func addSessionFlags(cmd *cobra.Command, f *sessionFlags) {
	cmd.Flags().StringVarP(&f.baseName, "base-name", "t", "", "Name of the top-level generated type (overrides base_name)")
	cmd.Flags().StringArrayVarP(&f.schemas, "schema", "s", nil, "Additional schema fragment file (repeatable)")
	cmd.Flags().BoolVar(&f.validate, "validate", false, "Compile the merged schema before running quicktype")
	cmd.Flags().BoolVar(&f.uuidNames, "uuid-names", false, "Use random UUIDs instead of the process ID in temporary file names")
}

func init() {
	addSessionFlags(generateCmd, &generateFlags)
	generateCmd.Flags().StringArrayVarP(&generateFlags.languages, "lang", "l", nil, "Generate this language with default options instead of the configured targets (repeatable)")
}
