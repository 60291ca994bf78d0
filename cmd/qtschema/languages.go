package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/grovetools/qtschema/pkg/langs"
)

var languagesValues bool

var languagesCmd = &cobra.Command{
	Use:     "languages",
	Aliases: []string{"langs"},
	Short:   "List supported target languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Padding(0, 1)

		rows := make([][]string, 0)
		for _, name := range langs.Names() {
			lang, err := langs.Lookup(name)
			if err != nil {
				return err
			}
			rows = append(rows, []string{
				langStyle.Render(name),
				langs.Describe(name),
				strings.Join(langs.BuildArgs(lang), " "),
			})
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
			Headers("Language", "Description", "Default flags").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return lipgloss.NewStyle().Padding(0, 1)
			})
		fmt.Fprintln(cmd.OutOrStdout(), t.String())

		if languagesValues {
			values := langs.Values()
			kinds := make([]string, 0, len(values))
			for kind := range values {
				kinds = append(kinds, kind)
			}
			sort.Strings(kinds)
			for _, kind := range kinds {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", kind, strings.Join(values[kind], ", "))
			}
		}
		return nil
	},
}

func init() {
	languagesCmd.Flags().BoolVar(&languagesValues, "values", false, "Also list accepted values of enumerated options")
}
