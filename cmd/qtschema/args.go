package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grovetools/qtschema/pkg/langs"
	"github.com/grovetools/qtschema/pkg/quicktype"
)

var argsFull bool

var argsCmd = &cobra.Command{
	Use:   "args [language...]",
	Short: "Print the quicktype flags for each target",
	Long: `Print the language-specific quicktype flags for the named languages (with
default options) or, when none are named, for every target in the project file.
With --full the complete invocation is shown, using placeholder temporary paths.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := loadProject()
		if err != nil {
			return err
		}

		var selections []langs.Language
		for _, name := range args {
			lang, err := langs.Lookup(name)
			if err != nil {
				return err
			}
			selections = append(selections, lang)
		}
		if len(args) == 0 {
			for _, t := range project.Targets {
				lang, err := t.Selection()
				if err != nil {
					return err
				}
				selections = append(selections, lang)
			}
		}

		baseName := project.BaseName
		if baseName == "" {
			baseName = "<base-name>"
		}
		var opts []quicktype.Option
		if len(project.OverrideArgs) > 0 {
			opts = append(opts, quicktype.WithOverrideArgs(project.OverrideArgs...))
		}
		qt := quicktype.NewContext(baseName, opts...)

		out := cmd.OutOrStdout()
		for _, lang := range selections {
			flags := langs.BuildArgs(lang)
			if argsFull {
				flags = qt.Args(lang, "<schema-path>", "<output-path>")
			}
			fmt.Fprintf(out, "%s\t%s\n", langStyle.Render(lang.Name()), strings.Join(flags, " "))
		}
		return nil
	},
}

func init() {
	argsCmd.Flags().BoolVar(&argsFull, "full", false, "Print the complete quicktype argument list")
}
