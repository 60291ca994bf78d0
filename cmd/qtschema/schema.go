package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	schemaFlags   sessionFlags
	schemaCompact bool
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the merged JSON Schema document",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := schemaFlags.open()
		if err != nil {
			return err
		}
		if schemaFlags.validate {
			if err := s.qt.Schema().Validate(); err != nil {
				return err
			}
		}

		var data []byte
		if schemaCompact {
			data, err = s.qt.Schema().Bytes()
		} else {
			data, err = s.qt.Schema().Indent()
		}
		if err != nil {
			return fmt.Errorf("failed to marshal schema: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	addSessionFlags(schemaCmd, &schemaFlags)
	schemaCmd.Flags().BoolVar(&schemaCompact, "compact", false, "Print without indentation")
}
