package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newDumpCommand(flags *rootFlags) *cobra.Command {
	var (
		section string
		pretty  bool
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the layout payload as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := flags.build()
			if err != nil {
				return err
			}
			defer module.Module.Close(cmd.Context())

			payload, err := module.Module.Layout().Get(cmd.Context())
			if err != nil {
				return err
			}

			var value any
			switch section {
			case "", "layout":
				value = payload
			case "areas":
				value = payload.Areas
			case "templates":
				value = payload.Templates
			case "widgets":
				value = payload.AvailableWidgets
			default:
				return fmt.Errorf("unknown section %q (layout, areas, templates, widgets)", section)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(value)
		},
	}

	cmd.Flags().StringVarP(&section, "section", "s", "layout", "payload section to print: layout, areas, templates or widgets")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	return cmd
}
