package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newHooksCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "hooks",
		Short: "List filter chains and the plugins registered on them",
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := flags.build()
			if err != nil {
				return err
			}
			defer module.Module.Close(cmd.Context())

			registry := module.Module.Hooks()
			names := registry.Names()
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no filters registered")
				return nil
			}
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, strings.Join(registry.Plugins(name), ", "))
			}
			return nil
		},
	}
}
