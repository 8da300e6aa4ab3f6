package main

import (
	"fmt"

	"github.com/spf13/cobra"

	widgetlayout "github.com/goliatone/go-widgetlayout"
	"github.com/goliatone/go-widgetlayout/cmd/widgetlayout/internal/bootstrap"
)

func newRefreshCommand(flags *rootFlags) *cobra.Command {
	var (
		invalidate bool
		areas      []string
	)

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Rebuild the layout, optionally dropping cached area content",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := widgetlayout.RefreshLayoutCommand{Invalidate: invalidate}
			for _, raw := range areas {
				key, err := bootstrap.ParseAreaKey(raw)
				if err != nil {
					return err
				}
				msg.Areas = append(msg.Areas, key)
			}

			module, err := flags.build()
			if err != nil {
				return err
			}
			defer module.Module.Close(cmd.Context())

			if err := module.Module.Refresh(cmd.Context(), msg); err != nil {
				return err
			}
			result := module.Module.Container().LastRefresh()
			fmt.Fprintf(cmd.OutOrStdout(), "areas=%d templates=%d widgets=%d\n", result.Areas, result.Templates, result.Widgets)
			return nil
		},
	}

	cmd.Flags().BoolVar(&invalidate, "invalidate", false, "drop cached area content before rebuilding")
	cmd.Flags().StringArrayVar(&areas, "area", nil, "template/location of an area to invalidate (repeatable)")
	return cmd
}
