package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-widgetlayout/cmd/widgetlayout/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

type rootFlags struct {
	configPath   string
	fixturesPath string
	verbose      bool
}

func (f *rootFlags) build() (*bootstrap.Module, error) {
	module, err := moduleBuilder(bootstrap.Options{
		ConfigPath:   f.configPath,
		FixturesPath: f.fixturesPath,
		Verbose:      f.verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("bootstrap module: %w", err)
	}
	return module, nil
}

func newRootCommand(out io.Writer) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "widgetlayout",
		Short:         "Inspect and serve the admin widget layout",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "path to a YAML or JSON config file")
	root.PersistentFlags().StringVar(&flags.fixturesPath, "fixtures", "", "YAML fixtures seeding groups and placements")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newDumpCommand(flags))
	root.AddCommand(newServeCommand(flags))
	root.AddCommand(newHooksCommand(flags))
	root.AddCommand(newRefreshCommand(flags))

	return root
}
