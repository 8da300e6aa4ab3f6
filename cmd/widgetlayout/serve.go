package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(flags *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the admin layout API",
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := flags.build()
			if err != nil {
				return err
			}
			defer module.Module.Close(context.Background())

			mux := http.NewServeMux()
			if err := module.Module.RegisterRoutes(mux); err != nil {
				return err
			}

			listen := module.Module.Container().Config.HTTP.Addr
			if addr != "" {
				listen = addr
			}
			server := &http.Server{
				Addr:              listen,
				Handler:           mux,
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				module.Logger.Info("widgets.cli.serve.listening", "addr", listen)
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-cmd.Context().Done():
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				module.Logger.Info("widgets.cli.serve.shutdown")
				if err := server.Shutdown(ctx); err != nil {
					return err
				}
				return cmd.Context().Err()
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to http.addr from config)")
	return cmd
}
