package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/scanand/wiki"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand(root *rootOptions) *cobra.Command {
	var (
		addr  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the site and serve it over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := root.output(cmd)

			cfg, err := root.loadConfig(cmd)
			if err != nil {
				out.PrintError("%v", err)
				return err
			}

			app := wiki.New(cfg, wiki.WithOutput(out), wiki.WithDev(watch))
			if err := app.Build(cmd.Context()); err != nil {
				out.PrintError("%v", err)
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Addr:              addr,
				Handler:           app.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				out.PrintSuccess("Serving %s on http://localhost%s%s", app.OutDir(), addr, cfg.BaseURL)
				if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})
			if watch {
				g.Go(func() error {
					out.PrintStep("Watching %s for changes", cfg.Build.SourceDir)
					return app.Watch(ctx, cfg.Build.SourceDir)
				})
			}

			if err := g.Wait(); err != nil {
				out.PrintError("%v", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":3000", "listen address")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "rebuild and live reload on changes")

	return cmd
}
