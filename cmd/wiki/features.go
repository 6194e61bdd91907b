package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scanand/wiki/internal/core"
	"github.com/scanand/wiki/internal/features"
)

func newFeaturesCommand(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "features",
		Short: "Print the homepage feature list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig(cmd)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch format {
			case "html":
				resolve := func(icon string) string { return core.WithBase(cfg.BaseURL, icon) }
				if err := features.List(cfg.Features, features.WithAssetResolver(resolve)).Render(cmd.Context(), w); err != nil {
					return err
				}
				_, err := fmt.Fprintln(w)
				return err
			case "text":
				for i, item := range cfg.Features {
					if _, err := fmt.Fprintf(w, "%d. %s\n   %s\n   %s\n", i+1, item.Title, item.Icon, item.Description); err != nil {
						return err
					}
				}
				return nil
			default:
				return fmt.Errorf("unknown format %q (want text or html)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or html")

	return cmd
}
