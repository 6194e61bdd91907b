package main

import (
	"github.com/spf13/cobra"

	"github.com/scanand/wiki"
)

func newBuildCommand(root *rootOptions) *cobra.Command {
	var (
		outDir string
		srcDir string
		dev    bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the site into the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := root.output(cmd)

			cfg, err := root.loadConfig(cmd)
			if err != nil {
				out.PrintError("%v", err)
				return err
			}
			if srcDir != "" {
				cfg.Build.SourceDir = srcDir
			}
			if outDir != "" {
				cfg.Build.OutDir = outDir
			}

			app := wiki.New(cfg, wiki.WithOutput(out), wiki.WithDev(dev))
			if err := app.Build(cmd.Context()); err != nil {
				out.PrintError("%v", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")
	cmd.Flags().StringVarP(&srcDir, "src", "s", "", "source directory (default from config)")
	cmd.Flags().BoolVar(&dev, "dev", false, "include drafts")

	return cmd
}
