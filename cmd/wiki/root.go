package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/scanand/wiki"
	"github.com/scanand/wiki/internal/adapters/cli"
)

const defaultConfigFile = "wiki.yaml"

type rootOptions struct {
	configPath string
	noColor    bool
	verbose    bool
}

// NewRootCommand creates the wiki command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "wiki",
		Short:         "Build and serve a markdown documentation site",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfigFile, "site config file")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")

	cmd.AddCommand(newBuildCommand(opts))
	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newFeaturesCommand(opts))
	cmd.AddCommand(newInitCommand(opts))
	cmd.AddCommand(newDoctorCommand(opts))

	return cmd
}

func (o *rootOptions) output(cmd *cobra.Command) *cli.Output {
	return cli.NewOutputTo(cmd.OutOrStdout(), cmd.ErrOrStderr(), !o.noColor && !color.NoColor)
}

// loadConfig reads the site config. A missing default config file falls back
// to the built-in site; an explicitly named one must exist. Relative source
// and output directories are resolved against the config file's directory.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*wiki.Config, error) {
	path := o.configPath
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		slog.Debug("no site config, using defaults", "path", path)
		path = ""
	}

	cfg, err := wiki.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(o.configPath)
	cfg.Build.SourceDir = resolveDir(dir, cfg.Build.SourceDir)
	cfg.Build.OutDir = resolveDir(dir, cfg.Build.OutDir)
	return cfg, nil
}

func resolveDir(base, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}
