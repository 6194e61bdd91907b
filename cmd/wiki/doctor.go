package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/scanand/wiki/internal/usecase"
)

func newDoctorCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the site config and content without building",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := root.output(cmd)

			cfg, err := root.loadConfig(cmd)
			if err != nil {
				out.PrintError("%v", err)
				return err
			}

			result := usecase.NewDoctorService(out).Check(usecase.DoctorInput{
				Config: cfg,
				Source: os.DirFS(cfg.Build.SourceDir),
			})
			return result.Error
		},
	}
}
