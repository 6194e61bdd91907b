package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scanand/wiki/internal/adapters"
	"github.com/scanand/wiki/internal/adapters/fs"
	"github.com/scanand/wiki/internal/templates"
	"github.com/scanand/wiki/internal/usecase"
)

func newInitCommand(root *rootOptions) *cobra.Command {
	var (
		template string
		title    string
	)

	cmd := &cobra.Command{
		Use:   "init <dir>",
		Short: "Create a new wiki project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := root.output(cmd)
			service := usecase.NewInitService(adapters.NewTemplateSource(), fs.NewOSFileSystem(), out)

			result := service.InitProject(usecase.InitInput{
				ProjectDir: args[0],
				Template:   template,
				Title:      title,
			})
			if result.Error != nil {
				out.PrintError("%v", result.Error)
				return result.Error
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", templates.DefaultTemplate,
		fmt.Sprintf("project template (%s)", strings.Join(templates.Names(), ", ")))
	cmd.Flags().StringVar(&title, "title", "", "site title (default: directory name)")

	return cmd
}
