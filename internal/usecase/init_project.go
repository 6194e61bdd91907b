package usecase

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strconv"

	"github.com/scanand/wiki/internal/templates"
)

type InitInput struct {
	ProjectDir string
	Template   string
	Title      string
}

type InitOutput struct {
	Success bool
	Files   []string
	Error   error
}

type InitService struct {
	templates TemplateSource
	fs        FileSystem
	cli       CLIOutput
}

func NewInitService(templates TemplateSource, fs FileSystem, cli CLIOutput) *InitService {
	return &InitService{
		templates: templates,
		fs:        fs,
		cli:       cli,
	}
}

func (s *InitService) InitProject(input InitInput) InitOutput {
	s.cli.PrintHeader("Wiki Init")

	if input.Template == "" {
		input.Template = templates.DefaultTemplate
	}

	if s.fs.FileExists(input.ProjectDir) {
		entries, err := s.fs.ReadDir(input.ProjectDir)
		if err != nil {
			return InitOutput{
				Success: false,
				Error:   fmt.Errorf("failed to read directory: %w", err),
			}
		}

		if len(entries) > 0 {
			return InitOutput{
				Success: false,
				Error:   fmt.Errorf("directory is not empty: %s", input.ProjectDir),
			}
		}
	}

	source, err := s.templates.GetTemplate(input.Template)
	if err != nil {
		return InitOutput{
			Success: false,
			Error:   fmt.Errorf("template %q: %w", input.Template, err),
		}
	}

	name := templates.DeriveProjectName(input.ProjectDir)
	title := input.Title
	if title == "" {
		title = name
	}
	data := templates.TemplateData{Title: strconv.Quote(title), Name: name}

	s.cli.PrintStep("Creating %s from the %s template", input.ProjectDir, input.Template)

	var files []string
	err = iofs.WalkDir(source, ".", func(p string, d iofs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		content, err := iofs.ReadFile(source, p)
		if err != nil {
			return err
		}
		rel, isTemplate := templates.ProcessFilename(p)
		target := filepath.Join(input.ProjectDir, filepath.FromSlash(rel))

		if err := s.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		if err := s.fs.WriteFile(target, templates.ProcessContent(content, isTemplate, data), 0644); err != nil {
			return err
		}
		s.cli.PrintFile(rel)
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return InitOutput{
			Success: false,
			Error:   fmt.Errorf("failed to write project: %w", err),
		}
	}

	s.cli.PrintSuccess("Project initialized")
	s.cli.PrintDone("Next: cd %s && wiki serve --watch", input.ProjectDir)
	return InitOutput{
		Success: true,
		Files:   files,
	}
}
