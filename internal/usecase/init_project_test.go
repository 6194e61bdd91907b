package usecase

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanand/wiki/internal/adapters"
	"github.com/scanand/wiki/internal/adapters/cli"
	"github.com/scanand/wiki/internal/adapters/fs"
	"github.com/scanand/wiki/internal/page"
	"github.com/scanand/wiki/internal/site"
	"github.com/scanand/wiki/internal/templates"
)

func newInitService() (*InitService, *bytes.Buffer) {
	var out bytes.Buffer
	return NewInitService(adapters.NewTemplateSource(), fs.NewOSFileSystem(), cli.NewOutputTo(&out, &out, false)), &out
}

func TestInitProjectThenBuild(t *testing.T) {
	for _, name := range templates.Names() {
		t.Run(name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "team-notes")
			service, _ := newInitService()

			result := service.InitProject(InitInput{ProjectDir: dir, Template: name, Title: `Team "notes"`})
			require.NoError(t, result.Error)
			assert.Contains(t, result.Files, "wiki.yaml")
			assert.Contains(t, result.Files, "docs/intro.md")

			cfg, err := site.Load(filepath.Join(dir, "wiki.yaml"))
			require.NoError(t, err)
			assert.Equal(t, `Team "notes"`, cfg.Title)
			assert.Equal(t, "team-notes", cfg.ProjectName)

			renderer, err := page.NewRenderer()
			require.NoError(t, err)
			var out bytes.Buffer
			build := NewBuildService(renderer, fs.NewOSFileSystem(), cli.NewOutputTo(&out, &out, false))

			outDir := filepath.Join(dir, cfg.Build.OutDir)
			built := build.BuildSite(context.Background(), BuildInput{
				Config: cfg,
				Source: os.DirFS(dir),
				OutDir: outDir,
			})
			require.NoError(t, built.Error, out.String())
			assert.FileExists(t, filepath.Join(outDir, "docs", "intro", "index.html"))
		})
	}
}

func TestInitProjectClassicRendersTemplates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "notes")
	service, _ := newInitService()

	require.NoError(t, service.InitProject(InitInput{ProjectDir: dir}).Error)

	post, err := os.ReadFile(filepath.Join(dir, "blog", "2024-01-01-welcome.md"))
	require.NoError(t, err)
	assert.Contains(t, string(post), "authors: [notes]")
	assert.NoFileExists(t, filepath.Join(dir, "blog", "2024-01-01-welcome.md.tmpl"))
}

func TestInitProjectRejectsNonEmptyDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hi"), 0644))
	service, _ := newInitService()

	result := service.InitProject(InitInput{ProjectDir: dir})
	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "not empty")
}

func TestInitProjectUnknownTemplate(t *testing.T) {
	service, _ := newInitService()

	result := service.InitProject(InitInput{ProjectDir: t.TempDir(), Template: "spa"})
	require.ErrorIs(t, result.Error, templates.ErrInvalidTemplate)
}
