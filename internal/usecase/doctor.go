package usecase

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"path"
	"strings"

	"github.com/scanand/wiki/internal/content"
	"github.com/scanand/wiki/internal/site"
)

var ErrUnhealthy = errors.New("project has problems")

type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

type Problem struct {
	Severity Severity
	Message  string
}

type DoctorInput struct {
	Config *site.Config
	Source iofs.FS
}

type DoctorOutput struct {
	Problems []Problem
	Error    error
}

type DoctorService struct {
	cli CLIOutput
}

func NewDoctorService(cli CLIOutput) *DoctorService {
	return &DoctorService{cli: cli}
}

// Check inspects a project without writing anything: config, content and the
// static files the config refers to.
func (s *DoctorService) Check(input DoctorInput) DoctorOutput {
	s.cli.PrintHeader("Wiki Doctor")

	var problems []Problem
	report := func(sev Severity, format string, args ...any) {
		problems = append(problems, Problem{Severity: sev, Message: fmt.Sprintf(format, args...)})
	}

	cfg := input.Config
	if err := cfg.Validate(); err != nil {
		report(SeverityError, "%v", err)
	}

	if !dirExists(input.Source, cfg.Presets.Docs.Path) {
		report(SeverityWarning, "docs directory %q not found", cfg.Presets.Docs.Path)
	}
	if cfg.Presets.Blog.Path != "" && !dirExists(input.Source, cfg.Presets.Blog.Path) {
		report(SeverityWarning, "blog directory %q not found", cfg.Presets.Blog.Path)
	}
	if css := cfg.Presets.Theme.CustomCSS; css != "" && !fileExists(input.Source, css) {
		report(SeverityWarning, "custom stylesheet %q not found", css)
	}

	for _, asset := range staticAssets(cfg) {
		if !fileExists(input.Source, path.Join(cfg.Build.StaticDir, asset)) {
			report(SeverityError, "static file %q not found in %s", asset, cfg.Build.StaticDir)
		}
	}
	if image := cfg.ThemeConfig.Image; image != "" && !strings.Contains(image, "://") &&
		!fileExists(input.Source, path.Join(cfg.Build.StaticDir, image)) {
		report(SeverityWarning, "social card %q not found in %s", image, cfg.Build.StaticDir)
	}

	src, err := content.Load(input.Source, cfg, content.LoadOptions{IncludeDrafts: true})
	if err != nil {
		report(SeverityError, "%v", err)
	} else {
		for _, link := range src.BrokenMarkdownLinks {
			sev := SeverityWarning
			if cfg.OnBrokenMarkdownLinks == site.PolicyThrow {
				sev = SeverityError
			}
			report(sev, "%s: broken markdown link %s", link.Source, link.Target)
		}
		s.cli.PrintStep("%d docs, %d posts", len(src.Docs), len(src.Posts))
	}

	failed := false
	for _, p := range problems {
		if p.Severity == SeverityError {
			failed = true
			s.cli.PrintError("%s", p.Message)
		} else {
			s.cli.PrintWarning("%s", p.Message)
		}
	}

	if failed {
		return DoctorOutput{Problems: problems, Error: ErrUnhealthy}
	}
	s.cli.PrintSuccess("No problems found")
	return DoctorOutput{Problems: problems}
}

// staticAssets lists the static files that rendered pages link to.
func staticAssets(cfg *site.Config) []string {
	var assets []string
	add := func(p string) {
		if p != "" && !strings.Contains(p, "://") {
			assets = append(assets, strings.TrimPrefix(p, "/"))
		}
	}

	add(cfg.Favicon)
	add(cfg.ThemeConfig.Navbar.Logo.Src)
	for _, f := range cfg.Features {
		add(f.Icon)
	}
	return assets
}

func dirExists(fsys iofs.FS, name string) bool {
	info, err := iofs.Stat(fsys, name)
	return err == nil && info.IsDir()
}

func fileExists(fsys iofs.FS, name string) bool {
	info, err := iofs.Stat(fsys, strings.TrimPrefix(path.Clean(name), "/"))
	return err == nil && !info.IsDir()
}
