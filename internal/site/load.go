package site

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid site config")

const envPrefix = "WIKI_"

// Load reads a YAML site file over the defaults. Keys absent from the file
// keep their default values; lists present in the file replace the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse site config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides deploy-specific fields from WIKI_* environment variables.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.Title == "" {
		errs = append(errs, errors.New("title is required"))
	}

	u, err := url.Parse(c.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("url %q must be absolute", c.URL))
	} else if u.Path != "" && u.Path != "/" {
		errs = append(errs, fmt.Errorf("url %q must not contain a path, use baseUrl", c.URL))
	}

	if !strings.HasPrefix(c.BaseURL, "/") || !strings.HasSuffix(c.BaseURL, "/") {
		errs = append(errs, fmt.Errorf("baseUrl %q must start and end with /", c.BaseURL))
	}

	for name, policy := range map[string]string{
		"onBrokenLinks":         c.OnBrokenLinks,
		"onBrokenMarkdownLinks": c.OnBrokenMarkdownLinks,
	} {
		switch policy {
		case PolicyThrow, PolicyWarn, PolicyIgnore:
		default:
			errs = append(errs, fmt.Errorf("%s must be one of throw, warn, ignore, got %q", name, policy))
		}
	}

	for i, item := range c.ThemeConfig.Navbar.Items {
		if err := item.validate(); err != nil {
			errs = append(errs, fmt.Errorf("navbar item %d (%s): %w", i, item.Label, err))
		}
	}

	for _, col := range c.ThemeConfig.Footer.Links {
		for _, link := range col.Items {
			if (link.To == "") == (link.Href == "") {
				errs = append(errs, fmt.Errorf("footer link %s/%s needs exactly one of to, href", col.Title, link.Label))
			}
		}
	}

	for i, f := range c.Features {
		if f.Title == "" {
			errs = append(errs, fmt.Errorf("feature %d has no title", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func (n NavItem) validate() error {
	switch n.Position {
	case "", PositionLeft, PositionRight:
	default:
		return fmt.Errorf("position must be left or right, got %q", n.Position)
	}

	targets := 0
	if n.Href != "" {
		targets++
	}
	if n.To != "" {
		targets++
	}
	if n.Type == NavItemDocSidebar {
		if n.SidebarID == "" {
			return errors.New("docSidebar item needs sidebarId")
		}
		targets++
	} else if n.Type != "" {
		return fmt.Errorf("unknown item type %q", n.Type)
	}

	if targets != 1 {
		return errors.New("needs exactly one of href, to, docSidebar")
	}
	return nil
}
