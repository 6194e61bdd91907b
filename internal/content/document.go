package content

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Kind int

const (
	KindDoc Kind = iota
	KindPost
)

type Document struct {
	Kind   Kind
	Source string
	Route  string

	Title           string
	Description     string
	Slug            string
	Tags            []string
	Authors         []string
	Date            time.Time
	SidebarLabel    string
	SidebarPosition float64
	HasPosition     bool
	Draft           bool

	HTML        string
	Summary     string
	Truncated   bool
	HasH1       bool
	Headings    []Heading
	Text        string
	ReadingTime int
	EditURL     string

	parsed *parsed
}

// Label is the text used for the document in sidebars and listings.
func (d *Document) Label() string {
	if d.SidebarLabel != "" {
		return d.SidebarLabel
	}
	return d.Title
}

func (d *Document) applyFrontMatter(fm map[string]any) error {
	for key, value := range fm {
		switch key {
		case "title":
			d.Title = asString(value)
		case "description":
			d.Description = asString(value)
		case "slug":
			d.Slug = asString(value)
		case "sidebar_label":
			d.SidebarLabel = asString(value)
		case "sidebar_position":
			pos, err := asFloat(value)
			if err != nil {
				return fmt.Errorf("sidebar_position: %w", err)
			}
			d.SidebarPosition = pos
			d.HasPosition = true
		case "tags":
			d.Tags = asStrings(value)
		case "authors":
			d.Authors = asStrings(value)
		case "draft":
			d.Draft, _ = value.(bool)
		case "date":
			date, err := asTime(value)
			if err != nil {
				return fmt.Errorf("date: %w", err)
			}
			d.Date = date
		}
	}
	return nil
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

func asStrings(v any) []string {
	switch s := v.(type) {
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str := asString(item); str != "" {
				out = append(out, str)
			}
		}
		return out
	case string:
		var out []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	default:
		return nil
	}
}

func asFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float64:
		return n, nil
	case string:
		return strconv.ParseFloat(n, 64)
	default:
		return 0, fmt.Errorf("unsupported value %v", v)
	}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func asTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognized date %q", t)
	default:
		return time.Time{}, fmt.Errorf("unsupported value %v", v)
	}
}
