package core

import (
	"path"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	nonSlugChars   = regexp.MustCompile(`[^a-z0-9]+`)
	datePrefix     = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(.+)$`)
	orderingPrefix = regexp.MustCompile(`^\d+-`)
)

func Slugify(name string) string {
	name = strings.TrimSuffix(name, path.Ext(name))
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// TitleFromSlug turns a file or directory name into a label:
// "02-getting-started" -> "Getting Started".
func TitleFromSlug(slug string) string {
	slug = orderingPrefix.ReplaceAllString(slug, "")
	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// SplitDatePrefix extracts the YYYY-MM-DD prefix used by blog file names.
func SplitDatePrefix(name string) (time.Time, string, bool) {
	name = strings.TrimSuffix(name, path.Ext(name))
	m := datePrefix.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, name, false
	}
	date, err := time.Parse("2006-01-02", m[1])
	if err != nil {
		return time.Time{}, name, false
	}
	return date, m[2], true
}

const wordsPerMinute = 200

func ReadingTime(words int) int {
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// TrimOrderingPrefix drops the "01-" style prefix used to order files on disk.
func TrimOrderingPrefix(name string) string {
	if trimmed := orderingPrefix.ReplaceAllString(name, ""); trimmed != "" {
		return trimmed
	}
	return name
}
