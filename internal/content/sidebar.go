package content

import (
	"math"
	"path"
	"sort"
	"strings"

	"github.com/scanand/wiki/internal/core"
)

// SidebarItem is either a doc link (Route set) or a category holding Items.
type SidebarItem struct {
	Label string
	Route string
	Items []*SidebarItem

	position float64
}

func (i *SidebarItem) IsCategory() bool {
	return i.Route == ""
}

// Contains reports whether route is this item or one of its descendants.
func (i *SidebarItem) Contains(route string) bool {
	if i.Route == route {
		return true
	}
	for _, child := range i.Items {
		if child.Contains(route) {
			return true
		}
	}
	return false
}

// buildSidebar groups docs by directory. Within a level, items are ordered by
// sidebar_position (unset sorts last), then label. A category sorts at the
// lowest position among its items.
func buildSidebar(docsDir string, docs []*Document) []*SidebarItem {
	root := &SidebarItem{}
	categories := map[string]*SidebarItem{"": root}

	var category func(dir string) *SidebarItem
	category = func(dir string) *SidebarItem {
		if c, ok := categories[dir]; ok {
			return c
		}
		parent := category(parentDir(dir))
		c := &SidebarItem{Label: core.TitleFromSlug(path.Base(dir)), position: math.Inf(1)}
		parent.Items = append(parent.Items, c)
		categories[dir] = c
		return c
	}

	prefix := strings.TrimSuffix(docsDir, "/") + "/"
	for _, doc := range docs {
		rel := strings.TrimPrefix(doc.Source, prefix)
		dir := path.Dir(rel)
		if dir == "." {
			dir = ""
		}

		pos := math.Inf(1)
		if doc.HasPosition {
			pos = doc.SidebarPosition
		}
		c := category(dir)
		c.Items = append(c.Items, &SidebarItem{Label: doc.Label(), Route: doc.Route, position: pos})
	}

	sortSidebar(root)
	return root.Items
}

func parentDir(dir string) string {
	parent := path.Dir(dir)
	if parent == "." {
		return ""
	}
	return parent
}

func sortSidebar(item *SidebarItem) float64 {
	lowest := item.position
	for _, child := range item.Items {
		if child.IsCategory() {
			child.position = sortSidebar(child)
		}
		lowest = math.Min(lowest, child.position)
	}

	sort.SliceStable(item.Items, func(i, j int) bool {
		a, b := item.Items[i], item.Items[j]
		if a.position != b.position {
			return a.position < b.position
		}
		return a.Label < b.Label
	})
	return lowest
}

func firstLeaf(items []*SidebarItem) string {
	for _, item := range items {
		if !item.IsCategory() {
			return item.Route
		}
		if route := firstLeaf(item.Items); route != "" {
			return route
		}
	}
	return ""
}

// Leaves flattens the sidebar into its doc links in display order.
func Leaves(items []*SidebarItem) []*SidebarItem {
	var out []*SidebarItem
	for _, item := range items {
		if item.IsCategory() {
			out = append(out, Leaves(item.Items)...)
			continue
		}
		out = append(out, item)
	}
	return out
}
