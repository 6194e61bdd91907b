package content

import (
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanand/wiki/internal/site"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"docs/intro.md": {Data: []byte(`---
title: Introduction
sidebar_position: 1
tags: [java, spring]
---

Welcome to the wiki.

## Getting started

Read the guides.

` + "```mermaid\ngraph TD;\nA-->B;\n```\n")},
		"docs/guides/01-setup.md": {Data: []byte(`# Setup

Go back to the [introduction](../intro.md#getting-started).

` + "```go\nfunc main() {}\n```\n")},
		"docs/guides/deploy.md": {Data: []byte(`---
sidebar_position: 2
sidebar_label: Deploying
---

See [missing](./missing.md).
`)},
		"docs/_partials/snippet.md": {Data: []byte("ignored")},
		"blog/2023-05-01-welcome.md": {Data: []byte(`---
title: Welcome
authors: anand
---

Summary text.

<!--truncate-->

The rest of the post.
`)},
		"blog/2024-01-10-reactive.md": {Data: []byte(`---
title: Reactive streams
tags: reactive, java
---

Notes on [setup](/docs/guides/01-setup.md).
`)},
		"blog/2024-02-01-draft.md": {Data: []byte(`---
title: Unfinished
draft: true
---

Work in progress.
`)},
	}
}

func routes(docs []*Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Route)
	}
	return out
}

func find(t *testing.T, docs []*Document, route string) *Document {
	t.Helper()
	for _, d := range docs {
		if d.Route == route {
			return d
		}
	}
	t.Fatalf("no document at %s", route)
	return nil
}

func TestLoadDocs(t *testing.T) {
	s, err := Load(testFS(), site.Default(), LoadOptions{})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"/docs/intro", "/docs/guides/setup", "/docs/guides/deploy"}, routes(s.Docs))

	intro := find(t, s.Docs, "/docs/intro")
	assert.Equal(t, "Introduction", intro.Title)
	assert.Equal(t, []string{"java", "spring"}, intro.Tags)
	assert.False(t, intro.HasH1)
	require.Len(t, intro.Headings, 1)
	assert.Equal(t, Heading{Level: 2, ID: "getting-started", Text: "Getting started"}, intro.Headings[0])
	assert.Contains(t, intro.HTML, `<pre class="mermaid">graph TD;`)
	assert.Contains(t, intro.HTML, `A--&gt;B;`)
	assert.Equal(t, site.Default().Presets.Docs.EditURL+"docs/intro.md", intro.EditURL)

	setup := find(t, s.Docs, "/docs/guides/setup")
	assert.Equal(t, "Setup", setup.Title)
	assert.True(t, setup.HasH1)
	assert.Contains(t, setup.HTML, `href="/docs/intro#getting-started"`)
	assert.Contains(t, setup.HTML, `chroma`)
	assert.Contains(t, setup.Text, "Go back to the introduction")

	deploy := find(t, s.Docs, "/docs/guides/deploy")
	assert.Equal(t, "Deploying", deploy.Label())
	assert.Equal(t, "Deploy", deploy.Title)

	require.Len(t, s.BrokenMarkdownLinks, 1)
	assert.Equal(t, BrokenLink{Source: "docs/guides/deploy.md", Target: "./missing.md"}, s.BrokenMarkdownLinks[0])
}

func TestLoadSidebar(t *testing.T) {
	s, err := Load(testFS(), site.Default(), LoadOptions{})
	require.NoError(t, err)

	require.Len(t, s.Sidebar, 2)
	assert.Equal(t, "Introduction", s.Sidebar[0].Label)
	assert.Equal(t, "/docs/intro", s.Sidebar[0].Route)

	guides := s.Sidebar[1]
	assert.True(t, guides.IsCategory())
	assert.Equal(t, "Guides", guides.Label)
	require.Len(t, guides.Items, 2)
	assert.Equal(t, "Deploying", guides.Items[0].Label)
	assert.Equal(t, "Setup", guides.Items[1].Label)
	assert.True(t, guides.Contains("/docs/guides/setup"))
	assert.False(t, guides.Contains("/docs/intro"))

	assert.Equal(t, "/docs/intro", s.FirstDocRoute())

	var leaves []string
	for _, leaf := range Leaves(s.Sidebar) {
		leaves = append(leaves, leaf.Route)
	}
	assert.Equal(t, []string{"/docs/intro", "/docs/guides/deploy", "/docs/guides/setup"}, leaves)
}

func TestLoadPosts(t *testing.T) {
	s, err := Load(testFS(), site.Default(), LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"/blog/2024/01/10/reactive", "/blog/2023/05/01/welcome"}, routes(s.Posts))

	reactive := s.Posts[0]
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), reactive.Date)
	assert.Equal(t, []string{"reactive", "java"}, reactive.Tags)
	assert.Contains(t, reactive.HTML, `href="/docs/guides/setup"`)
	assert.False(t, reactive.Truncated)
	assert.Equal(t, 1, reactive.ReadingTime)

	welcome := s.Posts[1]
	assert.Equal(t, []string{"anand"}, welcome.Authors)
	assert.True(t, welcome.Truncated)
	assert.Contains(t, welcome.Summary, "Summary text.")
	assert.NotContains(t, welcome.Summary, "The rest of the post.")
	assert.Contains(t, welcome.HTML, "The rest of the post.")
}

func TestLoadDrafts(t *testing.T) {
	s, err := Load(testFS(), site.Default(), LoadOptions{IncludeDrafts: true})
	require.NoError(t, err)
	assert.Len(t, s.Posts, 3)
	assert.Equal(t, "/blog/2024/02/01/draft", s.Posts[0].Route)
}

func TestLoadWithBaseURL(t *testing.T) {
	cfg := site.Default()
	cfg.BaseURL = "/wiki/"

	s, err := Load(testFS(), cfg, LoadOptions{})
	require.NoError(t, err)

	setup := find(t, s.Docs, "/docs/guides/setup")
	assert.Contains(t, setup.HTML, `href="/wiki/docs/intro#getting-started"`)
}

func TestLoadMissingDirectories(t *testing.T) {
	s, err := Load(fstest.MapFS{}, site.Default(), LoadOptions{})
	require.NoError(t, err)
	assert.Empty(t, s.Docs)
	assert.Empty(t, s.Posts)
	assert.Empty(t, s.Sidebar)
	assert.Equal(t, "", s.FirstDocRoute())
}

func TestLoadRejectsDuplicateRoutes(t *testing.T) {
	fsys := fstest.MapFS{
		"docs/a.md": {Data: []byte("---\nslug: same\n---\nA\n")},
		"docs/b.md": {Data: []byte("---\nslug: same\n---\nB\n")},
	}

	_, err := Load(fsys, site.Default(), LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/docs/same")
}

func TestLoadSlugs(t *testing.T) {
	fsys := fstest.MapFS{
		"docs/guides/a.md":     {Data: []byte("---\nslug: /custom/place\n---\nA\n")},
		"docs/guides/b.md":     {Data: []byte("---\nslug: renamed\n---\nB\n")},
		"docs/guides/index.md": {Data: []byte("See [spring](c.md).\n")},
		"docs/guides/c.md":     {Data: []byte("---\nslug: spring-6.1\n---\nC\n")},
	}

	s, err := Load(fsys, site.Default(), LoadOptions{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/docs/custom/place", "/docs/guides/renamed", "/docs/guides", "/docs/guides/spring-6.1"}, routes(s.Docs))
	assert.Contains(t, find(t, s.Docs, "/docs/guides").HTML, `href="/docs/guides/spring-6.1"`)
	assert.Empty(t, s.BrokenMarkdownLinks)
}

func TestLoadRejectsBadFrontMatter(t *testing.T) {
	fsys := fstest.MapFS{
		"docs/a.md": {Data: []byte("---\nsidebar_position: first\n---\nA\n")},
	}

	_, err := Load(fsys, site.Default(), LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docs/a.md")
}

func TestMarkdownMermaidDisabled(t *testing.T) {
	md := NewMarkdown(MarkdownOptions{Mermaid: false})
	out, err := md.Convert([]byte("```mermaid\ngraph TD;\n```\n"))
	require.NoError(t, err)
	assert.NotContains(t, out, `class="mermaid"`)
	assert.True(t, strings.Contains(out, "graph TD;"))
}

func TestMarkdownTables(t *testing.T) {
	md := NewMarkdown(MarkdownOptions{})
	out, err := md.Convert([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
}

func TestThemeCSS(t *testing.T) {
	css, err := ThemeCSS("github", "dracula")
	require.NoError(t, err)
	assert.Contains(t, string(css), ".chroma")
	assert.Contains(t, string(css), "@media (prefers-color-scheme: dark)")

	css, err = ThemeCSS("github", "")
	require.NoError(t, err)
	assert.NotContains(t, string(css), "prefers-color-scheme")
}
