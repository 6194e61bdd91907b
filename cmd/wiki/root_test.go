package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--no-color"))
	err := cmd.Execute()
	return out.String(), err
}

func TestExplicitConfigMustExist(t *testing.T) {
	_, err := run(t, "features", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestFeaturesDefaultConfig(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := run(t, "features")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Easy to Use - Reactive Java\n   img/hero-java-spring-reactive.svg")
	assert.Contains(t, out, "3. Powered by Cloud - Microservices")

	out, err = run(t, "features", "--format", "html")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `<section class="features">`))
	assert.Equal(t, 3, strings.Count(out, `class="col col--4 feature"`))
	assert.Contains(t, out, `src="/img/hero-cloud-tech.svg"`)

	_, err = run(t, "features", "--format", "pdf")
	require.ErrorContains(t, err, `unknown format "pdf"`)
}

func TestInitBuildDoctor(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "notes")

	out, err := run(t, "init", dir, "--title", "Team notes")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Project initialized")

	config := filepath.Join(dir, "wiki.yaml")

	out, err = run(t, "doctor", "--config", config)
	require.NoError(t, err, out)
	assert.Contains(t, out, "No problems found")

	out, err = run(t, "build", "--config", config)
	require.NoError(t, err, out)
	assert.FileExists(t, filepath.Join(dir, "build", "index.html"))
	assert.FileExists(t, filepath.Join(dir, "build", "blog", "index.html"))

	alt := filepath.Join(t.TempDir(), "site")
	out, err = run(t, "build", "--config", config, "--out", alt)
	require.NoError(t, err, out)
	assert.FileExists(t, filepath.Join(alt, "docs", "intro", "index.html"))

	out, err = run(t, "features", "--config", config)
	require.NoError(t, err)
	assert.Contains(t, out, "Easy to Use - Reactive Java")
}

func TestInitRequiresDir(t *testing.T) {
	_, err := run(t, "init")
	require.Error(t, err)
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "wiki.yaml")
	require.NoError(t, os.WriteFile(config, []byte("baseUrl: docs\n"), 0644))

	out, err := run(t, "build", "--config", config)
	require.Error(t, err)
	assert.Contains(t, out, "baseUrl")
}

func TestBuildKeepsSourcesWhenOutIsProject(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "notes")
	out, err := run(t, "init", dir)
	require.NoError(t, err, out)

	config := filepath.Join(dir, "wiki.yaml")
	for _, target := range []string{dir, filepath.Dir(dir)} {
		out, err = run(t, "build", "--config", config, "--out", target)
		require.Error(t, err, out)
		assert.Contains(t, out, "contains source dir")
		assert.FileExists(t, filepath.Join(dir, "docs", "intro.md"))
		assert.FileExists(t, config)
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
