package core

import (
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"intro.md", "intro"},
		{"Spring Reactive.md", "spring-reactive"},
		{"  CI/CD -- Pipelines ", "ci-cd-pipelines"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTitleFromSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"getting-started", "Getting Started"},
		{"02-cloud_native", "Cloud Native"},
		{"microservices", "Microservices"},
	}

	for _, tt := range tests {
		if got := TitleFromSlug(tt.in); got != tt.want {
			t.Errorf("TitleFromSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitDatePrefix(t *testing.T) {
	date, rest, ok := SplitDatePrefix("2023-05-01-welcome.md")
	if !ok {
		t.Fatal("expected date prefix to be found")
	}
	if !date.Equal(time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %v", date)
	}
	if rest != "welcome" {
		t.Errorf("rest = %q, want welcome", rest)
	}

	if _, rest, ok := SplitDatePrefix("welcome.md"); ok || rest != "welcome" {
		t.Errorf("SplitDatePrefix(welcome.md) = %q, %v", rest, ok)
	}
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{0, 1},
		{150, 1},
		{200, 1},
		{201, 2},
		{1000, 5},
	}

	for _, tt := range tests {
		if got := ReadingTime(tt.words); got != tt.want {
			t.Errorf("ReadingTime(%d) = %d, want %d", tt.words, got, tt.want)
		}
	}
}

func TestFingerprintName(t *testing.T) {
	content := []byte("body{}")
	got := FingerprintName("css/prism.css", content)
	want := "css/prism." + HashContent(content) + ".css"
	if got != want {
		t.Errorf("FingerprintName = %q, want %q", got, want)
	}
}

func TestTrimOrderingPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"01-intro", "intro"},
		{"intro", "intro"},
		{"2023-roadmap", "roadmap"},
		{"1-", "1-"},
	}

	for _, tt := range tests {
		if got := TrimOrderingPrefix(tt.in); got != tt.want {
			t.Errorf("TrimOrderingPrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
