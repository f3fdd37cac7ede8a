package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeHelpPage(t *testing.T, dir, slug, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, slug+".md"), []byte(content), 0644)
	if err != nil {
		t.Fatalf("write help page: %v", err)
	}
}

func newTestHelpService(t *testing.T) *HelpService {
	t.Helper()
	contentPath := t.TempDir()
	err := os.MkdirAll(filepath.Join(contentPath, "help"), 0755)
	if err != nil {
		t.Fatalf("mkdir help: %v", err)
	}
	return NewHelpService(contentPath)
}

func TestHelpPageRendersMarkdown(t *testing.T) {
	svc := newTestHelpService(t)
	writeHelpPage(t, filepath.Join(svc.contentPath, "help"), "leveling",
		"---\ntitle: Leveling\n---\n\n# How leveling works\n\nEarn **XP** for check-ins.\n")

	page, err := svc.Page("leveling")
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if page.Title != "Leveling" {
		t.Errorf("title = %q, want %q", page.Title, "Leveling")
	}
	if !strings.Contains(page.HTML, "<strong>XP</strong>") {
		t.Errorf("HTML missing rendered markdown: %q", page.HTML)
	}
	if strings.Contains(page.HTML, "title: Leveling") {
		t.Error("frontmatter leaked into rendered HTML")
	}
}

func TestHelpPageFallsBackToSlugTitle(t *testing.T) {
	svc := newTestHelpService(t)
	writeHelpPage(t, filepath.Join(svc.contentPath, "help"), "store", "# Store\n")

	page, err := svc.Page("store")
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if page.Title != "store" {
		t.Errorf("title = %q, want slug fallback %q", page.Title, "store")
	}
}

func TestHelpPageNotFound(t *testing.T) {
	svc := newTestHelpService(t)

	for _, slug := range []string{"missing", "", "../secrets", "page.md", "a/b"} {
		_, err := svc.Page(slug)
		if !errors.Is(err, ErrHelpPageNotFound) {
			t.Errorf("Page(%q) err = %v, want ErrHelpPageNotFound", slug, err)
		}
	}
}

func TestHelpPagesSorted(t *testing.T) {
	svc := newTestHelpService(t)
	dir := filepath.Join(svc.contentPath, "help")
	writeHelpPage(t, dir, "sweeps", "# Sweeps\n")
	writeHelpPage(t, dir, "leveling", "# Leveling\n")
	writeHelpPage(t, dir, "store", "# Store\n")

	pages, err := svc.Pages()
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(pages))
	}
	want := []string{"leveling", "store", "sweeps"}
	for i, slug := range want {
		if pages[i].Slug != slug {
			t.Errorf("pages[%d].Slug = %q, want %q", i, pages[i].Slug, slug)
		}
	}
}
