package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/focusquest/focusquest/internal/markdown"
	"github.com/focusquest/focusquest/internal/model"
)

var ErrHelpPageNotFound = errors.New("help page not found")

// HelpService serves the markdown help content (leveling rules, store
// catalog, how sweeps work) rendered to HTML.
type HelpService struct {
	parser      *markdown.Parser
	contentPath string
}

func NewHelpService(contentPath string) *HelpService {
	return &HelpService{
		parser:      markdown.NewParser(),
		contentPath: contentPath,
	}
}

func (s *HelpService) Page(slug string) (*model.HelpPage, error) {
	// Slugs are single path segments; anything else is treated as unknown.
	if slug == "" || slug != filepath.Base(slug) || strings.Contains(slug, ".") {
		return nil, ErrHelpPageNotFound
	}

	path := filepath.Join(s.contentPath, "help", slug+".md")
	source, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrHelpPageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read help page: %w", err)
	}

	return s.renderPage(slug, source)
}

func (s *HelpService) Pages() ([]*model.HelpPage, error) {
	dir := filepath.Join(s.contentPath, "help")
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list help pages: %w", err)
	}

	var pages []*model.HelpPage
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".md") {
			continue
		}

		slug := strings.TrimSuffix(file.Name(), ".md")
		source, err := os.ReadFile(filepath.Join(dir, file.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read help page: %w", err)
		}

		page, err := s.renderPage(slug, source)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Slug < pages[j].Slug })
	return pages, nil
}

func (s *HelpService) renderPage(slug string, source []byte) (*model.HelpPage, error) {
	html, meta, err := s.parser.ParseWithFrontmatter(source)
	if err != nil {
		return nil, fmt.Errorf("failed to render help page: %w", err)
	}

	title, _ := meta["title"].(string)
	if title == "" {
		title = slug
	}

	return &model.HelpPage{
		Slug:  slug,
		Title: title,
		HTML:  string(html),
	}, nil
}
