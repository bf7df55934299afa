// Package entity defines the domain types shared by the provider adapters,
// the news use case and the HTTP layer.
package entity

import (
	"regexp"
	"strings"
)

// Placeholders substituted for article fields the provider did not send.
const (
	TitlePlaceholder   = "Title not available"
	SnippetPlaceholder = "Description not available"
	LinkPlaceholder    = "#"
	SourcePlaceholder  = "Unknown source"
	DatePlaceholder    = "Date not available"
)

// Article is the normalized news item returned to callers.
// Thumbnail is nil when the provider has no image for the item.
type Article struct {
	Title     string  `json:"title" example:"Eleições municipais: resultados"`
	Snippet   string  `json:"snippet" example:"Resumo da notícia..."`
	Link      string  `json:"link" example:"https://example.com/noticia"`
	Thumbnail *string `json:"thumbnail" example:"https://example.com/img.jpg"`
	Source    string  `json:"source" example:"Folha"`
	Date      string  `json:"date" example:"2026-10-18"`
}

// RawArticle is the provider-neutral record produced by an adapter before
// placeholders are applied. Empty strings mean the field was absent.
type RawArticle struct {
	Title       string
	Description string
	URL         string
	Image       string
	Source      string
	PublishedAt string
}

// NewArticle maps a raw record onto the output shape, falling back to the
// placeholders for absent or blank fields.
func NewArticle(raw RawArticle) Article {
	a := Article{
		Title:   orPlaceholder(raw.Title, TitlePlaceholder),
		Snippet: orPlaceholder(raw.Description, SnippetPlaceholder),
		Link:    orPlaceholder(raw.URL, LinkPlaceholder),
		Source:  orPlaceholder(raw.Source, SourcePlaceholder),
		Date:    NormalizeDate(raw.PublishedAt),
	}
	if img := strings.TrimSpace(raw.Image); img != "" {
		a.Thumbnail = &img
	}
	return a
}

// Validate reports the first string field left empty.
func (a Article) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"title", a.Title},
		{"snippet", a.Snippet},
		{"link", a.Link},
		{"source", a.Source},
		{"date", a.Date},
	}
	for _, f := range fields {
		if f.value == "" {
			return &ValidationError{Field: f.name, Message: "must not be empty"}
		}
	}
	return nil
}

var isoDatePrefix = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})(?:[T ]|$)`)

// NormalizeDate reduces ISO-8601 timestamps to their date part
// ("2026-10-18T09:30:00Z" -> "2026-10-18"). Other formats, such as the
// human-readable dates some providers send, are returned trimmed.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return DatePlaceholder
	}
	if m := isoDatePrefix.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}

func orPlaceholder(s, placeholder string) string {
	if s = strings.TrimSpace(s); s == "" {
		return placeholder
	}
	return s
}
