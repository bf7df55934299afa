package entity

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func strPtr(s string) *string { return &s }

func TestNewArticle(t *testing.T) {
	tests := []struct {
		name string
		raw  RawArticle
		want Article
	}{
		{
			name: "all fields present",
			raw: RawArticle{
				Title:       "Chuvas no Sul",
				Description: "Frente fria avança",
				URL:         "https://example.com/a",
				Image:       "https://example.com/a.jpg",
				Source:      "G1",
				PublishedAt: "2026-10-17T08:15:00Z",
			},
			want: Article{
				Title:     "Chuvas no Sul",
				Snippet:   "Frente fria avança",
				Link:      "https://example.com/a",
				Thumbnail: strPtr("https://example.com/a.jpg"),
				Source:    "G1",
				Date:      "2026-10-17",
			},
		},
		{
			name: "all fields absent",
			raw:  RawArticle{},
			want: Article{
				Title:     TitlePlaceholder,
				Snippet:   SnippetPlaceholder,
				Link:      LinkPlaceholder,
				Thumbnail: nil,
				Source:    SourcePlaceholder,
				Date:      DatePlaceholder,
			},
		},
		{
			name: "blank fields are treated as absent",
			raw: RawArticle{
				Title:       "  ",
				Description: "\n",
				URL:         " ",
				Image:       " ",
				Source:      "\t",
				PublishedAt: " ",
			},
			want: Article{
				Title:   TitlePlaceholder,
				Snippet: SnippetPlaceholder,
				Link:    LinkPlaceholder,
				Source:  SourcePlaceholder,
				Date:    DatePlaceholder,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewArticle(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NewArticle() mismatch (-want +got):\n%s", diff)
			}
			if err := got.Validate(); err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-10-18T09:30:00Z", "2026-10-18"},
		{"2026-10-18T09:30:00+00:00", "2026-10-18"},
		{"2026-10-18 09:30:00", "2026-10-18"},
		{"2026-10-18", "2026-10-18"},
		{"10/18/2026, 07:00 AM, +0000 UTC", "10/18/2026, 07:00 AM, +0000 UTC"},
		{"  yesterday ", "yesterday"},
		{"", DatePlaceholder},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeDate(tt.in); got != tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestArticle_Validate(t *testing.T) {
	a := NewArticle(RawArticle{Title: "x"})
	a.Source = ""

	err := a.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if vErr.Field != "source" {
		t.Errorf("Field = %q, want %q", vErr.Field, "source")
	}
}
