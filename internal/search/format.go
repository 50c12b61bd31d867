// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/booksearch/pkg/types"
)

// NoCover is shown in place of a cover URL when none could be derived.
const NoCover = "no cover available"

// PageOutput is the serialized form of one result page.
type PageOutput struct {
	Query      string       `json:"query" yaml:"query"`
	Page       int          `json:"page" yaml:"page"`
	TotalPages int          `json:"total_pages" yaml:"total_pages"`
	NumFound   int          `json:"num_found" yaml:"num_found"`
	Books      []types.Book `json:"books" yaml:"books"`
}

// NewPageOutput wraps a fetched page with its pager position.
func NewPageOutput(query string, page int, p types.Page) PageOutput {
	books := p.Books
	if books == nil {
		books = []types.Book{}
	}
	return PageOutput{
		Query:      query,
		Page:       page,
		TotalPages: max(1, types.TotalPages(p.NumFound)),
		NumFound:   p.NumFound,
		Books:      books,
	}
}

// FormatTable writes results as a human-readable table to w.
func FormatTable(out PageOutput, w io.Writer) {
	if len(out.Books) == 0 {
		fmt.Fprintln(w, "No results found.")
		fmt.Fprintln(w, PagerLine(out.Page, out.TotalPages))
		return
	}

	fmt.Fprintf(w, "%-4s  %s  %s  %-4s  %s\n",
		"#", pad("Title", 50), pad("Authors", 30), "Year", "Link")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	first := types.Offset(out.Page)
	for i, b := range out.Books {
		fmt.Fprintf(w, "%-4d  %s  %s  %-4s  %s\n",
			first+i+1, pad(truncate(b.Title, 50), 50), pad(truncate(FormatAuthors(b.Authors), 30), 30),
			FormatYear(b.FirstPublishYear), b.DetailURL)
		cover := NoCover
		if b.HasCover() {
			cover = b.CoverURL
		}
		fmt.Fprintf(w, "%-4s  cover: %s\n", "", cover)
	}

	fmt.Fprintf(w, "\n%d results. %s\n", out.NumFound, PagerLine(out.Page, out.TotalPages))
}

// FormatJSON writes the page as indented JSON to w.
func FormatJSON(out PageOutput, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// FormatYAML writes the page as YAML to w.
func FormatYAML(out PageOutput, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// PagerLine renders the page position, e.g. "Page 2 of 3".
func PagerLine(page, totalPages int) string {
	return fmt.Sprintf("Page %d of %d", page, max(1, totalPages))
}

// FormatAuthors joins author names for display; "Unknown author" when empty.
func FormatAuthors(authors []string) string {
	if len(authors) == 0 {
		return "Unknown author"
	}
	return strings.Join(authors, ", ")
}

// FormatYear renders a first-publication year, or "-" when unknown.
func FormatYear(year int) string {
	if year <= 0 {
		return "-"
	}
	return strconv.Itoa(year)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// pad right-pads s with spaces to n runes.
func pad(s string, n int) string {
	if c := utf8.RuneCountInString(s); c < n {
		return s + strings.Repeat(" ", n-c)
	}
	return s
}
