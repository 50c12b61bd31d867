// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for booksearch: the
// display-ready book card, one fetched result page, and the request state
// the search controller publishes to its views.
package types

// Book is the display-ready projection of one catalog record.
type Book struct {
	// Title is the work title as returned by the catalog.
	Title string `json:"title" yaml:"title"`

	// Authors lists at most three author names in catalog order.
	Authors []string `json:"authors" yaml:"authors"`

	// FirstPublishYear is the year of first publication; zero when unknown.
	FirstPublishYear int `json:"first_publish_year,omitempty" yaml:"first_publish_year,omitempty"`

	// CoverURL points at a medium cover image; empty when no cover is known.
	CoverURL string `json:"cover_url,omitempty" yaml:"cover_url,omitempty"`

	// DetailURL links to the work's catalog page.
	DetailURL string `json:"detail_url" yaml:"detail_url"`
}

// HasCover reports whether a cover image URL could be derived.
func (b Book) HasCover() bool { return b.CoverURL != "" }

// Page is one fetched page of search results.
type Page struct {
	Books []Book `json:"books" yaml:"books"`

	// NumFound is the total number of matches across all pages.
	NumFound int `json:"num_found" yaml:"num_found"`
}

// PageSize is the fixed number of results requested per page.
const PageSize = 20

// TotalPages returns the number of result pages needed for numFound matches.
// It returns 0 when there are no matches; views display max(1, TotalPages).
func TotalPages(numFound int) int {
	if numFound <= 0 {
		return 0
	}
	return (numFound + PageSize - 1) / PageSize
}

// Offset returns the zero-based result offset of a one-based page number.
func Offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}
