// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openlibrary

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/booksearch/pkg/types"
)

// maxAuthors is the number of author names kept on a card.
const maxAuthors = 3

// ToBook converts a raw search record into a book card. Missing optional
// fields stay empty.
func ToBook(d Doc, cfg types.CatalogConfig) types.Book {
	b := types.Book{
		Title:            d.Title,
		FirstPublishYear: d.FirstPublishYear,
		CoverURL:         CoverURL(d, cfg.CoversURL),
		DetailURL:        DetailURL(d.Key, cfg.CatalogURL),
	}
	authors := d.AuthorName
	if len(authors) > maxAuthors {
		authors = authors[:maxAuthors]
	}
	if len(authors) > 0 {
		b.Authors = append([]string(nil), authors...)
	}
	return b
}

// CoverURL resolves a medium cover image URL for d. The numeric cover id
// wins over the first ISBN; with neither the result is empty.
func CoverURL(d Doc, coversBase string) string {
	base := strings.TrimRight(coversBase, "/")
	if d.CoverID > 0 {
		return base + "/id/" + strconv.Itoa(d.CoverID) + "-M.jpg"
	}
	if len(d.ISBN) > 0 && d.ISBN[0] != "" {
		return base + "/isbn/" + url.PathEscape(d.ISBN[0]) + "-M.jpg"
	}
	return ""
}

// DetailURL concatenates the catalog base with a record key such as
// "/works/OL893415W".
func DetailURL(key, catalogBase string) string {
	return strings.TrimRight(catalogBase, "/") + key
}
