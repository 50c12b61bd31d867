// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package openlibrary queries the Open Library title search and maps its
// records to display-ready book cards.
package openlibrary

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/pdiddy/booksearch/internal/httputil"
	"github.com/pdiddy/booksearch/pkg/types"
)

// Client searches the Open Library catalog by title.
type Client struct {
	HTTP   *http.Client
	Config types.SearchConfig
	Logger *zap.Logger
}

// NewClient returns a Client using cfg with defaults applied. A nil logger
// disables logging.
func NewClient(cfg types.SearchConfig, logger *zap.Logger) *Client {
	cfg = cfg.WithDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		Logger: logger,
	}
}

// SearchURL builds the request URL for one page of a title search.
func (c *Client) SearchURL(title string, page int) string {
	params := url.Values{
		"title":  {title},
		"limit":  {strconv.Itoa(types.PageSize)},
		"offset": {strconv.Itoa(types.Offset(page))},
	}
	return c.Config.SearchURL + "?" + params.Encode()
}

// Search fetches one page of results for title. Page numbers start at 1.
func (c *Client) Search(ctx context.Context, title string, page int) (types.Page, error) {
	reqURL := c.SearchURL(title, page)
	c.Logger.Debug("open library search",
		zap.String("title", title), zap.Int("page", page), zap.String("url", reqURL))

	var sr searchResponse
	if err := httputil.GetJSON(ctx, c.HTTP, reqURL, c.Config.UserAgent, &sr); err != nil {
		if errors.Is(err, context.Canceled) {
			return types.Page{}, err
		}
		return types.Page{}, fmt.Errorf("open library search: %w", err)
	}
	if sr.Docs == nil {
		return types.Page{}, fmt.Errorf("open library search: malformed response: missing docs")
	}

	out := types.Page{Books: make([]types.Book, 0, len(*sr.Docs))}
	if sr.NumFound != nil {
		out.NumFound = *sr.NumFound
	}
	for _, d := range *sr.Docs {
		out.Books = append(out.Books, ToBook(d, c.Config.CatalogConfig))
	}
	return out, nil
}

// Open Library search.json structures. Docs is a pointer so a missing or
// null list can be told apart from an empty one.
type searchResponse struct {
	NumFound *int   `json:"numFound"`
	Docs     *[]Doc `json:"docs"`
}

// Doc is one raw record from search.json.
type Doc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstPublishYear int      `json:"first_publish_year"`
	CoverID          int      `json:"cover_i"`
	ISBN             []string `json:"isbn"`
}
