// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Status is the request state of the search controller.
type Status int

const (
	// StatusIdle means no search is active (the effective query is empty).
	StatusIdle Status = iota
	// StatusLoading means a request is in flight for the current key.
	StatusLoading
	// StatusSuccess means the last request for the current key succeeded.
	StatusSuccess
	// StatusFailed means the last request for the current key failed.
	StatusFailed
)

// String returns a lowercase name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is a point-in-time snapshot of the search controller.
//
// On failure Books and NumFound keep the values of the last successful page
// so the previous results stay visible under the error message.
type State struct {
	RawQuery       string
	EffectiveQuery string
	Page           int
	Status         Status
	Books          []Book
	NumFound       int
	Err            string
}

// Loading reports whether a request is in flight.
func (s State) Loading() bool { return s.Status == StatusLoading }

// TotalPages returns the page count for display, never less than 1.
func (s State) TotalPages() int {
	return max(1, TotalPages(s.NumFound))
}

// CanPrev reports whether the previous-page control is enabled.
func (s State) CanPrev() bool { return s.Page > 1 }

// CanNext reports whether the next-page control is enabled.
func (s State) CanNext() bool {
	total := TotalPages(s.NumFound)
	return total > 0 && s.Page < total
}
