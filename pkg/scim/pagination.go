package scim

import (
	"net/url"
	"strconv"
)

// SCIM pagination defaults per RFC 7644 section 3.4.2.4.
const (
	DefaultStartIndex = 1
	DefaultCount      = 100
)

// PageParams is a parsed pagination request. StartIndex is 1-based as the
// SCIM protocol requires.
type PageParams struct {
	StartIndex int
	Count      int
}

// ParsePageParams reads startIndex and count from the query string.
// Missing parameters take the protocol defaults. Non-numeric values are a
// client error and return ValidationError rather than being silently
// coerced.
func ParsePageParams(q url.Values) (PageParams, error) {
	p := PageParams{StartIndex: DefaultStartIndex, Count: DefaultCount}

	if s := q.Get("startIndex"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return PageParams{}, ValidationError{Param: "startIndex", Value: s}
		}
		p.StartIndex = n
	}
	if s := q.Get("count"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return PageParams{}, ValidationError{Param: "count", Value: s}
		}
		p.Count = n
	}
	return p, nil
}

// Window converts the 1-based page parameters into a SQL offset/limit pair.
// Out-of-range values follow RFC 7644: startIndex below 1 windows from the
// first row, negative count returns an empty page. The response envelope
// still echoes the requested StartIndex unmodified.
func (p PageParams) Window() (offset, limit int) {
	offset = p.StartIndex - 1
	if offset < 0 {
		offset = 0
	}
	limit = p.Count
	if limit < 0 {
		limit = 0
	}
	return offset, limit
}
