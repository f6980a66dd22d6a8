package project

import "strings"

// Filter holds optional criteria for listing projects.
// Zero-value fields mean "no filter" for that dimension; a zero Limit means
// no upper bound.
type Filter struct {
	NameContains string
	Offset       int
	Limit        int
}

// Matches reports whether a project name passes the name filter. The match
// is a case-insensitive substring test.
func (f Filter) Matches(name string) bool {
	if f.NameContains == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(f.NameContains))
}

// Window returns the [start, end) bounds of the page for n matching items.
func (f Filter) Window(n int) (start, end int) {
	start = min(max(f.Offset, 0), n)
	end = n
	if f.Limit > 0 {
		end = min(start+f.Limit, n)
	}
	return start, end
}
