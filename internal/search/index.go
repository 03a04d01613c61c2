// Package search indexes trace lines for the in-log search: it records
// which lines contain a query and handles cyclic match navigation and
// viewport centering. Matching runs over raw trace lines; the log
// processor guarantees line-count parity, so indices line up with the
// rendered view.
package search

import "strings"

// Index holds the result of the most recent search.
type Index struct {
	Query   string
	Matches []int // 0-based line indices, ascending
	Current int   // position within Matches
}

// Find returns the indices of lines containing query as a
// case-insensitive substring. An empty query matches nothing. A line
// counts once no matter how many occurrences it holds.
func Find(lines []string, query string) []int {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)
	var matches []int
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), q) {
			matches = append(matches, i)
		}
	}
	return matches
}

// Execute replaces the index with the matches for query.
func (x *Index) Execute(lines []string, query string) {
	x.Query = query
	x.Matches = Find(lines, query)
	x.Current = 0
}

// Cancel clears the query. Existing matches are kept so n/N keep
// working after dismissing the prompt.
func (x *Index) Cancel() {
	x.Query = ""
}

func (x *Index) Next() {
	if len(x.Matches) > 0 {
		x.Current = (x.Current + 1) % len(x.Matches)
	}
}

func (x *Index) Prev() {
	if len(x.Matches) > 0 {
		x.Current = (x.Current - 1 + len(x.Matches)) % len(x.Matches)
	}
}

// CurrentLine returns the line index of the current match, or -1 when
// there are no matches.
func (x *Index) CurrentLine() int {
	if len(x.Matches) == 0 {
		return -1
	}
	if x.Current < 0 || x.Current >= len(x.Matches) {
		return -1
	}
	return x.Matches[x.Current]
}

// CenterOffset computes the scroll offset that centers matchLine in a
// viewport of the given height, clamped so the viewport never runs
// past either end of the content.
func CenterOffset(matchLine, viewportHeight, totalLines int) int {
	offset := matchLine - viewportHeight/2
	if offset < 0 {
		offset = 0
	}
	max := totalLines - viewportHeight
	if max < 0 {
		max = 0
	}
	if offset > max {
		offset = max
	}
	return offset
}
