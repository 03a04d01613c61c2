package search

import (
	"fmt"
	"testing"
)

func testLines() []string {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	lines[5] = "ERROR: early failure"
	lines[50] = "error: mid failure"
	lines[98] = "Error: late failure"
	return lines
}

func TestFindIsCaseInsensitive(t *testing.T) {
	matches := Find(testLines(), "eRrOr")
	want := []int{5, 50, 98}
	if len(matches) != len(want) {
		t.Fatalf("matches = %v, want %v", matches, want)
	}
	for i := range want {
		if matches[i] != want[i] {
			t.Fatalf("matches = %v, want %v", matches, want)
		}
	}
}

func TestFindEmptyQueryMatchesNothing(t *testing.T) {
	if matches := Find(testLines(), ""); matches != nil {
		t.Fatalf("empty query matched %v", matches)
	}
}

func TestFindCountsLineOnce(t *testing.T) {
	matches := Find([]string{"error error error"}, "error")
	if len(matches) != 1 {
		t.Fatalf("got %d matches for one line, want 1", len(matches))
	}
}

func TestNavigationWraps(t *testing.T) {
	var x Index
	x.Execute(testLines(), "failure")
	if len(x.Matches) != 3 || x.Current != 0 {
		t.Fatalf("after execute: matches=%v current=%d", x.Matches, x.Current)
	}

	x.Next()
	x.Next()
	x.Next()
	if x.Current != 0 {
		t.Fatalf("3x next over 3 matches should wrap, got %d", x.Current)
	}
	x.Prev()
	if x.Current != 2 {
		t.Fatalf("prev from 0 should wrap to 2, got %d", x.Current)
	}
	if x.CurrentLine() != 98 {
		t.Fatalf("CurrentLine = %d, want 98", x.CurrentLine())
	}
}

func TestNavigationOnEmptyMatches(t *testing.T) {
	var x Index
	x.Execute(testLines(), "no such text")
	x.Next()
	x.Prev()
	if x.CurrentLine() != -1 {
		t.Fatalf("CurrentLine = %d, want -1", x.CurrentLine())
	}
}

func TestCancelKeepsMatches(t *testing.T) {
	var x Index
	x.Execute(testLines(), "failure")
	x.Cancel()
	if x.Query != "" {
		t.Fatal("cancel should clear the query")
	}
	if len(x.Matches) != 3 {
		t.Fatal("cancel should keep matches")
	}
}

func TestCenterOffset(t *testing.T) {
	cases := []struct {
		line, height, total, want int
	}{
		{50, 20, 100, 40},
		{5, 20, 100, 0},
		{99, 20, 100, 80},
		{0, 20, 100, 0},
		{50, 20, 10, 0},
		{3, 0, 100, 3},
	}
	for _, c := range cases {
		if got := CenterOffset(c.line, c.height, c.total); got != c.want {
			t.Errorf("CenterOffset(%d, %d, %d) = %d, want %d", c.line, c.height, c.total, got, c.want)
		}
	}
}
