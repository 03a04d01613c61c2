package model

import "time"

// Note is an MR comment. System notes are GitLab-generated events
// ("added 3 commits", "changed milestone") and are never selectable
// in comment navigation.
type Note struct {
	ID        int64
	Body      string
	Author    User
	System    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserNotes returns the subsequence of human-authored notes,
// preserving order.
func UserNotes(notes []Note) []Note {
	var out []Note
	for _, n := range notes {
		if !n.System {
			out = append(out, n)
		}
	}
	return out
}
