package app

import (
	"fmt"
	"time"

	"labpeek/internal/logproc"
	"labpeek/internal/model"
	"labpeek/internal/search"
)

type Mode int

const (
	ModeNormal Mode = iota
	ModeViewingComments
	ModeViewingLog
	ModeSelectingMR
	ModeShowingHelp
)

// TrackedMergeRequest is the per-MR cache: pipelines in API order
// (newest first), jobs keyed by pipeline, raw traces keyed by job, and
// notes. Created when the MR first loads, mutated in place by every
// subsequent load, destroyed only by explicit removal.
type TrackedMergeRequest struct {
	MR          model.MergeRequest
	Pipelines   []model.Pipeline
	Jobs        map[int64][]model.Job
	Traces      map[int64]string
	Notes       []model.Note
	NotesLoaded bool

	SelectedPipeline int
	SelectedNote     int // index into the user-note subsequence
	Loading          bool
}

// LogView is the embedded log viewer state. Lines is the processed
// form of Raw under the current timestamp mode; the two always have
// the same line count.
type LogView struct {
	Raw        string
	Lines      []logproc.Line
	Offset     int
	Height     int
	JobName    string
	Timestamps logproc.TimestampMode
	Search     search.Index
	Searching  bool
}

// State is the whole application state. It is owned by a single
// goroutine (the bubbletea update loop); effects only ever see copies
// of identifiers, never this struct.
type State struct {
	ProjectID   int64
	Branch      string
	FocusBranch bool
	MaxTracked  int // 0 means unlimited

	Tracked     []*TrackedMergeRequest
	SelectedMR  int
	SelectedJob int
	Mode        Mode

	MRSelectIndex int

	Log LogView

	Status      string
	Error       string
	LastRefresh time.Time

	AutoRefreshInterval time.Duration
	lastAutoRefresh     time.Time

	// Refresh-in-comments bookkeeping: which MR needs its notes
	// reloaded before jobs (-1 when none), and which note to reselect
	// once they arrive (0 when none; note IDs are positive).
	notesReloadMR int
	restoreNoteID int64

	ShouldQuit bool

	clock func() time.Time
}

func New(projectID int64, branch string, focusBranch bool, autoRefresh time.Duration) *State {
	status := "Loading merge requests..."
	if focusBranch && branch != "" {
		status = fmt.Sprintf("Loading MRs for branch %q...", branch)
	}
	return &State{
		ProjectID:           projectID,
		Branch:              branch,
		FocusBranch:         focusBranch,
		Status:              status,
		AutoRefreshInterval: autoRefresh,
		notesReloadMR:       -1,
		clock:               time.Now,
	}
}

// Selected returns the selected tracked MR, or nil when none exists.
func (s *State) Selected() *TrackedMergeRequest {
	if s.SelectedMR < 0 || s.SelectedMR >= len(s.Tracked) {
		return nil
	}
	return s.Tracked[s.SelectedMR]
}

// SelectedPipeline returns the selected MR's selected pipeline.
func (s *State) SelectedPipeline() *model.Pipeline {
	mr := s.Selected()
	if mr == nil || mr.SelectedPipeline < 0 || mr.SelectedPipeline >= len(mr.Pipelines) {
		return nil
	}
	return &mr.Pipelines[mr.SelectedPipeline]
}

// SelectedJobs returns the cached job list for the selected pipeline,
// or nil when the pipeline or its jobs are not loaded yet.
func (s *State) SelectedJobs() []model.Job {
	mr := s.Selected()
	p := s.SelectedPipeline()
	if mr == nil || p == nil {
		return nil
	}
	return mr.Jobs[p.ID]
}

// SelectedJobPtr returns the selected job within the selected
// pipeline's list.
func (s *State) SelectedJobPtr() *model.Job {
	jobs := s.SelectedJobs()
	if s.SelectedJob < 0 || s.SelectedJob >= len(jobs) {
		return nil
	}
	return &jobs[s.SelectedJob]
}

// SelectedUserNotes returns the selected MR's human-authored notes.
func (s *State) SelectedUserNotes() []model.Note {
	mr := s.Selected()
	if mr == nil {
		return nil
	}
	return model.UserNotes(mr.Notes)
}

func newTracked(mr model.MergeRequest) *TrackedMergeRequest {
	return &TrackedMergeRequest{
		MR:      mr,
		Jobs:    make(map[int64][]model.Job),
		Traces:  make(map[int64]string),
		Loading: true,
	}
}
