package app

import (
	"time"

	"labpeek/internal/model"
)

// Action is one atomic input to the reducer: either a key-driven user
// intent or the result of a completed fetch. Actions are applied one
// at a time on the program's message queue.
type Action interface{ action() }

// User intents.
type (
	Quit         struct{}
	NextMR       struct{}
	PrevMR       struct{}
	NextJob      struct{}
	PrevJob      struct{}
	NextPipeline struct{}
	PrevPipeline struct{}

	OpenSelectedJobLog struct{}
	Refresh            struct{}
	RemoveCurrentMR    struct{}
	OpenMRInBrowser    struct{}

	ShowHelp struct{}
	HideHelp struct{}

	ToggleCommentsView struct{}
	NextNote           struct{}
	PrevNote           struct{}

	EnterMRSelect   struct{}
	MRSelectNext    struct{}
	MRSelectPrev    struct{}
	ConfirmMRSelect struct{}
	CancelMRSelect  struct{}

	CloseLogViewer   struct{}
	ScrollLog        struct{ Delta int }
	ScrollLogTop     struct{}
	ScrollLogBottom  struct{}
	ToggleTimestamps struct{}
	OpenLogInEditor  struct{}

	StartSearch   struct{}
	ExecuteSearch struct{ Query string }
	CancelSearch  struct{}
	NextMatch     struct{}
	PrevMatch     struct{}
)

// Fetch results and runtime signals.
type (
	MergeRequestsLoaded struct{ MRs []model.MergeRequest }

	PipelinesLoaded struct {
		MRIndex   int
		Pipelines []model.Pipeline
	}

	JobsLoaded struct {
		MRIndex    int
		PipelineID int64
		Jobs       []model.Job
	}

	JobTraceLoaded struct {
		JobID   int64
		JobName string
		Trace   string
	}

	NotesLoaded struct {
		MRIndex int
		Notes   []model.Note
	}

	APIError struct{ Message string }

	EditorFinished struct{ Err error }

	Tick struct{ Now time.Time }

	Resize struct{ Width, Height int }
)

func (Quit) action()               {}
func (NextMR) action()             {}
func (PrevMR) action()             {}
func (NextJob) action()            {}
func (PrevJob) action()            {}
func (NextPipeline) action()       {}
func (PrevPipeline) action()       {}
func (OpenSelectedJobLog) action() {}
func (Refresh) action()            {}
func (RemoveCurrentMR) action()    {}
func (OpenMRInBrowser) action()    {}
func (ShowHelp) action()           {}
func (HideHelp) action()           {}
func (ToggleCommentsView) action() {}
func (NextNote) action()           {}
func (PrevNote) action()           {}
func (EnterMRSelect) action()      {}
func (MRSelectNext) action()       {}
func (MRSelectPrev) action()       {}
func (ConfirmMRSelect) action()    {}
func (CancelMRSelect) action()     {}
func (CloseLogViewer) action()     {}
func (ScrollLog) action()          {}
func (ScrollLogTop) action()       {}
func (ScrollLogBottom) action()    {}
func (ToggleTimestamps) action()   {}
func (OpenLogInEditor) action()    {}
func (StartSearch) action()        {}
func (ExecuteSearch) action()      {}
func (CancelSearch) action()       {}
func (NextMatch) action()          {}
func (PrevMatch) action()          {}

func (MergeRequestsLoaded) action() {}
func (PipelinesLoaded) action()     {}
func (JobsLoaded) action()          {}
func (JobTraceLoaded) action()      {}
func (NotesLoaded) action()         {}
func (APIError) action()            {}
func (EditorFinished) action()      {}
func (Tick) action()                {}
func (Resize) action()              {}
