package app

// Effect describes asynchronous work the reducer wants done. The
// reducer never performs I/O itself; the TUI layer runs each effect
// concurrently and feeds the result back as an Action. Effects carry
// copies of the routing identifiers needed to tag their result, so a
// stale result can be dropped with a bounds check instead of an error.
type Effect interface{ effect() }

type FetchMergeRequests struct {
	ProjectID int64
}

type FetchMergeRequestsByBranch struct {
	ProjectID int64
	Branch    string
}

type FetchPipelines struct {
	MRIndex   int
	ProjectID int64
	MRIID     int64
}

type FetchJobs struct {
	MRIndex    int
	ProjectID  int64
	PipelineID int64
}

type FetchJobTrace struct {
	ProjectID int64
	JobID     int64
	JobName   string
}

type FetchNotes struct {
	MRIndex   int
	ProjectID int64
	MRIID     int64
}

// RefreshAll reloads the MR list; Branch is empty unless branch-focus
// mode is active.
type RefreshAll struct {
	ProjectID int64
	Branch    string
}

type OpenInEditor struct {
	Content string
	JobName string
}

type OpenURL struct {
	URL string
}

func (FetchMergeRequests) effect()         {}
func (FetchMergeRequestsByBranch) effect() {}
func (FetchPipelines) effect()             {}
func (FetchJobs) effect()                  {}
func (FetchJobTrace) effect()              {}
func (FetchNotes) effect()                 {}
func (RefreshAll) effect()                 {}
func (OpenInEditor) effect()               {}
func (OpenURL) effect()                    {}
