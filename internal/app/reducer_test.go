package app

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"labpeek/internal/model"
)

var testNow = time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)

func newTestState(autoRefresh time.Duration) *State {
	s := New(42, "", false, autoRefresh)
	s.clock = func() time.Time { return testNow }
	return s
}

func testMRs(n int) []model.MergeRequest {
	mrs := make([]model.MergeRequest, n)
	for i := range mrs {
		mrs[i] = model.MergeRequest{
			ID:    int64(100 + i),
			IID:   int64(i + 1),
			Title: fmt.Sprintf("MR %d", i+1),
		}
	}
	return mrs
}

func TestNextMRWrapsAround(t *testing.T) {
	s := newTestState(0)
	s.Apply(MergeRequestsLoaded{MRs: testMRs(3)})

	for i := 0; i < 3; i++ {
		s.Apply(NextMR{})
	}
	if s.SelectedMR != 0 {
		t.Fatalf("after 3x NextMR over 3 MRs, SelectedMR = %d, want 0", s.SelectedMR)
	}

	s.Apply(PrevMR{})
	if s.SelectedMR != 2 {
		t.Fatalf("PrevMR from 0 should wrap to 2, got %d", s.SelectedMR)
	}
}

func TestNextMRResetsJobSelection(t *testing.T) {
	s := newTestState(0)
	s.Apply(MergeRequestsLoaded{MRs: testMRs(2)})
	s.Apply(PipelinesLoaded{MRIndex: 0, Pipelines: []model.Pipeline{{ID: 1}}})
	s.Apply(JobsLoaded{MRIndex: 0, PipelineID: 1, Jobs: []model.Job{
		{ID: 1, Status: model.JobSuccess}, {ID: 2, Status: model.JobSuccess},
	}})
	s.Apply(NextJob{})
	if s.SelectedJob != 1 {
		t.Fatalf("SelectedJob = %d, want 1", s.SelectedJob)
	}

	s.Apply(NextMR{})
	if s.SelectedJob != 0 {
		t.Fatalf("switching MR should reset SelectedJob, got %d", s.SelectedJob)
	}
}

func TestMergeRequestsLoadedFetchesPipelinesPerMR(t *testing.T) {
	s := newTestState(0)
	effects := s.Apply(MergeRequestsLoaded{MRs: testMRs(3)})

	if len(effects) != 3 {
		t.Fatalf("got %d effects, want 3", len(effects))
	}
	for i, eff := range effects {
		fp, ok := eff.(FetchPipelines)
		if !ok {
			t.Fatalf("effect %d is %T, want FetchPipelines", i, eff)
		}
		if fp.MRIndex != i || fp.MRIID != int64(i+1) {
			t.Errorf("effect %d routes to MRIndex=%d IID=%d", i, fp.MRIndex, fp.MRIID)
		}
	}
}

func TestMergeRequestsLoadedDeduplicatesByIID(t *testing.T) {
	s := newTestState(0)
	s.Apply(MergeRequestsLoaded{MRs: testMRs(2)})
	s.Apply(MergeRequestsLoaded{MRs: testMRs(3)})

	if len(s.Tracked) != 3 {
		t.Fatalf("tracked %d MRs, want 3 (reload must not duplicate)", len(s.Tracked))
	}
}

func TestMergeRequestsLoadedHonorsMaxTracked(t *testing.T) {
	s := newTestState(0)
	s.MaxTracked = 2
	s.Apply(MergeRequestsLoaded{MRs: testMRs(5)})

	if len(s.Tracked) != 2 {
		t.Fatalf("tracked %d MRs, want 2", len(s.Tracked))
	}
}

func TestJobsLoadedSortsByAttention(t *testing.T) {
	s := newTestState(0)
	s.Apply(MergeRequestsLoaded{MRs: testMRs(1)})
	s.Apply(PipelinesLoaded{MRIndex: 0, Pipelines: []model.Pipeline{{ID: 7}}})

	s.Apply(JobsLoaded{MRIndex: 0, PipelineID: 7, Jobs: []model.Job{
		{ID: 1, Name: "build", Status: model.JobSuccess},
		{ID: 2, Name: "lint", Status: model.JobSkipped},
		{ID: 3, Name: "test-a", Status: model.JobFailed},
		{ID: 4, Name: "deploy", Status: model.JobRunning},
		{ID: 5, Name: "test-b", Status: model.JobFailed},
	}})

	jobs := s.Tracked[0].Jobs[7]
	wantOrder := []string{"test-a", "test-b", "deploy", "build", "lint"}
	for i, name := range wantOrder {
		if jobs[i].Name != name {
			t.Fatalf("jobs[%d] = %q, want %q (full order %v)", i, jobs[i].Name, name, jobNames(jobs))
		}
	}
}

func jobNames(jobs []model.Job) []string {
	names := make([]string, len(jobs))
	for i, j := range jobs {
		names[i] = j.Name
	}
	return names
}

func TestStaleResultsAreDropped(t *testing.T) {
	s := newTestState(0)
	s.Apply(MergeRequestsLoaded{MRs: testMRs(1)})

	// Results addressed to MRs that no longer exist must be ignored.
	if eff := s.Apply(PipelinesLoaded{MRIndex: 5, Pipelines: []model.Pipeline{{ID: 1}}}); eff != nil {
		t.Fatalf("stale PipelinesLoaded produced effects: %v", eff)
	}
	s.Apply(JobsLoaded{MRIndex: -1, PipelineID: 1, Jobs: []model.Job{{ID: 1}}})
	s.Apply(NotesLoaded{MRIndex: 9, Notes: []model.Note{{ID: 1}}})

	if len(s.Tracked[0].Jobs) != 0 || s.Tracked[0].NotesLoaded {
		t.Fatal("stale results mutated unrelated MR state")
	}
	if !s.LastRefresh.IsZero() {
		t.Fatal("a dropped JobsLoaded must not count as a refresh")
	}
}

func TestPipelinesLoadedClearsOnlyOwnLoadingFlag(t *testing.T) {
	s := newTestState(0)
	s.Apply(MergeRequestsLoaded{MRs: testMRs(2)})

	// Results land in completion order, not dispatch order: MR 1's
	// pipelines arrive first.
	s.Apply(PipelinesLoaded{MRIndex: 1, Pipelines: []model.Pipeline{{ID: 2}}})
	if s.Tracked[1].Loading {
		t.Fatal("MR 1 should stop loading once its pipelines land")
	}
	if !s.Tracked[0].Loading {
		t.Fatal("MR 0 is still waiting for its own result")
	}

	s.Apply(PipelinesLoaded{MRIndex: 0, Pipelines: []model.Pipeline{{ID: 1}}})
	if s.Tracked[0].Loading {
		t.Fatal("MR 0 should stop loading once its pipelines land")
	}
}

func TestPipelinesLoadedFetchesFirstPipelineJobs(t *testing.T) {
	s := newTestState(0)
	s.Apply(MergeRequestsLoaded{MRs: testMRs(1)})

	effects := s.Apply(PipelinesLoaded{MRIndex: 0, Pipelines: []model.Pipeline{{ID: 11}, {ID: 10}}})
	fj, ok := effects[0].(FetchJobs)
	if !ok || fj.PipelineID != 11 {
		t.Fatalf("want FetchJobs for newest pipeline 11, got %v", effects)
	}
	if s.Tracked[0].Loading {
		t.Fatal("Loading flag should clear once pipelines land")
	}
}

func TestJobsReloadClampsSelection(t *testing.T) {
	s := newTestState(0)
	s.Apply(MergeRequestsLoaded{MRs: testMRs(1)})
	s.Apply(PipelinesLoaded{MRIndex: 0, Pipelines: []model.Pipeline{{ID: 7}}})
	s.Apply(JobsLoaded{MRIndex: 0, PipelineID: 7, Jobs: []model.Job{
		{ID: 1, Status: model.JobSuccess}, {ID: 2, Status: model.JobSuccess}, {ID: 3, Status: model.JobSuccess},
	}})
	s.Apply(NextJob{})
	s.Apply(NextJob{})

	s.Apply(JobsLoaded{MRIndex: 0, PipelineID: 7, Jobs: []model.Job{{ID: 1, Status: model.JobSuccess}}})
	if s.SelectedJob != 0 {
		t.Fatalf("SelectedJob = %d after the list shrank to 1", s.SelectedJob)
	}
	if s.SelectedJobPtr() == nil {
		t.Fatal("selection must stay valid after a shrinking reload")
	}

	s.Apply(JobsLoaded{MRIndex: 0, PipelineID: 7, Jobs: nil})
	if s.SelectedJob != 0 {
		t.Fatalf("SelectedJob = %d after an empty reload", s.SelectedJob)
	}
}

func TestJobsReloadElsewhereKeepsSelection(t *testing.T) {
	s := newTestState(0)
	s.Apply(MergeRequestsLoaded{MRs: testMRs(2)})
	s.Apply(PipelinesLoaded{MRIndex: 0, Pipelines: []model.Pipeline{{ID: 7}}})
	s.Apply(PipelinesLoaded{MRIndex: 1, Pipelines: []model.Pipeline{{ID: 8}}})
	s.Apply(JobsLoaded{MRIndex: 0, PipelineID: 7, Jobs: []model.Job{
		{ID: 1, Status: model.JobSuccess}, {ID: 2, Status: model.JobSuccess},
	}})
	s.Apply(NextJob{})

	// A result for the other MR must not touch the current selection.
	s.Apply(JobsLoaded{MRIndex: 1, PipelineID: 8, Jobs: nil})
	if s.SelectedJob != 1 {
		t.Fatalf("SelectedJob = %d, want 1", s.SelectedJob)
	}
}

func TestRemoveCurrentMRDecrementsSelection(t *testing.T) {
	s := newTestState(0)
	s.Apply(MergeRequestsLoaded{MRs: testMRs(3)})
	s.Apply(NextMR{})
	s.Apply(NextMR{})

	s.Apply(RemoveCurrentMR{})
	if len(s.Tracked) != 2 || s.SelectedMR != 1 {
		t.Fatalf("after removal: len=%d selected=%d, want 2/1", len(s.Tracked), s.SelectedMR)
	}

	s.Apply(RemoveCurrentMR{})
	s.Apply(RemoveCurrentMR{})
	if len(s.Tracked) != 0 || s.SelectedMR != 0 {
		t.Fatalf("after removing all: len=%d selected=%d", len(s.Tracked), s.SelectedMR)
	}

	// Removing with nothing tracked must be a no-op.
	s.Apply(RemoveCurrentMR{})
}

func TestOpenSelectedJobLogFetchesThenCaches(t *testing.T) {
	s := newTestState(0)
	s.Apply(MergeRequestsLoaded{MRs: testMRs(1)})
	s.Apply(PipelinesLoaded{MRIndex: 0, Pipelines: []model.Pipeline{{ID: 1}}})
	s.Apply(JobsLoaded{MRIndex: 0, PipelineID: 1, Jobs: []model.Job{{ID: 33, Name: "build", Status: model.JobFailed}}})

	effects := s.Apply(OpenSelectedJobLog{})
	ft, ok := effects[0].(FetchJobTrace)
	if !ok || ft.JobID != 33 {
		t.Fatalf("first open should fetch the trace, got %v", effects)
	}
	if s.Mode == ModeViewingLog {
		t.Fatal("viewer must not open before the trace arrives")
	}

	s.Apply(JobTraceLoaded{JobID: 33, JobName: "build", Trace: "hello\nworld\n"})
	if s.Mode != ModeViewingLog {
		t.Fatal("viewer should open when the trace lands")
	}
	if len(s.Log.Lines) != 2 {
		t.Fatalf("processed %d lines, want 2", len(s.Log.Lines))
	}

	// Second open must hit the cache: no effects, viewer opens directly.
	s.Apply(CloseLogViewer{})
	if effects := s.Apply(OpenSelectedJobLog{}); effects != nil {
		t.Fatalf("cached open produced effects: %v", effects)
	}
	if s.Mode != ModeViewingLog {
		t.Fatal("cached open should enter the viewer")
	}
}

func TestRefreshClearsVolatileCachesKeepsPipelines(t *testing.T) {
	s := newTestState(0)
	s.Apply(MergeRequestsLoaded{MRs: testMRs(1)})
	s.Apply(PipelinesLoaded{MRIndex: 0, Pipelines: []model.Pipeline{{ID: 1}}})
	s.Apply(JobsLoaded{MRIndex: 0, PipelineID: 1, Jobs: []model.Job{{ID: 33, Status: model.JobSuccess}}})
	s.Apply(JobTraceLoaded{JobID: 33, JobName: "build", Trace: "x"})
	s.Apply(CloseLogViewer{})
	s.Apply(NotesLoaded{MRIndex: 0, Notes: []model.Note{{ID: 1, Body: "hi"}}})

	effects := s.Apply(Refresh{})
	if _, ok := effects[0].(RefreshAll); !ok {
		t.Fatalf("refresh should emit RefreshAll, got %v", effects)
	}

	mr := s.Tracked[0]
	if mr.Notes != nil || mr.NotesLoaded {
		t.Fatal("refresh must clear notes")
	}
	if len(mr.Traces) != 0 {
		t.Fatal("refresh must clear trace cache")
	}
	if len(mr.Pipelines) != 1 || len(mr.Jobs[1]) != 1 {
		t.Fatal("refresh must keep stale pipelines and jobs visible")
	}
}

func TestRefreshWhileViewingCommentsRestoresNoteByID(t *testing.T) {
	s := newTestState(0)
	s.Apply(MergeRequestsLoaded{MRs: testMRs(1)})
	s.Apply(PipelinesLoaded{MRIndex: 0, Pipelines: []model.Pipeline{{ID: 1}}})

	notes := []model.Note{
		{ID: 10, Body: "first"},
		{ID: 11, Body: "second", System: true},
		{ID: 12, Body: "third"},
	}
	s.Apply(ToggleCommentsView{})
	s.Apply(NotesLoaded{MRIndex: 0, Notes: notes})
	s.Apply(NextNote{}) // user-note index 1 = ID 12

	s.Apply(Refresh{})

	// Pipeline reload for the on-screen MR must reload notes before jobs.
	effects := s.Apply(PipelinesLoaded{MRIndex: 0, Pipelines: []model.Pipeline{{ID: 1}}})
	if _, ok := effects[0].(FetchNotes); !ok {
		t.Fatalf("expected FetchNotes first while comments are open, got %v", effects)
	}

	// A new note lands at the top and shifts every index.
	reloaded := append([]model.Note{{ID: 13, Body: "newest"}}, notes...)
	effects = s.Apply(NotesLoaded{MRIndex: 0, Notes: reloaded})

	userNotes := s.SelectedUserNotes()
	selected := userNotes[s.Tracked[0].SelectedNote]
	if selected.ID != 12 {
		t.Fatalf("selection should follow note ID 12 across reload, got ID %d", selected.ID)
	}

	// And jobs reload resumes afterwards.
	if _, ok := effects[0].(FetchJobs); !ok {
		t.Fatalf("expected FetchJobs chained after notes reload, got %v", effects)
	}
}

func TestFirstTickStartsIntervalWithoutRefreshing(t *testing.T) {
	s := newTestState(time.Minute)

	// However much wall time passed since startup, the first tick must
	// only start the interval, never refresh.
	if eff := s.Apply(Tick{Now: testNow.Add(48 * time.Hour)}); eff != nil {
		t.Fatalf("first tick refreshed: %v", eff)
	}

	eff := s.Apply(Tick{Now: testNow.Add(48*time.Hour + time.Minute)})
	if len(eff) != 1 {
		t.Fatalf("tick one interval after the first should refresh, got %v", eff)
	}
}

func TestRefreshOutsideCommentsClearsPendingNotesReload(t *testing.T) {
	s := newTestState(0)
	s.Apply(MergeRequestsLoaded{MRs: testMRs(1)})
	s.Apply(PipelinesLoaded{MRIndex: 0, Pipelines: []model.Pipeline{{ID: 1}}})

	// A refresh inside comments arms the notes-reload token, but its
	// NotesLoaded never arrives (the fetch failed).
	s.Apply(ToggleCommentsView{})
	s.Apply(NotesLoaded{MRIndex: 0, Notes: []model.Note{{ID: 10, Body: "hi"}}})
	s.Apply(Refresh{})
	s.Apply(APIError{Message: "rate limited"})

	// Refreshing again from the dashboard must drop the stale token.
	s.Apply(ToggleCommentsView{})
	s.Apply(Refresh{})

	effects := s.Apply(PipelinesLoaded{MRIndex: 0, Pipelines: []model.Pipeline{{ID: 1}}})
	if _, ok := effects[0].(FetchJobs); !ok {
		t.Fatalf("pipelines after a dashboard refresh should fetch jobs, got %v", effects)
	}
}

func TestAutoRefreshTicks(t *testing.T) {
	s := newTestState(time.Minute)
	s.Apply(Tick{Now: testNow}) // arms the interval

	if eff := s.Apply(Tick{Now: testNow.Add(30 * time.Second)}); eff != nil {
		t.Fatalf("tick before the interval refreshed: %v", eff)
	}

	eff := s.Apply(Tick{Now: testNow.Add(90 * time.Second)})
	if len(eff) != 1 {
		t.Fatalf("tick past the interval should refresh, got %v", eff)
	}
	if _, ok := eff[0].(RefreshAll); !ok {
		t.Fatalf("got %T, want RefreshAll", eff[0])
	}

	// The interval restarts from the refresh that just fired.
	if eff := s.Apply(Tick{Now: testNow.Add(91 * time.Second)}); eff != nil {
		t.Fatalf("tick right after a refresh refreshed again: %v", eff)
	}
}

func TestAutoRefreshDisabledWhenIntervalZero(t *testing.T) {
	s := newTestState(0)
	if eff := s.Apply(Tick{Now: testNow.Add(24 * time.Hour)}); eff != nil {
		t.Fatalf("auto refresh should be off, got %v", eff)
	}
}

func TestToggleCommentsFetchesLazily(t *testing.T) {
	s := newTestState(0)
	s.Apply(MergeRequestsLoaded{MRs: testMRs(1)})

	effects := s.Apply(ToggleCommentsView{})
	if s.Mode != ModeViewingComments {
		t.Fatal("toggle should enter comments mode")
	}
	if _, ok := effects[0].(FetchNotes); !ok {
		t.Fatalf("first toggle should fetch notes, got %v", effects)
	}

	s.Apply(NotesLoaded{MRIndex: 0, Notes: []model.Note{{ID: 1}}})
	s.Apply(ToggleCommentsView{})
	if effects := s.Apply(ToggleCommentsView{}); effects != nil {
		t.Fatalf("second entry should reuse cached notes, got %v", effects)
	}
}

func openTestLog(s *State, lines int, height int) {
	parts := make([]string, lines)
	for i := range parts {
		parts[i] = fmt.Sprintf("line %03d", i)
	}
	parts[50] = "ERROR: something broke"
	s.Apply(MergeRequestsLoaded{MRs: testMRs(1)})
	s.Apply(Resize{Width: 80, Height: height})
	s.Apply(JobTraceLoaded{JobID: 1, JobName: "build", Trace: strings.Join(parts, "\n")})
}

func TestSearchCentersViewportOnMatch(t *testing.T) {
	s := newTestState(0)
	openTestLog(s, 100, 20)

	s.Apply(StartSearch{})
	if !s.Log.Searching {
		t.Fatal("StartSearch should open the prompt")
	}
	s.Apply(ExecuteSearch{Query: "error"})

	if got := s.Log.Search.Matches; len(got) != 1 || got[0] != 50 {
		t.Fatalf("matches = %v, want [50]", got)
	}
	if s.Log.Offset != 40 {
		t.Fatalf("offset = %d, want 40 (match centered in 20-line viewport)", s.Log.Offset)
	}
	if s.Log.Searching {
		t.Fatal("executing the search should close the prompt")
	}
}

func TestSearchNavigationWraps(t *testing.T) {
	s := newTestState(0)
	openTestLog(s, 100, 20)

	s.Apply(ExecuteSearch{Query: "line 04"})
	if len(s.Log.Search.Matches) != 10 {
		t.Fatalf("got %d matches, want 10", len(s.Log.Search.Matches))
	}

	for i := 0; i < 10; i++ {
		s.Apply(NextMatch{})
	}
	if s.Log.Search.Current != 0 {
		t.Fatalf("n cycled %d times should wrap to 0, got %d", 10, s.Log.Search.Current)
	}
	s.Apply(PrevMatch{})
	if s.Log.Search.Current != 9 {
		t.Fatalf("N from 0 should wrap to last, got %d", s.Log.Search.Current)
	}
}

func TestCancelSearchKeepsMatches(t *testing.T) {
	s := newTestState(0)
	openTestLog(s, 100, 20)

	s.Apply(ExecuteSearch{Query: "error"})
	s.Apply(StartSearch{})
	s.Apply(CancelSearch{})

	if s.Log.Search.Query != "" {
		t.Fatal("cancel should clear the query")
	}
	if len(s.Log.Search.Matches) != 1 {
		t.Fatal("cancel should keep matches for n/N navigation")
	}
}

func TestScrollClampsToContent(t *testing.T) {
	s := newTestState(0)
	openTestLog(s, 100, 20)

	s.Apply(ScrollLog{Delta: 1000})
	if s.Log.Offset != 80 {
		t.Fatalf("offset = %d, want 80 (content 100, viewport 20)", s.Log.Offset)
	}
	s.Apply(ScrollLog{Delta: -1000})
	if s.Log.Offset != 0 {
		t.Fatalf("offset = %d, want 0", s.Log.Offset)
	}

	s.Apply(ScrollLogBottom{})
	if s.Log.Offset != 80 {
		t.Fatalf("G: offset = %d, want 80", s.Log.Offset)
	}
	s.Apply(ScrollLogTop{})
	if s.Log.Offset != 0 {
		t.Fatalf("g: offset = %d, want 0", s.Log.Offset)
	}
}

func TestToggleTimestampsKeepsLineCount(t *testing.T) {
	s := newTestState(0)
	openTestLog(s, 100, 20)

	before := len(s.Log.Lines)
	for i := 0; i < 3; i++ {
		s.Apply(ToggleTimestamps{})
		if len(s.Log.Lines) != before {
			t.Fatalf("line count changed after toggle %d: %d != %d", i, len(s.Log.Lines), before)
		}
	}
	if s.Log.Timestamps != 0 {
		t.Fatalf("three toggles should cycle back to hidden, got %v", s.Log.Timestamps)
	}
}

func TestCloseLogViewerResetsState(t *testing.T) {
	s := newTestState(0)
	openTestLog(s, 100, 20)
	s.Apply(ExecuteSearch{Query: "error"})

	s.Apply(CloseLogViewer{})
	if s.Mode != ModeNormal {
		t.Fatal("close should return to normal mode")
	}
	if s.Log.Raw != "" || s.Log.Lines != nil || len(s.Log.Search.Matches) != 0 {
		t.Fatal("close should reset the viewer state")
	}
}

func TestMRSelectFlow(t *testing.T) {
	s := newTestState(0)
	s.Apply(MergeRequestsLoaded{MRs: testMRs(3)})

	s.Apply(EnterMRSelect{})
	if s.Mode != ModeSelectingMR || s.MRSelectIndex != 0 {
		t.Fatalf("mode=%v index=%d after entering selection", s.Mode, s.MRSelectIndex)
	}

	s.Apply(MRSelectNext{})
	s.Apply(MRSelectNext{})
	s.Apply(ConfirmMRSelect{})
	if s.Mode != ModeNormal || s.SelectedMR != 2 {
		t.Fatalf("confirm: mode=%v selected=%d, want normal/2", s.Mode, s.SelectedMR)
	}

	s.Apply(EnterMRSelect{})
	s.Apply(MRSelectPrev{})
	s.Apply(CancelMRSelect{})
	if s.SelectedMR != 2 {
		t.Fatalf("cancel must not change the selection, got %d", s.SelectedMR)
	}
}

func TestAPIErrorShowsInStatus(t *testing.T) {
	s := newTestState(0)
	s.Apply(APIError{Message: "authentication failed"})
	if s.Error != "authentication failed" {
		t.Fatalf("Error = %q", s.Error)
	}
	if s.Status != "" {
		t.Fatalf("Status should clear on error, got %q", s.Status)
	}
}

func TestMovePipelineFetchesUncachedJobs(t *testing.T) {
	s := newTestState(0)
	s.Apply(MergeRequestsLoaded{MRs: testMRs(1)})
	s.Apply(PipelinesLoaded{MRIndex: 0, Pipelines: []model.Pipeline{{ID: 2}, {ID: 1}}})
	s.Apply(JobsLoaded{MRIndex: 0, PipelineID: 2, Jobs: []model.Job{{ID: 9}}})

	effects := s.Apply(NextPipeline{})
	fj, ok := effects[0].(FetchJobs)
	if !ok || fj.PipelineID != 1 {
		t.Fatalf("moving to an uncached pipeline should fetch its jobs, got %v", effects)
	}

	s.Apply(JobsLoaded{MRIndex: 0, PipelineID: 1, Jobs: []model.Job{{ID: 8}}})
	s.Apply(PrevPipeline{})
	if effects := s.Apply(NextPipeline{}); effects != nil {
		t.Fatalf("cached pipeline jobs should not refetch, got %v", effects)
	}
}

func TestOpenMRInBrowser(t *testing.T) {
	s := newTestState(0)
	s.Apply(MergeRequestsLoaded{MRs: []model.MergeRequest{
		{IID: 1, WebURL: "https://gitlab.com/g/p/-/merge_requests/1"},
	}})

	effects := s.Apply(OpenMRInBrowser{})
	open, ok := effects[0].(OpenURL)
	if !ok || open.URL != "https://gitlab.com/g/p/-/merge_requests/1" {
		t.Fatalf("got %v", effects)
	}
}
