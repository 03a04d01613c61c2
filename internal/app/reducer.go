package app

import (
	"fmt"
	"sort"
	"time"

	"labpeek/internal/logproc"
	"labpeek/internal/model"
	"labpeek/internal/search"
)

// Apply runs one state transition. It mutates s synchronously and
// returns the effects the transition wants dispatched; it performs no
// I/O and never blocks. Results arriving for indices that no longer
// exist are dropped silently — out-of-order completion is normal.
func (s *State) Apply(action Action) []Effect {
	switch act := action.(type) {
	case Quit:
		s.ShouldQuit = true

	case NextMR:
		if len(s.Tracked) > 0 {
			s.SelectedMR = (s.SelectedMR + 1) % len(s.Tracked)
			s.SelectedJob = 0
		}

	case PrevMR:
		if len(s.Tracked) > 0 {
			s.SelectedMR = (s.SelectedMR - 1 + len(s.Tracked)) % len(s.Tracked)
			s.SelectedJob = 0
		}

	case NextJob:
		if jobs := s.SelectedJobs(); len(jobs) > 0 {
			s.SelectedJob = (s.SelectedJob + 1) % len(jobs)
		}

	case PrevJob:
		if jobs := s.SelectedJobs(); len(jobs) > 0 {
			s.SelectedJob = (s.SelectedJob - 1 + len(jobs)) % len(jobs)
		}

	case NextPipeline:
		return s.movePipeline(1)

	case PrevPipeline:
		return s.movePipeline(-1)

	case OpenSelectedJobLog:
		mr := s.Selected()
		job := s.SelectedJobPtr()
		if mr == nil || job == nil {
			return nil
		}
		if trace, ok := mr.Traces[job.ID]; ok {
			s.openLog(job.Name, trace)
			return nil
		}
		s.Status = fmt.Sprintf("Fetching log for job %q...", job.Name)
		return []Effect{FetchJobTrace{ProjectID: s.ProjectID, JobID: job.ID, JobName: job.Name}}

	case JobTraceLoaded:
		if mr := s.Selected(); mr != nil {
			mr.Traces[act.JobID] = act.Trace
		}
		s.Status = ""
		s.openLog(act.JobName, act.Trace)

	case Refresh:
		return s.refresh(s.clock())

	case Tick:
		if s.AutoRefreshInterval <= 0 {
			return nil
		}
		// The first tick only starts the interval; measuring from the
		// zero time would fire a refresh immediately after startup.
		if s.lastAutoRefresh.IsZero() {
			s.lastAutoRefresh = act.Now
			return nil
		}
		if act.Now.Sub(s.lastAutoRefresh) >= s.AutoRefreshInterval {
			return s.refresh(act.Now)
		}

	case RemoveCurrentMR:
		if len(s.Tracked) == 0 {
			return nil
		}
		s.Tracked = append(s.Tracked[:s.SelectedMR], s.Tracked[s.SelectedMR+1:]...)
		if s.SelectedMR > 0 {
			s.SelectedMR--
		}
		s.SelectedJob = 0

	case MergeRequestsLoaded:
		for _, mr := range act.MRs {
			exists := false
			for _, t := range s.Tracked {
				if t.MR.IID == mr.IID {
					exists = true
					break
				}
			}
			if exists {
				continue
			}
			if s.MaxTracked > 0 && len(s.Tracked) >= s.MaxTracked {
				break
			}
			s.Tracked = append(s.Tracked, newTracked(mr))
		}
		s.Status = fmt.Sprintf("Loaded %d merge requests", len(s.Tracked))
		effects := make([]Effect, 0, len(s.Tracked))
		for i, t := range s.Tracked {
			effects = append(effects, FetchPipelines{MRIndex: i, ProjectID: s.ProjectID, MRIID: t.MR.IID})
		}
		return effects

	case PipelinesLoaded:
		if act.MRIndex < 0 || act.MRIndex >= len(s.Tracked) {
			return nil
		}
		mr := s.Tracked[act.MRIndex]
		mr.Pipelines = act.Pipelines
		mr.Loading = false
		if mr.SelectedPipeline >= len(mr.Pipelines) {
			mr.SelectedPipeline = 0
		}
		if s.notesReloadMR == act.MRIndex {
			// Comments are on screen for this MR: reload them before
			// jobs so the view fills back in first.
			return []Effect{FetchNotes{MRIndex: act.MRIndex, ProjectID: s.ProjectID, MRIID: mr.MR.IID}}
		}
		if len(mr.Pipelines) > 0 {
			return []Effect{FetchJobs{MRIndex: act.MRIndex, ProjectID: s.ProjectID, PipelineID: mr.Pipelines[0].ID}}
		}

	case JobsLoaded:
		if act.MRIndex >= 0 && act.MRIndex < len(s.Tracked) {
			jobs := act.Jobs
			sort.SliceStable(jobs, func(i, j int) bool {
				return jobs[i].Status.SortPriority() < jobs[j].Status.SortPriority()
			})
			s.Tracked[act.MRIndex].Jobs[act.PipelineID] = jobs
			// A reload can shrink the list under the selection.
			if act.MRIndex == s.SelectedMR && s.SelectedJob >= len(jobs) {
				if p := s.SelectedPipeline(); p != nil && p.ID == act.PipelineID {
					s.SelectedJob = len(jobs) - 1
					if s.SelectedJob < 0 {
						s.SelectedJob = 0
					}
				}
			}
			s.LastRefresh = s.clock()
		}

	case ToggleCommentsView:
		switch s.Mode {
		case ModeViewingComments:
			s.Mode = ModeNormal
		case ModeNormal:
			s.Mode = ModeViewingComments
			if mr := s.Selected(); mr != nil && !mr.NotesLoaded {
				s.Status = "Loading comments..."
				return []Effect{FetchNotes{MRIndex: s.SelectedMR, ProjectID: s.ProjectID, MRIID: mr.MR.IID}}
			}
		}

	case NotesLoaded:
		if act.MRIndex < 0 || act.MRIndex >= len(s.Tracked) {
			return nil
		}
		mr := s.Tracked[act.MRIndex]
		mr.Notes = act.Notes
		mr.NotesLoaded = true
		mr.SelectedNote = 0
		if s.restoreNoteID != 0 && act.MRIndex == s.notesReloadMR {
			for i, n := range model.UserNotes(mr.Notes) {
				if n.ID == s.restoreNoteID {
					mr.SelectedNote = i
					break
				}
			}
			s.restoreNoteID = 0
		}
		s.Status = ""
		if act.MRIndex == s.notesReloadMR {
			s.notesReloadMR = -1
			if len(mr.Pipelines) > 0 {
				return []Effect{FetchJobs{MRIndex: act.MRIndex, ProjectID: s.ProjectID, PipelineID: mr.Pipelines[0].ID}}
			}
		}

	case NextNote:
		if s.Mode == ModeViewingComments {
			if notes := s.SelectedUserNotes(); len(notes) > 0 {
				mr := s.Selected()
				mr.SelectedNote = (mr.SelectedNote + 1) % len(notes)
			}
		}

	case PrevNote:
		if s.Mode == ModeViewingComments {
			if notes := s.SelectedUserNotes(); len(notes) > 0 {
				mr := s.Selected()
				mr.SelectedNote = (mr.SelectedNote - 1 + len(notes)) % len(notes)
			}
		}

	case OpenMRInBrowser:
		if mr := s.Selected(); mr != nil {
			return []Effect{OpenURL{URL: mr.MR.WebURL}}
		}

	case ShowHelp:
		s.Mode = ModeShowingHelp

	case HideHelp:
		s.Mode = ModeNormal

	case EnterMRSelect:
		if len(s.Tracked) > 0 {
			s.Mode = ModeSelectingMR
			s.MRSelectIndex = s.SelectedMR
		}

	case MRSelectNext:
		if s.Mode == ModeSelectingMR && len(s.Tracked) > 0 {
			s.MRSelectIndex = (s.MRSelectIndex + 1) % len(s.Tracked)
		}

	case MRSelectPrev:
		if s.Mode == ModeSelectingMR && len(s.Tracked) > 0 {
			s.MRSelectIndex = (s.MRSelectIndex - 1 + len(s.Tracked)) % len(s.Tracked)
		}

	case ConfirmMRSelect:
		if s.Mode == ModeSelectingMR {
			if s.MRSelectIndex >= 0 && s.MRSelectIndex < len(s.Tracked) {
				s.SelectedMR = s.MRSelectIndex
				s.SelectedJob = 0
			}
			s.Mode = ModeNormal
		}

	case CancelMRSelect:
		if s.Mode == ModeSelectingMR {
			s.Mode = ModeNormal
		}

	case CloseLogViewer:
		if s.Mode == ModeViewingLog {
			s.Mode = ModeNormal
			s.Log.Raw = ""
			s.Log.Lines = nil
			s.Log.JobName = ""
			s.Log.Offset = 0
			s.Log.Search = search.Index{}
			s.Log.Searching = false
		}

	case ScrollLog:
		if s.Mode == ModeViewingLog {
			s.Log.Offset = s.clampOffset(s.Log.Offset + act.Delta)
		}

	case ScrollLogTop:
		if s.Mode == ModeViewingLog {
			s.Log.Offset = 0
		}

	case ScrollLogBottom:
		if s.Mode == ModeViewingLog {
			s.Log.Offset = s.clampOffset(len(s.Log.Lines))
		}

	case ToggleTimestamps:
		if s.Mode == ModeViewingLog {
			s.Log.Timestamps = s.Log.Timestamps.Next()
			s.Log.Lines = logproc.Process(s.Log.Raw, s.Log.Timestamps)
			s.Log.Offset = s.clampOffset(s.Log.Offset)
		}

	case OpenLogInEditor:
		if s.Mode == ModeViewingLog && s.Log.Raw != "" {
			return []Effect{OpenInEditor{Content: s.Log.Raw, JobName: s.Log.JobName}}
		}

	case EditorFinished:
		if act.Err != nil {
			s.Error = fmt.Sprintf("editor: %v", act.Err)
		}

	case StartSearch:
		if s.Mode == ModeViewingLog {
			s.Log.Searching = true
		}

	case ExecuteSearch:
		if s.Mode == ModeViewingLog {
			s.Log.Searching = false
			s.Log.Search.Execute(logproc.SplitLines(s.Log.Raw), act.Query)
			s.centerOnMatch()
		}

	case CancelSearch:
		if s.Mode == ModeViewingLog {
			s.Log.Searching = false
			s.Log.Search.Cancel()
		}

	case NextMatch:
		if s.Mode == ModeViewingLog {
			s.Log.Search.Next()
			s.centerOnMatch()
		}

	case PrevMatch:
		if s.Mode == ModeViewingLog {
			s.Log.Search.Prev()
			s.centerOnMatch()
		}

	case APIError:
		s.Error = act.Message
		s.Status = ""

	case Resize:
		if act.Height > 0 {
			s.Log.Height = act.Height
			s.Log.Offset = s.clampOffset(s.Log.Offset)
		}
	}

	return nil
}

// movePipeline shifts the selected MR's pipeline selection by delta,
// resets the job selection, and fetches the pipeline's jobs when they
// are not cached yet.
func (s *State) movePipeline(delta int) []Effect {
	mr := s.Selected()
	if mr == nil || len(mr.Pipelines) == 0 {
		return nil
	}
	n := len(mr.Pipelines)
	mr.SelectedPipeline = (mr.SelectedPipeline + delta + n) % n
	s.SelectedJob = 0

	p := mr.Pipelines[mr.SelectedPipeline]
	if _, ok := mr.Jobs[p.ID]; !ok {
		return []Effect{FetchJobs{MRIndex: s.SelectedMR, ProjectID: s.ProjectID, PipelineID: p.ID}}
	}
	return nil
}

// refresh clears the volatile caches and kicks off a full reload.
// Pipelines and jobs stay visible until their own reloads land, so
// the dashboard never blanks out during a refresh.
func (s *State) refresh(now time.Time) []Effect {
	s.lastAutoRefresh = now

	// Drop any token a previous refresh left behind (its NotesLoaded
	// may never have arrived); it would misroute PipelinesLoaded.
	s.notesReloadMR = -1
	s.restoreNoteID = 0

	if s.Mode == ModeViewingComments {
		// Remember the note itself, not its index: new notes may be
		// prepended by the reload and shift every position.
		s.notesReloadMR = s.SelectedMR
		if mr := s.Selected(); mr != nil {
			notes := s.SelectedUserNotes()
			if mr.SelectedNote >= 0 && mr.SelectedNote < len(notes) {
				s.restoreNoteID = notes[mr.SelectedNote].ID
			}
		}
	}

	for _, mr := range s.Tracked {
		mr.Notes = nil
		mr.NotesLoaded = false
		mr.Traces = make(map[int64]string)
	}

	s.Status = "Refreshing..."
	s.Error = ""
	eff := RefreshAll{ProjectID: s.ProjectID}
	if s.FocusBranch {
		eff.Branch = s.Branch
	}
	return []Effect{eff}
}

func (s *State) openLog(jobName, trace string) {
	s.Log.Raw = trace
	s.Log.JobName = jobName
	s.Log.Lines = logproc.Process(trace, s.Log.Timestamps)
	s.Log.Offset = 0
	s.Log.Search = search.Index{}
	s.Log.Searching = false
	s.Mode = ModeViewingLog
}

func (s *State) centerOnMatch() {
	line := s.Log.Search.CurrentLine()
	if line < 0 {
		return
	}
	s.Log.Offset = search.CenterOffset(line, s.Log.Height, len(s.Log.Lines))
}

func (s *State) clampOffset(offset int) int {
	max := len(s.Log.Lines) - s.Log.Height
	if max < 0 {
		max = 0
	}
	if offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
