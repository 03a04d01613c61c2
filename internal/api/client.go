// Package api wraps the GitLab REST client behind the small surface
// the dashboard needs, converting wire types into internal model types
// and HTTP failures into user-presentable messages.
package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	gitlab "gitlab.com/gitlab-org/api/client-go"

	"labpeek/internal/model"
)

const (
	mrsPerPage       = 20
	pipelinesPerPage = 10
	jobsPerPage      = 100
	notesPerPage     = 100
)

type Client struct {
	gl *gitlab.Client
}

// NewClient builds an authenticated client for the given instance,
// e.g. "https://gitlab.com".
func NewClient(instanceURL, token string) (*Client, error) {
	gl, err := gitlab.NewClient(token, gitlab.WithBaseURL(instanceURL))
	if err != nil {
		return nil, fmt.Errorf("create GitLab client: %w", err)
	}
	return &Client{gl: gl}, nil
}

// GetProjectByPath resolves "namespace/project" to project metadata.
func (c *Client) GetProjectByPath(path string) (*model.Project, error) {
	proj, resp, err := c.gl.Projects.GetProject(path, nil)
	if err != nil {
		return nil, classify(resp, fmt.Errorf("get project %q: %w", path, err))
	}
	return &model.Project{
		ID:                int64(proj.ID),
		Name:              proj.Name,
		PathWithNamespace: proj.PathWithNamespace,
		WebURL:            proj.WebURL,
	}, nil
}

// ListOpenMergeRequests returns the project's open MRs, optionally
// restricted to a source branch.
func (c *Client) ListOpenMergeRequests(projectID int64, sourceBranch string) ([]model.MergeRequest, error) {
	opt := &gitlab.ListProjectMergeRequestsOptions{
		State:       gitlab.Ptr("opened"),
		ListOptions: gitlab.ListOptions{PerPage: mrsPerPage},
	}
	if sourceBranch != "" {
		opt.SourceBranch = gitlab.Ptr(sourceBranch)
	}
	mrs, resp, err := c.gl.MergeRequests.ListProjectMergeRequests(int(projectID), opt)
	if err != nil {
		return nil, classify(resp, fmt.Errorf("list merge requests: %w", err))
	}
	out := make([]model.MergeRequest, 0, len(mrs))
	for _, mr := range mrs {
		m := model.MergeRequest{
			ID:           int64(mr.ID),
			IID:          int64(mr.IID),
			Title:        mr.Title,
			State:        mr.State,
			SourceBranch: mr.SourceBranch,
			WebURL:       mr.WebURL,
			CreatedAt:    deref(mr.CreatedAt),
			UpdatedAt:    deref(mr.UpdatedAt),
		}
		if mr.Author != nil {
			m.Author = model.User{
				ID:       int64(mr.Author.ID),
				Username: mr.Author.Username,
				Name:     mr.Author.Name,
			}
		}
		out = append(out, m)
	}
	return out, nil
}

// ListMRPipelines returns an MR's pipelines in API order (newest
// first).
func (c *Client) ListMRPipelines(projectID, mrIID int64) ([]model.Pipeline, error) {
	infos, resp, err := c.gl.MergeRequests.ListMergeRequestPipelines(int(projectID), int(mrIID))
	if err != nil {
		return nil, classify(resp, fmt.Errorf("list pipelines for MR !%d: %w", mrIID, err))
	}
	if len(infos) > pipelinesPerPage {
		infos = infos[:pipelinesPerPage]
	}
	out := make([]model.Pipeline, 0, len(infos))
	for _, p := range infos {
		out = append(out, model.Pipeline{
			ID:        int64(p.ID),
			IID:       int64(p.IID),
			Status:    model.PipelineStatus(p.Status),
			Ref:       p.Ref,
			SHA:       p.SHA,
			WebURL:    p.WebURL,
			CreatedAt: deref(p.CreatedAt),
			UpdatedAt: deref(p.UpdatedAt),
		})
	}
	return out, nil
}

// ListPipelineJobs returns a pipeline's jobs.
func (c *Client) ListPipelineJobs(projectID, pipelineID int64) ([]model.Job, error) {
	opt := &gitlab.ListJobsOptions{
		ListOptions: gitlab.ListOptions{PerPage: jobsPerPage},
	}
	jobs, resp, err := c.gl.Jobs.ListPipelineJobs(int(projectID), int(pipelineID), opt)
	if err != nil {
		return nil, classify(resp, fmt.Errorf("list jobs for pipeline %d: %w", pipelineID, err))
	}
	out := make([]model.Job, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, model.Job{
			ID:         int64(j.ID),
			Name:       j.Name,
			Status:     model.JobStatus(j.Status),
			Stage:      j.Stage,
			WebURL:     j.WebURL,
			CreatedAt:  deref(j.CreatedAt),
			StartedAt:  deref(j.StartedAt),
			FinishedAt: deref(j.FinishedAt),
			Duration:   j.Duration,
		})
	}
	return out, nil
}

// GetJobTrace fetches a job's raw log text.
func (c *Client) GetJobTrace(projectID, jobID int64) (string, error) {
	reader, resp, err := c.gl.Jobs.GetTraceFile(int(projectID), int(jobID))
	if err != nil {
		return "", classify(resp, fmt.Errorf("get trace for job %d: %w", jobID, err))
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read trace for job %d: %w", jobID, err)
	}
	return string(data), nil
}

// ListMRNotes returns an MR's notes, newest first.
func (c *Client) ListMRNotes(projectID, mrIID int64) ([]model.Note, error) {
	opt := &gitlab.ListMergeRequestNotesOptions{
		OrderBy:     gitlab.Ptr("created_at"),
		Sort:        gitlab.Ptr("desc"),
		ListOptions: gitlab.ListOptions{PerPage: notesPerPage},
	}
	notes, resp, err := c.gl.Notes.ListMergeRequestNotes(int(projectID), int(mrIID), opt)
	if err != nil {
		return nil, classify(resp, fmt.Errorf("list notes for MR !%d: %w", mrIID, err))
	}
	out := make([]model.Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, model.Note{
			ID:     int64(n.ID),
			Body:   n.Body,
			System: n.System,
			Author: model.User{
				ID:       int64(n.Author.ID),
				Username: n.Author.Username,
				Name:     n.Author.Name,
			},
			CreatedAt: deref(n.CreatedAt),
			UpdatedAt: deref(n.UpdatedAt),
		})
	}
	return out, nil
}

// classify rewrites the usual HTTP failures into messages fit for the
// status bar; anything else passes through wrapped.
func classify(resp *gitlab.Response, err error) error {
	if resp == nil || resp.Response == nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("authentication failed: check your GitLab token")
	case http.StatusNotFound:
		return fmt.Errorf("resource not found: %w", err)
	case http.StatusTooManyRequests:
		return fmt.Errorf("GitLab API rate limit exceeded, try again later")
	default:
		return err
	}
}

func deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
