package model

import "time"

type JobStatus string

const (
	JobCreated  JobStatus = "created"
	JobPending  JobStatus = "pending"
	JobRunning  JobStatus = "running"
	JobSuccess  JobStatus = "success"
	JobFailed   JobStatus = "failed"
	JobCanceled JobStatus = "canceled"
	JobSkipped  JobStatus = "skipped"
	JobManual   JobStatus = "manual"
)

type Job struct {
	ID         int64
	Name       string
	Status     JobStatus
	Stage      string
	WebURL     string
	CreatedAt  time.Time
	StartedAt  time.Time
	FinishedAt time.Time
	Duration   float64 // seconds
}

// SortPriority orders jobs by how much attention they need: failures
// first, then anything still moving, finished jobs last.
func (s JobStatus) SortPriority() int {
	switch s {
	case JobFailed:
		return 0
	case JobRunning:
		return 1
	case JobPending:
		return 2
	case JobCanceled:
		return 3
	case JobCreated:
		return 4
	case JobManual:
		return 5
	case JobSuccess:
		return 6
	case JobSkipped:
		return 7
	default:
		return 8
	}
}

func (s JobStatus) Icon() string {
	switch s {
	case JobSuccess:
		return "✓"
	case JobFailed:
		return "✗"
	case JobRunning:
		return "⟳"
	case JobPending, JobCreated:
		return "○"
	case JobCanceled:
		return "⊘"
	case JobSkipped:
		return "⊝"
	case JobManual:
		return "⊙"
	default:
		return "•"
	}
}

func (j Job) Failed() bool {
	return j.Status == JobFailed
}
