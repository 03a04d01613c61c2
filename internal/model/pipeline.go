package model

import "time"

type PipelineStatus string

const (
	PipelineCreated            PipelineStatus = "created"
	PipelineWaitingForResource PipelineStatus = "waiting_for_resource"
	PipelinePreparing          PipelineStatus = "preparing"
	PipelinePending            PipelineStatus = "pending"
	PipelineRunning            PipelineStatus = "running"
	PipelineSuccess            PipelineStatus = "success"
	PipelineFailed             PipelineStatus = "failed"
	PipelineCanceled           PipelineStatus = "canceled"
	PipelineSkipped            PipelineStatus = "skipped"
	PipelineManual             PipelineStatus = "manual"
)

type Pipeline struct {
	ID        int64
	IID       int64
	Status    PipelineStatus
	Ref       string
	SHA       string
	WebURL    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s PipelineStatus) Icon() string {
	switch s {
	case PipelineSuccess:
		return "✓"
	case PipelineFailed:
		return "✗"
	case PipelineRunning:
		return "⟳"
	case PipelinePending, PipelineCreated, PipelinePreparing, PipelineWaitingForResource:
		return "○"
	case PipelineCanceled:
		return "⊘"
	case PipelineSkipped:
		return "⊝"
	default:
		return "•"
	}
}

func (p Pipeline) ShortSHA() string {
	if len(p.SHA) >= 8 {
		return p.SHA[:8]
	}
	return p.SHA
}
