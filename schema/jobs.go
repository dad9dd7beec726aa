package schema

import (
	"encoding/json"
	"time"
)

// Job lifecycle states.
const (
	JobQueued    = "queued"
	JobRunning   = "running"
	JobCompleted = "completed"
	JobFailed    = "failed"
	JobCancelled = "cancelled"
)

// Job types for expensive asynchronous operations.
const (
	JobMemoryQuery          = "memory_query"
	JobMemoryBulkImport     = "memory_bulk_import"
	JobAuditExport          = "audit_export"
	JobTelemetryQuery       = "telemetry_query"
	JobTelemetryAggregation = "telemetry_aggregation"
)

type (
	// JobInfo describes an async job and its progress.
	JobInfo struct {
		JobID       string     `json:"job_id"`
		JobType     string     `json:"job_type"`
		Status      string     `json:"status"`
		CreatedAt   time.Time  `json:"created_at"`
		StartedAt   *time.Time `json:"started_at,omitempty"`
		CompletedAt *time.Time `json:"completed_at,omitempty"`
		Progress    int        `json:"progress"`
		Message     string     `json:"message,omitempty"`
		Error       string     `json:"error,omitempty"`
		ResultSize  *int       `json:"result_size,omitempty"`
		ExpiresAt   time.Time  `json:"expires_at"`
	}

	// JobCreateRequest starts an async job.
	JobCreateRequest struct {
		JobType    string         `json:"job_type"`
		Parameters map[string]any `json:"parameters"`
		Priority   string         `json:"priority,omitempty"`
	}

	// JobCreateResponse acknowledges job creation.
	JobCreateResponse struct {
		JobID                    string `json:"job_id"`
		Status                   string `json:"status"`
		EstimatedDurationSeconds *int   `json:"estimated_duration_seconds,omitempty"`
		QueuePosition            *int   `json:"queue_position,omitempty"`
	}

	// JobResult carries a finished job's output; Result stays encoded so
	// the caller decodes it into the type the job produces.
	JobResult struct {
		JobID    string          `json:"job_id"`
		Status   string          `json:"status"`
		Result   json.RawMessage `json:"result,omitempty"`
		Error    string          `json:"error,omitempty"`
		Metadata map[string]any  `json:"metadata,omitempty"`
	}

	// JobListQuery filters a job listing.
	JobListQuery struct {
		Status  string
		JobType string
		Limit   int
	}

	// JobList is the paged job listing.
	JobList struct {
		Jobs  []JobInfo `json:"jobs"`
		Total int       `json:"total,omitempty"`
	}
)

// Terminal reports whether status is a final job state.
func Terminal(status string) bool {
	switch status {
	case JobCompleted, JobFailed, JobCancelled:
		return true
	}
	return false
}
