package client

import (
	"context"
	"fmt"
	"net/http"
	neturl "net/url"
	"strconv"
	"time"

	"github.com/cirisai/ciris-go/schema"
)

// JobsService covers the /v1/jobs endpoints for expensive asynchronous
// operations: submit, poll, fetch result, cancel.
type JobsService struct {
	client *Client
}

// Create submits an async job.
func (s *JobsService) Create(ctx context.Context, request *schema.JobCreateRequest) (*schema.JobCreateResponse, error) {
	return send[schema.JobCreateResponse](ctx, s.client, http.MethodPost, "/v1/jobs", nil, request)
}

// Status returns job progress.
func (s *JobsService) Status(ctx context.Context, jobID string) (*schema.JobInfo, error) {
	return send[schema.JobInfo](ctx, s.client, http.MethodGet,
		fmt.Sprintf("/v1/jobs/%s/status", neturl.PathEscape(jobID)), nil, nil)
}

// Result fetches the output of a completed job. The result payload stays
// encoded; the caller decodes it into the type the job produces.
func (s *JobsService) Result(ctx context.Context, jobID string) (*schema.JobResult, error) {
	return send[schema.JobResult](ctx, s.client, http.MethodGet,
		fmt.Sprintf("/v1/jobs/%s/result", neturl.PathEscape(jobID)), nil, nil)
}

// Cancel stops a queued or running job.
func (s *JobsService) Cancel(ctx context.Context, jobID string) (*schema.JobInfo, error) {
	return send[schema.JobInfo](ctx, s.client, http.MethodPost,
		fmt.Sprintf("/v1/jobs/%s/cancel", neturl.PathEscape(jobID)), nil, nil)
}

// List returns jobs matching the filter.
func (s *JobsService) List(ctx context.Context, query *schema.JobListQuery) (*schema.JobList, error) {
	values := neturl.Values{}
	if query != nil {
		if query.Status != "" {
			values.Set("status", query.Status)
		}
		if query.JobType != "" {
			values.Set("job_type", query.JobType)
		}
		if query.Limit > 0 {
			values.Set("limit", strconv.Itoa(query.Limit))
		}
	}
	return send[schema.JobList](ctx, s.client, http.MethodGet, "/v1/jobs", values, nil)
}

// Wait polls until the job reaches a terminal state or the context is done.
func (s *JobsService) Wait(ctx context.Context, jobID string, pollInterval time.Duration) (*schema.JobInfo, error) {
	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		info, err := s.Status(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if schema.Terminal(info.Status) {
			return info, nil
		}
		select {
		case <-ctx.Done():
			return info, ctx.Err()
		case <-ticker.C:
		}
	}
}
