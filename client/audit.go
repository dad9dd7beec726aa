package client

import (
	"context"
	"fmt"
	"net/http"
	neturl "net/url"
	"strconv"

	"github.com/cirisai/ciris-go/internal/conv"
	"github.com/cirisai/ciris-go/schema"
)

// AuditService covers the /v1/audit endpoints over the tamper-evident trail.
type AuditService struct {
	client *Client
}

// Entries lists audit records matching the filter, cursor-paged.
func (s *AuditService) Entries(ctx context.Context, query *schema.AuditQuery) (*schema.AuditEntries, error) {
	return send[schema.AuditEntries](ctx, s.client, http.MethodGet, "/v1/audit/entries", auditValues(query), nil)
}

// EntriesAll iterates every matching audit record, following cursors.
func (s *AuditService) EntriesAll(query *schema.AuditQuery) *Iterator[schema.AuditEntry] {
	return NewIterator(func(ctx context.Context, cursor string) ([]schema.AuditEntry, string, error) {
		paged := schema.AuditQuery{}
		if query != nil {
			paged = *query
		}
		paged.Cursor = cursor
		result, err := s.Entries(ctx, &paged)
		if err != nil {
			return nil, "", err
		}
		if !result.HasMore {
			return result.Entries, "", nil
		}
		return result.Entries, result.Cursor, nil
	})
}

// Entry returns one audit record with verification context.
func (s *AuditService) Entry(ctx context.Context, entryID string, verify bool) (*schema.AuditEntryDetail, error) {
	values := neturl.Values{}
	if verify {
		values.Set("verify", "true")
	}
	return send[schema.AuditEntryDetail](ctx, s.client, http.MethodGet,
		fmt.Sprintf("/v1/audit/entries/%s", neturl.PathEscape(entryID)), values, nil)
}

// Export produces a bulk export, inline or by URL depending on size.
func (s *AuditService) Export(ctx context.Context, request *schema.AuditExportRequest) (*schema.AuditExport, error) {
	values := neturl.Values{}
	if request != nil {
		if request.Format != "" {
			values.Set("format", request.Format)
		}
		if request.StartDate != nil {
			values.Set("start_date", conv.FormatTime(*request.StartDate))
		}
		if request.EndDate != nil {
			values.Set("end_date", conv.FormatTime(*request.EndDate))
		}
	}
	return send[schema.AuditExport](ctx, s.client, http.MethodPost, "/v1/audit/export", values, nil)
}

func auditValues(query *schema.AuditQuery) neturl.Values {
	values := neturl.Values{}
	if query == nil {
		return values
	}
	if query.Search != "" {
		values.Set("search", query.Search)
	}
	if query.Actor != "" {
		values.Set("actor", query.Actor)
	}
	if query.Action != "" {
		values.Set("action", query.Action)
	}
	if query.StartTime != nil {
		values.Set("start_time", conv.FormatTime(*query.StartTime))
	}
	if query.EndTime != nil {
		values.Set("end_time", conv.FormatTime(*query.EndTime))
	}
	if query.Cursor != "" {
		values.Set("cursor", query.Cursor)
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	return values
}
