package schema

import "time"

type (
	// AuditEntry is one record of the tamper-evident audit trail.
	AuditEntry struct {
		ID        string         `json:"id"`
		Action    string         `json:"action"`
		Actor     string         `json:"actor"`
		Timestamp time.Time      `json:"timestamp"`
		Context   map[string]any `json:"context,omitempty"`
		Signature string         `json:"signature,omitempty"`
		HashChain string         `json:"hash_chain,omitempty"`
	}

	// AuditEntries is a cursor-paged audit listing.
	AuditEntries struct {
		Entries      []AuditEntry `json:"entries"`
		Cursor       string       `json:"cursor,omitempty"`
		HasMore      bool         `json:"has_more"`
		TotalMatches *int         `json:"total_matches,omitempty"`
	}

	// AuditEntryDetail adds verification context to a single entry.
	AuditEntryDetail struct {
		Entry           AuditEntry     `json:"entry"`
		Verification    map[string]any `json:"verification,omitempty"`
		ChainPosition   *int           `json:"chain_position,omitempty"`
		NextEntryID     string         `json:"next_entry_id,omitempty"`
		PreviousEntryID string         `json:"previous_entry_id,omitempty"`
	}

	// AuditQuery filters the audit trail.
	AuditQuery struct {
		Search    string
		Actor     string
		Action    string
		StartTime *time.Time
		EndTime   *time.Time
		Cursor    string
		Limit     int
	}

	// AuditExportRequest asks for a bulk export.
	AuditExportRequest struct {
		Format    string
		StartDate *time.Time
		EndDate   *time.Time
	}

	// AuditExport is the export result, inline or by URL.
	AuditExport struct {
		Format       string `json:"format"`
		TotalEntries int    `json:"total_entries"`
		ExportURL    string `json:"export_url,omitempty"`
		ExportData   string `json:"export_data,omitempty"`
	}
)
