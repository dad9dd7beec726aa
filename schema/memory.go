package schema

import "time"

type (
	// GraphNode is the unit of agent memory; everything is a node.
	GraphNode struct {
		ID         string         `json:"id"`
		Type       string         `json:"type"`
		Scope      string         `json:"scope"`
		Attributes map[string]any `json:"attributes"`
		Version    int            `json:"version,omitempty"`
		UpdatedBy  string         `json:"updated_by,omitempty"`
		UpdatedAt  *time.Time     `json:"updated_at,omitempty"`
	}

	// MemoryStoreRequest stores a node (MEMORIZE).
	MemoryStoreRequest struct {
		Node GraphNode `json:"node"`
	}

	// MemoryOpResult acknowledges a memory mutation.
	MemoryOpResult struct {
		Success   bool   `json:"success"`
		NodeID    string `json:"node_id"`
		Message   string `json:"message,omitempty"`
		Error     string `json:"error,omitempty"`
		Operation string `json:"operation,omitempty"`
	}

	// MemoryQuery is the flexible RECALL filter set.
	MemoryQuery struct {
		Type         string         `json:"type,omitempty"`
		Tags         []string       `json:"tags,omitempty"`
		Since        *time.Time     `json:"since,omitempty"`
		Until        *time.Time     `json:"until,omitempty"`
		RelatedTo    string         `json:"related_to,omitempty"`
		Text         string         `json:"text,omitempty"`
		Filters      map[string]any `json:"filters,omitempty"`
		Cursor       string         `json:"cursor,omitempty"`
		Limit        int            `json:"limit,omitempty"`
		IncludeEdges bool           `json:"include_edges,omitempty"`
		Depth        int            `json:"depth,omitempty"`
	}

	// MemoryQueryResult is a cursor-paged RECALL result.
	MemoryQueryResult struct {
		Nodes        []GraphNode `json:"nodes"`
		Cursor       string      `json:"cursor,omitempty"`
		HasMore      bool        `json:"has_more"`
		TotalMatches *int        `json:"total_matches,omitempty"`
	}

	// MemoryTimeline is the temporal view of memories.
	MemoryTimeline struct {
		Memories []GraphNode    `json:"memories"`
		Buckets  map[string]int `json:"buckets"`
		Total    int            `json:"total"`
	}

	// TimelineQuery bounds a timeline request.
	TimelineQuery struct {
		Hours int
		Type  string
		Limit int
	}
)
