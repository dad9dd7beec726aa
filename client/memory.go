package client

import (
	"context"
	"fmt"
	"net/http"
	neturl "net/url"
	"strconv"

	"github.com/cirisai/ciris-go/schema"
)

// MemoryService covers the /v1/memory endpoints over the agent's graph
// memory: MEMORIZE, RECALL and FORGET.
type MemoryService struct {
	client *Client
}

// Store memorizes a node; an existing node with the same ID is updated.
func (s *MemoryService) Store(ctx context.Context, node *schema.GraphNode) (*schema.MemoryOpResult, error) {
	return send[schema.MemoryOpResult](ctx, s.client, http.MethodPost, "/v1/memory/store", nil,
		&schema.MemoryStoreRequest{Node: *node})
}

// Query recalls nodes matching the filter set, cursor-paged.
func (s *MemoryService) Query(ctx context.Context, query *schema.MemoryQuery) (*schema.MemoryQueryResult, error) {
	return send[schema.MemoryQueryResult](ctx, s.client, http.MethodPost, "/v1/memory/query", nil, query)
}

// QueryAll iterates every node matching the query, following cursors.
func (s *MemoryService) QueryAll(query *schema.MemoryQuery) *Iterator[schema.GraphNode] {
	return NewIterator(func(ctx context.Context, cursor string) ([]schema.GraphNode, string, error) {
		paged := *query
		paged.Cursor = cursor
		result, err := s.Query(ctx, &paged)
		if err != nil {
			return nil, "", err
		}
		if !result.HasMore {
			return result.Nodes, "", nil
		}
		return result.Nodes, result.Cursor, nil
	})
}

// Node fetches a single node by ID.
func (s *MemoryService) Node(ctx context.Context, nodeID string) (*schema.GraphNode, error) {
	return send[schema.GraphNode](ctx, s.client, http.MethodGet,
		fmt.Sprintf("/v1/memory/%s", neturl.PathEscape(nodeID)), nil, nil)
}

// Forget removes a node.
func (s *MemoryService) Forget(ctx context.Context, nodeID string) (*schema.MemoryOpResult, error) {
	return send[schema.MemoryOpResult](ctx, s.client, http.MethodDelete,
		fmt.Sprintf("/v1/memory/%s", neturl.PathEscape(nodeID)), nil, nil)
}

// Timeline returns the temporal view of recent memories.
func (s *MemoryService) Timeline(ctx context.Context, query *schema.TimelineQuery) (*schema.MemoryTimeline, error) {
	values := neturl.Values{}
	if query != nil {
		if query.Hours > 0 {
			values.Set("hours", strconv.Itoa(query.Hours))
		}
		if query.Type != "" {
			values.Set("type", query.Type)
		}
		if query.Limit > 0 {
			values.Set("limit", strconv.Itoa(query.Limit))
		}
	}
	return send[schema.MemoryTimeline](ctx, s.client, http.MethodGet, "/v1/memory/timeline", values, nil)
}
