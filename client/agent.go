package client

import (
	"context"
	"net/http"
	neturl "net/url"
	"strconv"

	"github.com/cirisai/ciris-go/internal/conv"
	"github.com/cirisai/ciris-go/schema"
)

// AgentService covers the /v1/agent endpoints: conversation and identity.
type AgentService struct {
	client *Client
}

// Interact sends a message to the agent and waits for its reply.
func (s *AgentService) Interact(ctx context.Context, request *schema.InteractRequest) (*schema.InteractResponse, error) {
	return send[schema.InteractResponse](ctx, s.client, http.MethodPost, "/v1/agent/interact", nil, request)
}

// Ask is shorthand for Interact with a bare message, returning only the
// response text.
func (s *AgentService) Ask(ctx context.Context, message string) (string, error) {
	resp, err := s.Interact(ctx, &schema.InteractRequest{Message: message})
	if err != nil {
		return "", err
	}
	return resp.Response, nil
}

// History lists recent conversation messages, newest first.
func (s *AgentService) History(ctx context.Context, query *schema.HistoryQuery) (*schema.ConversationHistory, error) {
	values := neturl.Values{}
	if query != nil {
		if query.Limit > 0 {
			values.Set("limit", strconv.Itoa(query.Limit))
		}
		if query.Before != nil {
			values.Set("before", conv.FormatTime(*query.Before))
		}
	}
	return send[schema.ConversationHistory](ctx, s.client, http.MethodGet, "/v1/agent/history", values, nil)
}

// Status reports the agent's cognitive state and activity counters.
func (s *AgentService) Status(ctx context.Context) (*schema.AgentStatus, error) {
	return send[schema.AgentStatus](ctx, s.client, http.MethodGet, "/v1/agent/status", nil, nil)
}

// Identity returns the agent's identity, lineage and capabilities.
func (s *AgentService) Identity(ctx context.Context) (*schema.AgentIdentity, error) {
	return send[schema.AgentIdentity](ctx, s.client, http.MethodGet, "/v1/agent/identity", nil, nil)
}
