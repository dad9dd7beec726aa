package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cirisai/ciris-go/client/auth/store"
	"github.com/cirisai/ciris-go/schema"
)

func newTestClient(t *testing.T, handler http.Handler, options ...Option) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	aClient, err := New(server.URL, options...)
	require.NoError(t, err)
	return aClient, server
}

func writeData(t *testing.T, w http.ResponseWriter, payload any) {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, json.NewEncoder(w).Encode(&schema.SuccessResponse{Data: data}))
}

func TestClient_New_RejectsInvalidURL(t *testing.T) {
	_, err := New("://nope")
	assert.Error(t, err)
}

func TestClient_EnvelopeUnwrap(t *testing.T) {
	aClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/agent/status", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(HeaderCorrelationID))
		writeData(t, w, &schema.AgentStatus{AgentID: "datum", CognitiveState: "WORK"})
	}))

	status, err := aClient.Agent.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "datum", status.AgentID)
	assert.Equal(t, "WORK", status.CognitiveState)
}

func TestClient_BareResponseDecodes(t *testing.T) {
	// some endpoints return the payload without the envelope
	aClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(&schema.SystemHealth{Status: "healthy", Version: "1.0"})
	}))

	health, err := aClient.System.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
}

func TestClient_ErrorEnvelope(t *testing.T) {
	aClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(&schema.ErrorEnvelope{Error: &schema.ErrorDetail{
			Code:    "RESOURCE_NOT_FOUND",
			Message: "no such node",
		}})
	}))

	_, err := aClient.Memory.Node(context.Background(), "missing")
	require.Error(t, err)
	apiErr, ok := schema.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "RESOURCE_NOT_FOUND", apiErr.Code)
	assert.Equal(t, "no such node", apiErr.Message)
	assert.True(t, schema.IsNotFound(err))
}

func TestClient_ErrorWithoutEnvelope(t *testing.T) {
	aClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := aClient.System.Health(context.Background())
	apiErr, ok := schema.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Message)
}

func TestClient_Interact(t *testing.T) {
	aClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		request := &schema.InteractRequest{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(request))
		assert.Equal(t, "hello", request.Message)
		writeData(t, w, &schema.InteractResponse{
			MessageID: "msg-1",
			Response:  "hi there",
			State:     "WORK",
		})
	}))

	answer, err := aClient.Agent.Ask(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi there", answer)
}

func TestClient_HistoryQueryParams(t *testing.T) {
	before := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	aClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.NotEmpty(t, r.URL.Query().Get("before"))
		writeData(t, w, &schema.ConversationHistory{TotalCount: 0})
	}))

	_, err := aClient.Agent.History(context.Background(), &schema.HistoryQuery{Limit: 20, Before: &before})
	require.NoError(t, err)
}

func TestClient_LoginPersistsToken(t *testing.T) {
	aClient, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/auth/login", r.URL.Path)
		request := &schema.LoginRequest{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(request))
		assert.Equal(t, "admin", request.Username)
		writeData(t, w, &schema.LoginResponse{
			AccessToken: "issued-token",
			TokenType:   "Bearer",
			ExpiresIn:   3600,
			Role:        schema.RoleAdmin,
		})
	}))

	resp, err := aClient.Auth.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, schema.RoleAdmin, resp.Role)

	token, state, err := aClient.Store().LookupToken(server.URL)
	require.NoError(t, err)
	assert.Equal(t, store.TokenValid, state)
	assert.Equal(t, "issued-token", token.Value)
	require.NotNil(t, token.ExpiresAt)
}

func TestClient_LogoutClearsCredentials(t *testing.T) {
	aClient, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	require.NoError(t, aClient.Store().StoreToken(server.URL, &store.Token{Value: "tok"}))

	require.NoError(t, aClient.Auth.Logout(context.Background()))

	_, state, err := aClient.Store().LookupToken(server.URL)
	require.NoError(t, err)
	assert.Equal(t, store.TokenAbsent, state)
}

func TestClient_StoredTokenAuthenticatesRequests(t *testing.T) {
	var gotAuth string
	aClient, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeData(t, w, &schema.AgentStatus{AgentID: "datum"})
	}))
	require.NoError(t, aClient.Store().StoreToken(server.URL, &store.Token{Value: "stored-token"}))

	_, err := aClient.Agent.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer stored-token", gotAuth)
}

func TestClient_MemoryRoundTrip(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/memory/store", func(w http.ResponseWriter, r *http.Request) {
		request := &schema.MemoryStoreRequest{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(request))
		assert.Equal(t, "node-1", request.Node.ID)
		writeData(t, w, &schema.MemoryOpResult{Success: true, NodeID: "node-1"})
	})
	mux.HandleFunc("DELETE /v1/memory/node-1", func(w http.ResponseWriter, r *http.Request) {
		writeData(t, w, &schema.MemoryOpResult{Success: true, NodeID: "node-1", Operation: "forget"})
	})
	aClient, _ := newTestClient(t, mux)

	stored, err := aClient.Memory.Store(context.Background(), &schema.GraphNode{
		ID: "node-1", Type: "concept", Scope: "local",
	})
	require.NoError(t, err)
	assert.True(t, stored.Success)

	forgotten, err := aClient.Memory.Forget(context.Background(), "node-1")
	require.NoError(t, err)
	assert.Equal(t, "forget", forgotten.Operation)
}

func TestClient_MemoryQueryAllFollowsCursors(t *testing.T) {
	pages := map[string]*schema.MemoryQueryResult{
		"": {
			Nodes:   []schema.GraphNode{{ID: "a"}, {ID: "b"}},
			Cursor:  "next-1",
			HasMore: true,
		},
		"next-1": {
			Nodes: []schema.GraphNode{{ID: "c"}},
		},
	}
	aClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := &schema.MemoryQuery{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(query))
		page, ok := pages[query.Cursor]
		require.True(t, ok, "unexpected cursor %q", query.Cursor)
		writeData(t, w, page)
	}))

	nodes, err := aClient.Memory.QueryAll(&schema.MemoryQuery{Type: "concept"}).Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	assert.Equal(t, "c", nodes[2].ID)
}

func TestClient_RuntimeControl(t *testing.T) {
	aClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/system/runtime/pause", r.URL.Path)
		writeData(t, w, &schema.RuntimeControlResponse{Success: true, ProcessorState: "paused"})
	}))

	resp, err := aClient.System.Pause(context.Background(), "maintenance")
	require.NoError(t, err)
	assert.Equal(t, "paused", resp.ProcessorState)
}

func TestClient_JobsWaitUntilTerminal(t *testing.T) {
	var polls int
	aClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls++
		status := schema.JobRunning
		if polls >= 3 {
			status = schema.JobCompleted
		}
		writeData(t, w, &schema.JobInfo{JobID: "job-1", Status: status, Progress: polls * 33})
	}))

	info, err := aClient.Jobs.Wait(context.Background(), "job-1", time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, schema.JobCompleted, info.Status)
	assert.Equal(t, 3, polls)
}

func TestClient_DeferralResolution(t *testing.T) {
	aClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/wa/deferrals/def-1/resolve", r.URL.Path)
		resolution := &schema.DeferralResolution{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(resolution))
		assert.Equal(t, schema.DeferralApprove, resolution.Resolution)
		writeData(t, w, &schema.Deferral{DeferralID: "def-1", Status: "resolved"})
	}))

	deferral, err := aClient.WiseAuthority.ResolveDeferral(context.Background(), "def-1",
		&schema.DeferralResolution{Resolution: schema.DeferralApprove})
	require.NoError(t, err)
	assert.Equal(t, "resolved", deferral.Status)
}

func TestClient_AuditEntriesAll(t *testing.T) {
	pages := map[string]*schema.AuditEntries{
		"": {
			Entries: []schema.AuditEntry{{ID: "1"}, {ID: "2"}},
			Cursor:  "c2",
			HasMore: true,
		},
		"c2": {
			Entries: []schema.AuditEntry{{ID: "3"}},
		},
	}
	aClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, ok := pages[r.URL.Query().Get("cursor")]
		require.True(t, ok)
		writeData(t, w, page)
	}))

	entries, err := aClient.Audit.EntriesAll(&schema.AuditQuery{Actor: "admin"}).Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)
}
