package schema

import "time"

type (
	// InteractRequest sends a message to the agent.
	InteractRequest struct {
		Message string         `json:"message"`
		Context map[string]any `json:"context,omitempty"`
	}

	// InteractResponse is the agent's reply with processing metadata.
	InteractResponse struct {
		MessageID        string `json:"message_id"`
		Response         string `json:"response"`
		State            string `json:"state"`
		ProcessingTimeMS int64  `json:"processing_time_ms"`
	}

	// ConversationMessage is one entry of the conversation history.
	ConversationMessage struct {
		ID        string    `json:"id"`
		Author    string    `json:"author"`
		Content   string    `json:"content"`
		Timestamp time.Time `json:"timestamp"`
		IsAgent   bool      `json:"is_agent"`
	}

	// ConversationHistory lists recent messages.
	ConversationHistory struct {
		Messages   []ConversationMessage `json:"messages"`
		TotalCount int                   `json:"total_count"`
		HasMore    bool                  `json:"has_more"`
	}

	// AgentStatus reports the agent's cognitive state and activity.
	AgentStatus struct {
		AgentID           string     `json:"agent_id"`
		Name              string     `json:"name"`
		CognitiveState    string     `json:"cognitive_state"`
		UptimeSeconds     float64    `json:"uptime_seconds"`
		MessagesProcessed int64      `json:"messages_processed"`
		LastActivity      *time.Time `json:"last_activity,omitempty"`
		CurrentTask       string     `json:"current_task,omitempty"`
		ServicesActive    int        `json:"services_active"`
		MemoryUsageMB     float64    `json:"memory_usage_mb"`
	}

	// AgentIdentity describes identity, lineage and capabilities.
	AgentIdentity struct {
		AgentID           string         `json:"agent_id"`
		Name              string         `json:"name"`
		Purpose           string         `json:"purpose"`
		CreatedAt         time.Time      `json:"created_at"`
		Lineage           map[string]any `json:"lineage"`
		VarianceThreshold float64        `json:"variance_threshold"`
		Tools             []string       `json:"tools"`
		Handlers          []string       `json:"handlers"`
		Services          map[string]int `json:"services"`
		Permissions       []string       `json:"permissions"`
	}

	// HistoryQuery bounds a conversation history request.
	HistoryQuery struct {
		Limit  int
		Before *time.Time
	}
)
