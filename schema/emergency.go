package schema

import "time"

// Emergency command types understood by the /emergency endpoints.
const (
	EmergencyShutdownNow = "SHUTDOWN_NOW"
	EmergencyFreeze      = "FREEZE"
	EmergencySafeMode    = "SAFE_MODE"
)

type (
	// WASignedCommand is an emergency command signed by a wise authority.
	// The signature covers the canonical field string, not the JSON body,
	// so field order on the wire does not matter.
	WASignedCommand struct {
		CommandID   string `json:"command_id"`
		CommandType string `json:"command_type"`

		WAID        string `json:"wa_id"`
		WAPublicKey string `json:"wa_public_key"`

		IssuedAt  time.Time  `json:"issued_at"`
		ExpiresAt *time.Time `json:"expires_at,omitempty"`
		Reason    string     `json:"reason"`

		TargetAgentID  string   `json:"target_agent_id,omitempty"`
		TargetTreePath []string `json:"target_tree_path,omitempty"`

		Signature string `json:"signature"`

		ParentCommandID string   `json:"parent_command_id,omitempty"`
		RelayChain      []string `json:"relay_chain,omitempty"`
	}

	// EmergencyShutdownResponse acknowledges an emergency command.
	EmergencyShutdownResponse struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
)
