package schema

import "time"

type (
	// Deferral is a decision the agent handed to its wise authority.
	Deferral struct {
		DeferralID string         `json:"deferral_id"`
		ThoughtID  string         `json:"thought_id"`
		Reason     string         `json:"reason"`
		Context    map[string]any `json:"context,omitempty"`
		Status     string         `json:"status"`
		CreatedAt  time.Time      `json:"created_at"`
		ResolvedAt *time.Time     `json:"resolved_at,omitempty"`
	}

	// DeferralList is the paged deferral listing.
	DeferralList struct {
		Deferrals []Deferral `json:"deferrals"`
		Total     int        `json:"total,omitempty"`
	}

	// DeferralResolution resolves a pending deferral.
	DeferralResolution struct {
		Resolution string `json:"resolution"`
		Guidance   string `json:"guidance,omitempty"`
		Reason     string `json:"reason,omitempty"`
	}

	// WAPermission grants an authority scope over agent decisions.
	WAPermission struct {
		PermissionID string    `json:"permission_id"`
		WAID         string    `json:"wa_id"`
		Scope        string    `json:"scope"`
		GrantedAt    time.Time `json:"granted_at"`
	}

	// WAStatus summarizes the wise-authority service.
	WAStatus struct {
		ServiceHealthy    bool   `json:"service_healthy"`
		ActiveWAs         int    `json:"active_was"`
		PendingDeferrals  int    `json:"pending_deferrals"`
		ResolvedDeferrals int    `json:"resolved_deferrals"`
		AverageResolution string `json:"average_resolution_time,omitempty"`
	}

	// GuidanceRequest asks an authority for advice on a topic.
	GuidanceRequest struct {
		Topic   string `json:"topic"`
		Context string `json:"context,omitempty"`
	}

	// WAGuidance is the authority's advice.
	WAGuidance struct {
		Guidance string   `json:"guidance"`
		WAID     string   `json:"wa_id,omitempty"`
		Sources  []string `json:"sources,omitempty"`
		Advice   string   `json:"advice,omitempty"`
	}
)

// Deferral resolutions accepted by /v1/wa/deferrals/{id}/resolve.
const (
	DeferralApprove = "approve"
	DeferralReject  = "reject"
	DeferralModify  = "modify"
)
