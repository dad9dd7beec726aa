package schema

import "time"

type (
	// SystemHealth is the overall health summary.
	SystemHealth struct {
		Status                 string                    `json:"status"`
		Version                string                    `json:"version"`
		UptimeSeconds          float64                   `json:"uptime_seconds"`
		Services               map[string]map[string]int `json:"services"`
		InitializationComplete bool                      `json:"initialization_complete"`
		CognitiveState         string                    `json:"cognitive_state,omitempty"`
		Timestamp              time.Time                 `json:"timestamp"`
	}

	// TimeSyncStatus reports clock synchronization.
	TimeSyncStatus struct {
		Synchronized bool      `json:"synchronized"`
		DriftMS      float64   `json:"drift_ms"`
		LastSync     time.Time `json:"last_sync"`
	}

	// SystemTime contrasts host time with the agent's time service.
	SystemTime struct {
		SystemTime     time.Time      `json:"system_time"`
		AgentTime      time.Time      `json:"agent_time"`
		ServerTimezone string         `json:"server_timezone,omitempty"`
		UTCOffset      string         `json:"utc_offset,omitempty"`
		IsDST          bool           `json:"is_dst,omitempty"`
		UptimeSeconds  float64        `json:"uptime_seconds"`
		TimeSync       TimeSyncStatus `json:"time_sync"`
	}

	// ResourceSnapshot is a point-in-time usage reading.
	ResourceSnapshot struct {
		MemoryMB   float64    `json:"memory_mb"`
		CPUPercent float64    `json:"cpu_percent"`
		OpenFiles  int        `json:"open_files,omitempty"`
		Threads    int        `json:"threads,omitempty"`
		Timestamp  *time.Time `json:"timestamp,omitempty"`
	}

	// ResourceBudget holds configured limits; nil means unlimited.
	ResourceBudget struct {
		MaxMemoryMB   *float64 `json:"max_memory_mb,omitempty"`
		MaxCPUPercent *float64 `json:"max_cpu_percent,omitempty"`
		MaxOpenFiles  *int     `json:"max_open_files,omitempty"`
		MaxThreads    *int     `json:"max_threads,omitempty"`
	}

	// ResourceUsage combines usage, limits and derived health.
	ResourceUsage struct {
		CurrentUsage ResourceSnapshot `json:"current_usage"`
		Limits       ResourceBudget   `json:"limits"`
		HealthStatus string           `json:"health_status"`
		Warnings     []string         `json:"warnings,omitempty"`
		Critical     []string         `json:"critical,omitempty"`
	}

	// RuntimeControlRequest asks the processor to change state.
	RuntimeControlRequest struct {
		Reason string `json:"reason,omitempty"`
	}

	// RuntimeControlResponse acknowledges a runtime action.
	RuntimeControlResponse struct {
		Success        bool   `json:"success"`
		Message        string `json:"message"`
		ProcessorState string `json:"processor_state"`
		CognitiveState string `json:"cognitive_state,omitempty"`
		QueueDepth     int    `json:"queue_depth"`
	}

	// ServiceMetrics carries per-service counters.
	ServiceMetrics struct {
		RequestsTotal    *int64         `json:"requests_total,omitempty"`
		RequestsFailed   *int64         `json:"requests_failed,omitempty"`
		AverageLatencyMS *float64       `json:"average_latency_ms,omitempty"`
		CustomMetrics    map[string]any `json:"custom_metrics,omitempty"`
	}

	// ServiceStatus is one service's health entry.
	ServiceStatus struct {
		Name          string         `json:"name"`
		Type          string         `json:"type"`
		Healthy       bool           `json:"healthy"`
		Available     bool           `json:"available"`
		UptimeSeconds *float64       `json:"uptime_seconds,omitempty"`
		Metrics       ServiceMetrics `json:"metrics"`
	}

	// ServicesStatus lists all registered services.
	ServicesStatus struct {
		Services        []ServiceStatus `json:"services"`
		TotalServices   int             `json:"total_services"`
		HealthyServices int             `json:"healthy_services"`
		Timestamp       time.Time       `json:"timestamp"`
	}

	// ShutdownRequest asks for a graceful stop.
	ShutdownRequest struct {
		Reason             string `json:"reason"`
		GracePeriodSeconds int    `json:"grace_period_seconds"`
		Force              bool   `json:"force"`
	}

	// ShutdownResponse acknowledges a shutdown request.
	ShutdownResponse struct {
		Success            bool   `json:"success"`
		Message            string `json:"message"`
		GracePeriodSeconds int    `json:"grace_period_seconds"`
	}
)

// Runtime control actions accepted by /v1/system/runtime/{action}.
const (
	RuntimeActionPause  = "pause"
	RuntimeActionResume = "resume"
	RuntimeActionState  = "state"
)
