package schema

import "time"

type (
	// TelemetryOverview aggregates the core observability signals.
	TelemetryOverview struct {
		UptimeSeconds        float64 `json:"uptime_seconds"`
		CognitiveState       string  `json:"cognitive_state"`
		MessagesProcessed24H int64   `json:"messages_processed_24h"`
		ThoughtsProcessed24H int64   `json:"thoughts_processed_24h"`
		TasksCompleted24H    int64   `json:"tasks_completed_24h"`
		Errors24H            int64   `json:"errors_24h"`
		TokensPerHour        float64 `json:"tokens_per_hour"`
		CostPerHourCents     float64 `json:"cost_per_hour_cents"`
		CarbonPerHourGrams   float64 `json:"carbon_per_hour_grams"`
		MemoryMB             float64 `json:"memory_mb"`
		CPUPercent           float64 `json:"cpu_percent"`
		HealthyServices      int     `json:"healthy_services"`
		DegradedServices     int     `json:"degraded_services"`
		ErrorRatePercent     float64 `json:"error_rate_percent"`
		CurrentTask          string  `json:"current_task,omitempty"`
		ReasoningDepth       int     `json:"reasoning_depth"`
		ActiveDeferrals      int     `json:"active_deferrals"`
		RecentIncidents      int     `json:"recent_incidents"`
	}

	// MetricData is a single metric data point.
	MetricData struct {
		Timestamp time.Time         `json:"timestamp"`
		Value     float64           `json:"value"`
		Tags      map[string]string `json:"tags,omitempty"`
	}

	// MetricDetail is one metric with aggregates and recent points.
	MetricDetail struct {
		Name          string             `json:"name"`
		CurrentValue  float64            `json:"current_value"`
		Unit          string             `json:"unit,omitempty"`
		Trend         string             `json:"trend,omitempty"`
		HourlyAverage float64            `json:"hourly_average"`
		DailyAverage  float64            `json:"daily_average"`
		ByService     map[string]float64 `json:"by_service,omitempty"`
		RecentData    []MetricData       `json:"recent_data,omitempty"`
	}

	// MetricList is the full metric listing.
	MetricList struct {
		Metrics []MetricDetail `json:"metrics"`
		Total   int            `json:"total,omitempty"`
	}

	// ReasoningTrace describes one reasoning episode.
	ReasoningTrace struct {
		TraceID         string           `json:"trace_id"`
		TaskID          string           `json:"task_id,omitempty"`
		TaskDescription string           `json:"task_description,omitempty"`
		StartTime       time.Time        `json:"start_time"`
		DurationMS      float64          `json:"duration_ms"`
		ThoughtCount    int              `json:"thought_count"`
		DecisionCount   int              `json:"decision_count"`
		ReasoningDepth  int              `json:"reasoning_depth"`
		Thoughts        []map[string]any `json:"thoughts,omitempty"`
		Outcome         string           `json:"outcome,omitempty"`
	}

	// TraceList is a paged trace listing.
	TraceList struct {
		Traces  []ReasoningTrace `json:"traces"`
		Total   int              `json:"total,omitempty"`
		HasMore bool             `json:"has_more,omitempty"`
	}

	// LogEntry is one system log line.
	LogEntry struct {
		Timestamp time.Time      `json:"timestamp"`
		Level     string         `json:"level"`
		Service   string         `json:"service"`
		Message   string         `json:"message"`
		Context   map[string]any `json:"context,omitempty"`
		TraceID   string         `json:"trace_id,omitempty"`
	}

	// LogList is a paged log listing.
	LogList struct {
		Logs    []LogEntry `json:"logs"`
		Total   int        `json:"total,omitempty"`
		HasMore bool       `json:"has_more,omitempty"`
	}

	// LogQuery filters a log listing.
	LogQuery struct {
		Level   string
		Service string
		Limit   int
		Since   *time.Time
	}

	// TraceQuery bounds a trace listing.
	TraceQuery struct {
		Limit     int
		StartTime *time.Time
	}

	// TelemetryQuery is the generic telemetry query interface.
	TelemetryQuery struct {
		QueryType string         `json:"query_type"`
		Filters   map[string]any `json:"filters,omitempty"`
		StartTime *time.Time     `json:"start_time,omitempty"`
		EndTime   *time.Time     `json:"end_time,omitempty"`
		Limit     int            `json:"limit,omitempty"`
	}
)
