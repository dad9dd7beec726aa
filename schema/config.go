package schema

type (
	// ConfigValue is one configuration entry.
	ConfigValue struct {
		Key          string `json:"key"`
		Value        any    `json:"value"`
		Description  string `json:"description,omitempty"`
		Sensitive    bool   `json:"sensitive,omitempty"`
		Redacted     bool   `json:"redacted,omitempty"`
		LastModified string `json:"last_modified,omitempty"`
		ModifiedBy   string `json:"modified_by,omitempty"`
	}

	// ConfigList is the full configuration listing.
	ConfigList struct {
		Configs []ConfigValue `json:"configs"`
		Total   int           `json:"total,omitempty"`
	}

	// ConfigSetRequest creates or updates a key.
	ConfigSetRequest struct {
		Value       any    `json:"value"`
		Description string `json:"description,omitempty"`
		Sensitive   bool   `json:"sensitive,omitempty"`
	}

	// ConfigOperationResponse acknowledges a config mutation.
	ConfigOperationResponse struct {
		Success   bool   `json:"success"`
		Operation string `json:"operation"`
		Key       string `json:"key,omitempty"`
		Path      string `json:"path,omitempty"`
		OldValue  any    `json:"old_value,omitempty"`
		NewValue  any    `json:"new_value,omitempty"`
		Scope     string `json:"scope,omitempty"`
		Message   string `json:"message,omitempty"`
		Error     string `json:"error,omitempty"`
		Timestamp string `json:"timestamp,omitempty"`
	}
)
