package domain

// Status is the availability status of a handle on one platform.
type Status string

const (
	StatusChecking  Status = "checking"
	StatusAvailable Status = "available"
	StatusTaken     Status = "taken"
	StatusOwned     Status = "owned"
	StatusUnknown   Status = "unknown"
)

// Details carries the human-readable part of a check result.
type Details struct {
	Message     string `json:"message,omitempty"`
	Meta        string `json:"meta,omitempty"`
	ActionLabel string `json:"actionLabel,omitempty"`
	ActionURL   string `json:"actionUrl,omitempty"`
}

// Result is the outcome of checking one handle on one platform.
//
// A Result is created fresh per search per platform and is never mutated
// afterwards, except for the available -> owned transition performed by the
// claim workflow.
type Result struct {
	ID     string  `json:"id"`   // platform id
	Name   string  `json:"name"` // platform display name
	Icon   string  `json:"icon"`
	Status Status  `json:"status"`
	Price  float64 `json:"price"` // meaningful only when status is available
	URL    string  `json:"url"`
	Details Details `json:"details"`
}
