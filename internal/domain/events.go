package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProviderOutcome summarizes one provider call within a search
type ProviderOutcome struct {
	Provider string        `json:"provider"`
	Count    int           `json:"count"`
	Error    string        `json:"error,omitempty"`
	Elapsed  time.Duration `json:"elapsed_ns"`
}

// Failed reports whether the provider contributed nothing because of an error
func (o ProviderOutcome) Failed() bool {
	return o.Error != ""
}

// SearchEvent describes a completed aggregated search. It never carries
// job records, only counts.
type SearchEvent struct {
	ID        uuid.UUID         `json:"id"`
	Request   SearchRequest     `json:"request"`
	Providers []ProviderOutcome `json:"providers"`
	Total     int               `json:"total"`
	StartedAt time.Time         `json:"started_at"`
	Elapsed   time.Duration     `json:"elapsed_ns"`
}

// SearchSummary is a past search as read back from history
type SearchSummary struct {
	ID              string    `json:"id"`
	Role            string    `json:"role"`
	Location        string    `json:"location"`
	Type            string    `json:"type"`
	Total           int       `json:"total"`
	At              time.Time `json:"at"`
	FailedProviders []string  `json:"failed_providers,omitempty"`
}
