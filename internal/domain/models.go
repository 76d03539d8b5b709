package domain

import (
	"errors"
	"strings"
)

// ErrRoleRequired is returned when a search request has no role
var ErrRoleRequired = errors.New("role is required")

// JobRecord is the normalized, provider-agnostic job listing
type JobRecord struct {
	Title    string  `json:"title"`
	Company  string  `json:"company"`
	Location string  `json:"location"`
	Type     string  `json:"type"`
	Salary   string  `json:"salary"`
	Link     string  `json:"link"`
	Snippet  string  `json:"snippet"`
	Source   string  `json:"source"`
	Logo     *string `json:"logo"`
}

// SearchRequest describes an inbound job search
type SearchRequest struct {
	Role     string `json:"role"`
	Location string `json:"location,omitempty"`
	Type     string `json:"type,omitempty"`
}

// Validate rejects requests that must not reach any provider
func (r SearchRequest) Validate() error {
	if strings.TrimSpace(r.Role) == "" {
		return ErrRoleRequired
	}
	return nil
}

// IsRemote reports whether the request carries no geographic constraint
func (r SearchRequest) IsRemote() bool {
	loc := strings.TrimSpace(r.Location)
	return loc == "" || strings.EqualFold(loc, "remote")
}

// HasTypeFilter reports whether results should be filtered by employment type
func (r SearchRequest) HasTypeFilter() bool {
	t := strings.TrimSpace(r.Type)
	return t != "" && !strings.EqualFold(t, "any")
}

// SearchResult wraps the merged search output
type SearchResult struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Jobs    []JobRecord `json:"jobs"`
}

// NewSearchResult builds a successful result; jobs is never nil
func NewSearchResult(jobs []JobRecord) SearchResult {
	if jobs == nil {
		jobs = []JobRecord{}
	}
	return SearchResult{
		Success: true,
		Count:   len(jobs),
		Jobs:    jobs,
	}
}

// StringPtr returns a pointer to s, or nil when s is empty
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
