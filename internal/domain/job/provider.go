package job

import (
	"context"

	"github.com/honeycarbs/gradnex/internal/domain"
)

// PerProviderLimit caps how many records a single provider contributes
const PerProviderLimit = 10

// Provider represents an external job data source (Adzuna, RemoteOK, JSearch, etc.)
type Provider interface {
	// e.g. "adzuna" or "remoteok"
	Name() string

	// Applicable reports whether the provider should be queried for req.
	// Providers without credentials are never constructed, so this only
	// covers request-level predicates.
	Applicable(req domain.SearchRequest) bool

	// Search returns normalized jobs for a request
	Search(ctx context.Context, req domain.SearchRequest) ([]domain.JobRecord, error)
}
