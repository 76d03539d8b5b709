package neo4j

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/gradnex/internal/domain"
	"github.com/honeycarbs/gradnex/internal/repository"

	pkgneo4j "github.com/honeycarbs/gradnex/pkg/neo4j"
)

const defaultRecentLimit = 20

// Ensure SearchHistoryRepository implements repository.SearchHistoryRepository
var _ repository.SearchHistoryRepository = (*SearchHistoryRepository)(nil)

// SearchHistoryRepository keeps a graph of searches, the roles they were for
// and the providers they queried
type SearchHistoryRepository struct {
	client *pkgneo4j.Client
}

// NewSearchHistoryRepository creates a SearchHistoryRepository with a Neo4j client
func NewSearchHistoryRepository(client *pkgneo4j.Client) *SearchHistoryRepository {
	return &SearchHistoryRepository{client: client}
}

const recordSearchQuery = `
	MERGE (r:Role {name: $role})
	CREATE (s:Search {
		id: $id,
		location: $location,
		type: $type,
		total: $total,
		at: datetime({epochMillis: $at}),
		elapsedMs: $elapsedMs
	})
	CREATE (s)-[:FOR]->(r)
	WITH s
	UNWIND $providers AS p
	MERGE (pr:Provider {name: p.name})
	CREATE (s)-[:QUERIED {count: p.count, error: p.error, elapsedMs: p.elapsedMs}]->(pr)
`

const recentSearchesQuery = `
	MATCH (s:Search)-[:FOR]->(r:Role)
	WHERE $role = '' OR r.name = $role
	OPTIONAL MATCH (s)-[q:QUERIED]->(p:Provider)
	WHERE q.error <> ''
	WITH s, r, collect(p.name) AS failed
	RETURN s.id AS id, r.name AS role, s.location AS location, s.type AS type,
	       s.total AS total, s.at AS at, failed
	ORDER BY s.at DESC
	LIMIT $limit
`

// RecordSearch writes one search event
func (r *SearchHistoryRepository) RecordSearch(ctx context.Context, event domain.SearchEvent) error {
	session := r.client.WriteSession(ctx)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, recordSearchQuery, eventParams(event))
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})
	if err != nil {
		return fmt.Errorf("neo4j: record search %s: %w", event.ID, err)
	}
	return nil
}

// RecentSearches returns the latest searches, newest first, optionally
// restricted to one role
func (r *SearchHistoryRepository) RecentSearches(ctx context.Context, role string, limit int) ([]domain.SearchSummary, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	session := r.client.ReadSession(ctx)
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, recentSearchesQuery, map[string]any{
			"role":  roleKey(role),
			"limit": int64(limit),
		})
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("neo4j: recent searches: %w", err)
	}

	records := result.([]*neo4j.Record)
	summaries := make([]domain.SearchSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, summaryFromValues(rec.AsMap()))
	}
	return summaries, nil
}

func eventParams(event domain.SearchEvent) map[string]any {
	providers := make([]map[string]any, 0, len(event.Providers))
	for _, p := range event.Providers {
		providers = append(providers, map[string]any{
			"name":      p.Provider,
			"count":     int64(p.Count),
			"error":     p.Error,
			"elapsedMs": p.Elapsed.Milliseconds(),
		})
	}

	return map[string]any{
		"id":        event.ID.String(),
		"role":      roleKey(event.Request.Role),
		"location":  strings.TrimSpace(event.Request.Location),
		"type":      strings.TrimSpace(event.Request.Type),
		"total":     int64(event.Total),
		"at":        event.StartedAt.UnixMilli(),
		"elapsedMs": event.Elapsed.Milliseconds(),
		"providers": providers,
	}
}

func summaryFromValues(values map[string]any) domain.SearchSummary {
	s := domain.SearchSummary{}
	s.ID, _ = values["id"].(string)
	s.Role, _ = values["role"].(string)
	s.Location, _ = values["location"].(string)
	s.Type, _ = values["type"].(string)

	if total, ok := values["total"].(int64); ok {
		s.Total = int(total)
	}

	switch at := values["at"].(type) {
	case time.Time:
		s.At = at
	case neo4j.LocalDateTime:
		s.At = at.Time()
	}

	if failed, ok := values["failed"].([]any); ok {
		for _, f := range failed {
			if name, ok := f.(string); ok {
				s.FailedProviders = append(s.FailedProviders, name)
			}
		}
	}

	return s
}

// roleKey normalizes role names so "Go Developer" and "go developer "
// share a node
func roleKey(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
