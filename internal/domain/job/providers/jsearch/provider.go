package jsearch

import (
	"context"
	"fmt"
	"strings"

	"github.com/honeycarbs/gradnex/internal/domain"
	jobdomain "github.com/honeycarbs/gradnex/internal/domain/job"
	"github.com/honeycarbs/gradnex/pkg/jsearch"
)

const (
	sourceName      = "JSearch"
	defaultLocation = "Remote"
	defaultType     = "Full-time"
	snippetBudget   = 150
	currencySymbol  = "$"
)

type searchClient interface {
	SearchJobs(ctx context.Context, query string) ([]jsearch.Job, error)
}

// Provider implements job.Provider using the JSearch RapidAPI endpoint
type Provider struct {
	client searchClient
}

// NewProvider builds a JSearch provider
func NewProvider(client searchClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("jsearch provider: client is required")
	}
	return &Provider{client: client}, nil
}

func (p *Provider) Name() string {
	return "jsearch"
}

func (p *Provider) Applicable(domain.SearchRequest) bool {
	return true
}

// Search sends role and location as one free-text query ("<role> in <location>")
func (p *Provider) Search(ctx context.Context, req domain.SearchRequest) ([]domain.JobRecord, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("jsearch provider: client is nil")
	}

	jobs, err := p.client.SearchJobs(ctx, buildQuery(req))
	if err != nil {
		return nil, err
	}
	jobs = jobdomain.Limit(jobs, jobdomain.PerProviderLimit)

	out := make([]domain.JobRecord, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, domain.JobRecord{
			Title:    j.Title,
			Company:  jobdomain.OrDefault(j.EmployerName, jobdomain.UnknownCompany),
			Location: location(j),
			Type:     jobdomain.OrDefault(j.EmploymentType, defaultType),
			Salary:   jobdomain.SalaryRange(currencySymbol, j.MinSalary, j.MaxSalary),
			Link:     firstLink(j.ApplyLink, j.GoogleLink, j.EmployerWebsite),
			Snippet:  jobdomain.Snippet(j.Description, snippetBudget),
			Source:   sourceName,
			Logo:     domain.StringPtr(j.EmployerLogo),
		})
	}

	return out, nil
}

func buildQuery(req domain.SearchRequest) string {
	query := strings.TrimSpace(req.Role)
	if loc := strings.TrimSpace(req.Location); loc != "" {
		query += " in " + loc
	}
	return query
}

func location(j jsearch.Job) string {
	if j.City == "" {
		return defaultLocation
	}
	if j.Country == "" {
		return j.City
	}
	return j.City + ", " + j.Country
}

func firstLink(links ...string) string {
	for _, l := range links {
		if strings.TrimSpace(l) != "" {
			return l
		}
	}
	return ""
}

var _ jobdomain.Provider = (*Provider)(nil)
