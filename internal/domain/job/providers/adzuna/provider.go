package adzuna

import (
	"context"
	"fmt"
	"strings"

	"github.com/honeycarbs/gradnex/internal/domain"
	jobdomain "github.com/honeycarbs/gradnex/internal/domain/job"
	"github.com/honeycarbs/gradnex/pkg/adzuna"
)

const (
	sourceName      = "Adzuna"
	defaultLocation = "India"
	defaultType     = "Any"
	snippetBudget   = 160
	currencySymbol  = "₹"
)

// searchClient describes the subset of the Adzuna client used by the provider.
type searchClient interface {
	SearchJobs(ctx context.Context, params adzuna.SearchParams) ([]adzuna.Job, error)
}

// Provider implements job.Provider using Adzuna API
type Provider struct {
	client searchClient
}

// NewProvider builds an Adzuna provider
func NewProvider(client searchClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("adzuna provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "adzuna"
}

// Applicable is always true; Adzuna handles both located and remote searches
func (p *Provider) Applicable(domain.SearchRequest) bool {
	return true
}

// Search queries Adzuna and returns normalized jobs. Adzuna is the only
// source with a native employment type, so the request's type filter is
// applied here.
func (p *Provider) Search(ctx context.Context, req domain.SearchRequest) ([]domain.JobRecord, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("adzuna provider: client is nil")
	}

	params := adzuna.SearchParams{What: req.Role}
	if !req.IsRemote() {
		params.Where = req.Location
	}

	respJobs, err := p.client.SearchJobs(ctx, params)
	if err != nil {
		return nil, err
	}
	respJobs = jobdomain.Limit(respJobs, jobdomain.PerProviderLimit)

	out := make([]domain.JobRecord, 0, len(respJobs))
	for _, j := range respJobs {
		salary := jobdomain.NotSpecified
		if j.SalaryMin > 0 && j.SalaryMax > 0 {
			salary = jobdomain.SalaryRange(currencySymbol, j.SalaryMin, j.SalaryMax)
		}

		out = append(out, domain.JobRecord{
			Title:    j.Title,
			Company:  jobdomain.OrDefault(j.CompanyName, jobdomain.UnknownCompany),
			Location: jobdomain.OrDefault(j.Location, defaultLocation),
			Type:     jobdomain.OrDefault(j.ContractTime, defaultType),
			Salary:   salary,
			Link:     j.URL,
			Snippet:  jobdomain.Snippet(j.Description, snippetBudget),
			Source:   sourceName,
			Logo:     nil,
		})
	}

	if req.HasTypeFilter() {
		out = jobdomain.FilterByType(out, strings.TrimSpace(req.Type))
	}

	return out, nil
}

var _ jobdomain.Provider = (*Provider)(nil)
