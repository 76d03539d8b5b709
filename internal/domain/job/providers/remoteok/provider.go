package remoteok

import (
	"context"
	"fmt"

	"github.com/honeycarbs/gradnex/internal/domain"
	jobdomain "github.com/honeycarbs/gradnex/internal/domain/job"
	"github.com/honeycarbs/gradnex/pkg/remoteok"
)

const (
	sourceName      = "RemoteOK"
	defaultLocation = "Remote"
	jobType         = "Full-time"
	snippetBudget   = 150
	currencySymbol  = "$"
)

type searchClient interface {
	SearchJobs(ctx context.Context, tag string) ([]remoteok.Job, error)
}

// Provider implements job.Provider over the RemoteOK feed. It only answers
// searches without a geographic constraint.
type Provider struct {
	client searchClient
}

// NewProvider builds a RemoteOK provider
func NewProvider(client searchClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("remoteok provider: client is required")
	}
	return &Provider{client: client}, nil
}

func (p *Provider) Name() string {
	return "remoteok"
}

// Applicable reports whether req has no location or asks for remote work
func (p *Provider) Applicable(req domain.SearchRequest) bool {
	return req.IsRemote()
}

func (p *Provider) Search(ctx context.Context, req domain.SearchRequest) ([]domain.JobRecord, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("remoteok provider: client is nil")
	}

	listings, err := p.client.SearchJobs(ctx, req.Role)
	if err != nil {
		return nil, err
	}
	listings = jobdomain.Limit(listings, jobdomain.PerProviderLimit)

	out := make([]domain.JobRecord, 0, len(listings))
	for _, l := range listings {
		out = append(out, domain.JobRecord{
			Title:    l.Position,
			Company:  jobdomain.OrDefault(l.Company, jobdomain.UnknownCompany),
			Location: jobdomain.OrDefault(l.Location, defaultLocation),
			Type:     jobType,
			Salary:   jobdomain.SalaryRange(currencySymbol, l.SalaryMin, l.SalaryMax),
			Link:     jobdomain.OrDefault(l.URL, l.ApplyURL),
			Snippet:  jobdomain.Snippet(l.Description, snippetBudget),
			Source:   sourceName,
			Logo:     domain.StringPtr(l.CompanyLogo),
		})
	}

	return out, nil
}

var _ jobdomain.Provider = (*Provider)(nil)
