package remoteok

import (
	"context"
	"testing"

	"github.com/honeycarbs/gradnex/internal/domain"
	"github.com/honeycarbs/gradnex/pkg/remoteok"
)

type fakeClient struct {
	jobs []remoteok.Job
	tag  string
}

func (f *fakeClient) SearchJobs(_ context.Context, tag string) ([]remoteok.Job, error) {
	f.tag = tag
	return f.jobs, nil
}

func TestApplicableOnlyForRemoteSearches(t *testing.T) {
	p, _ := NewProvider(&fakeClient{})

	cases := map[string]bool{
		"":        true,
		"remote":  true,
		"REMOTE":  true,
		"Berlin":  false,
		"Remote ": true,
	}
	for loc, want := range cases {
		if got := p.Applicable(domain.SearchRequest{Role: "go", Location: loc}); got != want {
			t.Errorf("Applicable(location=%q) = %v, want %v", loc, got, want)
		}
	}
}

func TestSearchNormalizesRecords(t *testing.T) {
	client := &fakeClient{jobs: []remoteok.Job{
		{
			Position:    "Go Engineer",
			Company:     "Remote Co",
			CompanyLogo: "https://logo.example/r.png",
			URL:         "https://remoteok.example/1",
			Description: "<div>Ship&nbsp;<em>fast</em></div>",
			SalaryMin:   90000,
			SalaryMax:   120000,
		},
		{Position: "SRE", ApplyURL: "https://remoteok.example/apply/2"},
	}}
	p, _ := NewProvider(client)

	got, err := p.Search(context.Background(), domain.SearchRequest{Role: "golang"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if client.tag != "golang" {
		t.Errorf("tag = %q", client.tag)
	}

	first := got[0]
	if first.Type != "Full-time" || first.Location != "Remote" || first.Source != "RemoteOK" {
		t.Errorf("unexpected record: %+v", first)
	}
	if first.Salary != "$90000 - $120000" {
		t.Errorf("salary = %q", first.Salary)
	}
	if first.Logo == nil || *first.Logo != "https://logo.example/r.png" {
		t.Errorf("logo = %v", first.Logo)
	}
	if first.Snippet != "Ship fast..." {
		t.Errorf("snippet = %q", first.Snippet)
	}

	second := got[1]
	if second.Company != "Unknown" || second.Salary != "Not specified" || second.Logo != nil || second.Snippet != "" {
		t.Errorf("defaults not applied: %+v", second)
	}
	if second.Link != "https://remoteok.example/apply/2" {
		t.Errorf("link = %q", second.Link)
	}
}
