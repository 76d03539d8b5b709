package remoteok

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func feed(n int) string {
	items := []string{`{"legal":"API terms of service"}`}
	for i := 1; i <= n; i++ {
		items = append(items, fmt.Sprintf(`{"position":"Role %d","company":"Co %d","url":"https://remoteok.example/%d","salary_min":%d}`, i, i, i, i*1000))
	}
	return "[" + strings.Join(items, ",") + "]"
}

func TestSearchJobsSkipsLegalNoticeAndLimits(t *testing.T) {
	var gotTags, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTags = r.URL.Query().Get("tags")
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(feed(14)))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	jobs, err := client.SearchJobs(context.Background(), "backend engineer")
	if err != nil {
		t.Fatalf("SearchJobs: %v", err)
	}

	if gotTags != "backend engineer" {
		t.Errorf("tags = %q", gotTags)
	}
	if gotUA == "" {
		t.Error("User-Agent header must be set")
	}
	if len(jobs) != defaultLimit {
		t.Fatalf("got %d jobs, want %d", len(jobs), defaultLimit)
	}
	if jobs[0].Position != "Role 1" || jobs[0].SalaryMin != 1000 {
		t.Errorf("first job = %+v", jobs[0])
	}
}

func TestSearchJobsLegalNoticeOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(feed(0)))
	}))
	defer srv.Close()

	jobs, err := NewClient(Config{BaseURL: srv.URL}).SearchJobs(context.Background(), "go")
	if err != nil {
		t.Fatalf("SearchJobs: %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("got %d jobs, want 0", len(jobs))
	}
}

func TestSearchJobsErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("tags") == "broken" {
			_, _ = w.Write([]byte(`{"not":"an array"}`))
			return
		}
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	if _, err := client.SearchJobs(context.Background(), "go"); err == nil || !strings.Contains(err.Error(), "429") {
		t.Errorf("err = %v, want 429 API error", err)
	}
	if _, err := client.SearchJobs(context.Background(), "broken"); err == nil || !strings.Contains(err.Error(), "decode") {
		t.Errorf("err = %v, want decode error", err)
	}
	if _, err := client.SearchJobs(context.Background(), " "); err == nil {
		t.Error("expected error for empty tag")
	}
}
