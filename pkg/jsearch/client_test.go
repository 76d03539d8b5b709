package jsearch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSearchJobsSendsRapidAPIHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("X-RapidAPI-Key"); got != "secret" {
			t.Errorf("X-RapidAPI-Key = %q", got)
		}
		if got := r.Header.Get("X-RapidAPI-Host"); got != "jsearch.p.rapidapi.com" {
			t.Errorf("X-RapidAPI-Host = %q", got)
		}
		q := r.URL.Query()
		if q.Get("query") != "Intern in Delhi" || q.Get("page") != "1" || q.Get("num_pages") != "1" {
			t.Errorf("query params = %v", q)
		}

		var items []string
		for i := 0; i < 12; i++ {
			items = append(items, fmt.Sprintf(`{"job_title":"Intern %d","employer_name":"Co","job_min_salary":null}`, i))
		}
		_, _ = w.Write([]byte(`{"status":"OK","data":[` + strings.Join(items, ",") + `]}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{APIKey: "secret", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	jobs, err := client.SearchJobs(context.Background(), "Intern in Delhi")
	if err != nil {
		t.Fatalf("SearchJobs: %v", err)
	}
	if len(jobs) != defaultLimit {
		t.Errorf("got %d jobs, want %d", len(jobs), defaultLimit)
	}
	if jobs[0].MinSalary != 0 {
		t.Errorf("null salary should decode as 0, got %v", jobs[0].MinSalary)
	}
}

func TestSearchJobsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"You are not subscribed to this API."}`))
	}))
	defer srv.Close()

	client, _ := NewClient(Config{APIKey: "secret", BaseURL: srv.URL})
	_, err := client.SearchJobs(context.Background(), "go")
	if err == nil || !strings.Contains(err.Error(), "403") {
		t.Fatalf("err = %v, want 403 API error", err)
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("expected error without api key")
	}
}
