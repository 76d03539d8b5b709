package job

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/honeycarbs/gradnex/internal/domain"
)

type fakeProvider struct {
	name       string
	applicable func(domain.SearchRequest) bool
	search     func(ctx context.Context) ([]domain.JobRecord, error)
	calls      atomic.Int32
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Applicable(req domain.SearchRequest) bool {
	if f.applicable == nil {
		return true
	}
	return f.applicable(req)
}

func (f *fakeProvider) Search(ctx context.Context, _ domain.SearchRequest) ([]domain.JobRecord, error) {
	f.calls.Add(1)
	return f.search(ctx)
}

func records(source string, n int) []domain.JobRecord {
	out := make([]domain.JobRecord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.JobRecord{
			Title:    fmt.Sprintf("%s job %d", source, i),
			Company:  "Co",
			Location: "Remote",
			Type:     "Full-time",
			Salary:   NotSpecified,
			Link:     fmt.Sprintf("https://%s.example/%d", source, i),
			Source:   source,
		})
	}
	return out
}

func okProvider(name string, n int) *fakeProvider {
	return &fakeProvider{
		name: name,
		search: func(context.Context) ([]domain.JobRecord, error) {
			return records(name, n), nil
		},
	}
}

func failingProvider(name string) *fakeProvider {
	return &fakeProvider{
		name: name,
		search: func(context.Context) ([]domain.JobRecord, error) {
			return nil, errors.New(name + " unavailable")
		},
	}
}

type recorderSpy struct {
	mu     sync.Mutex
	events []domain.SearchEvent
	err    error
}

func (r *recorderSpy) RecordSearch(_ context.Context, e domain.SearchEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return r.err
}

func links(jobs []domain.JobRecord) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Link)
	}
	sort.Strings(out)
	return out
}

func newTestService(t *testing.T, opts ...Option) Service {
	t.Helper()
	opts = append([]Option{WithRand(rand.New(rand.NewPCG(1, 2)))}, opts...)
	svc, err := NewService(opts...)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestSearchRejectsMissingRoleWithoutCallingProviders(t *testing.T) {
	a, b := okProvider("a", 3), okProvider("b", 3)
	spy := &recorderSpy{}
	svc := newTestService(t, WithProviders(a, b), WithRecorder(spy))

	for _, role := range []string{"", "   "} {
		_, err := svc.Search(context.Background(), domain.SearchRequest{Role: role})
		if !errors.Is(err, domain.ErrRoleRequired) {
			t.Fatalf("role %q: err = %v, want ErrRoleRequired", role, err)
		}
	}

	if a.calls.Load() != 0 || b.calls.Load() != 0 {
		t.Errorf("providers called %d/%d times, want 0", a.calls.Load(), b.calls.Load())
	}
	if len(spy.events) != 0 {
		t.Error("rejected requests must not be recorded")
	}
}

func TestSearchInvokesExactlyApplicableProviders(t *testing.T) {
	always := okProvider("always", 2)
	remoteOnly := okProvider("remote", 2)
	remoteOnly.applicable = func(r domain.SearchRequest) bool { return r.IsRemote() }

	svc := newTestService(t, WithProviders(always, remoteOnly))

	res, err := svc.Search(context.Background(), domain.SearchRequest{Role: "go", Location: "Pune"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if always.calls.Load() != 1 || remoteOnly.calls.Load() != 0 {
		t.Errorf("calls = %d/%d, want 1/0", always.calls.Load(), remoteOnly.calls.Load())
	}
	if res.Count != 2 {
		t.Errorf("count = %d, want 2", res.Count)
	}

	res, _ = svc.Search(context.Background(), domain.SearchRequest{Role: "go", Location: "remote"})
	if always.calls.Load() != 2 || remoteOnly.calls.Load() != 1 {
		t.Errorf("calls = %d/%d, want 2/1", always.calls.Load(), remoteOnly.calls.Load())
	}
	if res.Count != 4 {
		t.Errorf("count = %d, want 4", res.Count)
	}
}

func TestSearchOneProviderFails(t *testing.T) {
	a, b, c := okProvider("a", 10), failingProvider("b"), okProvider("c", 7)
	spy := &recorderSpy{}
	svc := newTestService(t, WithProviders(a, b, c), WithRecorder(spy))

	res, err := svc.Search(context.Background(), domain.SearchRequest{Role: "go"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if !res.Success || res.Count != 17 || len(res.Jobs) != 17 {
		t.Fatalf("result = success:%v count:%d len:%d, want true/17/17", res.Success, res.Count, len(res.Jobs))
	}
	for _, j := range res.Jobs {
		if j.Source == "b" {
			t.Fatal("failed provider contributed records")
		}
	}

	if len(spy.events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(spy.events))
	}
	event := spy.events[0]
	if event.Total != 17 || len(event.Providers) != 3 {
		t.Errorf("event = %+v", event)
	}
	for _, o := range event.Providers {
		if o.Provider == "b" && (!o.Failed() || o.Count != 0) {
			t.Errorf("outcome for b = %+v, want failure with 0 count", o)
		}
		if o.Provider != "b" && o.Failed() {
			t.Errorf("outcome for %s unexpectedly failed", o.Provider)
		}
	}
}

func TestSearchAllProvidersFail(t *testing.T) {
	svc := newTestService(t, WithProviders(failingProvider("a"), failingProvider("b"), failingProvider("c")))

	res, err := svc.Search(context.Background(), domain.SearchRequest{Role: "go"})
	if err != nil {
		t.Fatalf("total outage must not be an error, got %v", err)
	}
	if !res.Success || res.Count != 0 || res.Jobs == nil || len(res.Jobs) != 0 {
		t.Errorf("result = %+v, want success with empty non-nil jobs", res)
	}
}

func TestSearchWithoutProviders(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.Search(context.Background(), domain.SearchRequest{Role: "Backend Engineer"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !res.Success || res.Count != 0 || res.Jobs == nil {
		t.Errorf("result = %+v", res)
	}
}

func TestSearchSlowProviderDoesNotBlockOthers(t *testing.T) {
	slow := &fakeProvider{
		name: "slow",
		search: func(ctx context.Context) ([]domain.JobRecord, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	fast := okProvider("fast", 5)
	svc := newTestService(t, WithProviders(slow, fast), WithTimeout(50*time.Millisecond))

	start := time.Now()
	res, err := svc.Search(context.Background(), domain.SearchRequest{Role: "go"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("search took %s; the provider timeout was not applied", elapsed)
	}
	if res.Count != 5 {
		t.Errorf("count = %d, want 5", res.Count)
	}
}

func TestSearchProvidersRunConcurrently(t *testing.T) {
	var started sync.WaitGroup
	started.Add(3)
	barrier := func(name string) *fakeProvider {
		return &fakeProvider{
			name: name,
			search: func(ctx context.Context) ([]domain.JobRecord, error) {
				started.Done()
				started.Wait()
				return records(name, 1), nil
			},
		}
	}

	svc := newTestService(t, WithProviders(barrier("a"), barrier("b"), barrier("c")), WithTimeout(5*time.Second))

	done := make(chan domain.SearchResult, 1)
	go func() {
		res, _ := svc.Search(context.Background(), domain.SearchRequest{Role: "go"})
		done <- res
	}()

	select {
	case res := <-done:
		if res.Count != 3 {
			t.Errorf("count = %d, want 3", res.Count)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("providers were not launched concurrently")
	}
}

func TestSearchRecoversProviderPanic(t *testing.T) {
	panicky := &fakeProvider{
		name: "panicky",
		search: func(context.Context) ([]domain.JobRecord, error) {
			panic("nil map write")
		},
	}
	svc := newTestService(t, WithProviders(panicky, okProvider("ok", 2)))

	res, err := svc.Search(context.Background(), domain.SearchRequest{Role: "go"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Count != 2 {
		t.Errorf("count = %d, want 2", res.Count)
	}
}

func TestSearchCapsRecordsPerProvider(t *testing.T) {
	svc := newTestService(t, WithProviders(okProvider("chatty", 25)))

	res, _ := svc.Search(context.Background(), domain.SearchRequest{Role: "go"})
	if res.Count != PerProviderLimit {
		t.Errorf("count = %d, want %d", res.Count, PerProviderLimit)
	}
}

func TestSearchShuffleKeepsMembership(t *testing.T) {
	svc := newTestService(t, WithProviders(okProvider("a", 10), okProvider("b", 10), okProvider("c", 10)))
	req := domain.SearchRequest{Role: "Intern", Location: "Remote", Type: "any"}

	first, _ := svc.Search(context.Background(), req)
	second, _ := svc.Search(context.Background(), req)

	a, b := links(first.Jobs), links(second.Jobs)
	if len(a) != 30 || len(b) != 30 {
		t.Fatalf("counts = %d/%d, want 30/30", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("membership differs at %d: %s vs %s", i, a[i], b[i])
		}
	}
	for _, j := range first.Jobs {
		if j.Location == "" {
			t.Errorf("record %s has empty location", j.Link)
		}
	}
}

func TestSearchShuffleIsSeedable(t *testing.T) {
	build := func() Service {
		return newTestService(t,
			WithProviders(okProvider("a", 10), okProvider("b", 10)),
			WithRand(rand.New(rand.NewPCG(42, 7))),
		)
	}
	req := domain.SearchRequest{Role: "go"}

	first, _ := build().Search(context.Background(), req)
	second, _ := build().Search(context.Background(), req)

	for i := range first.Jobs {
		if first.Jobs[i].Link != second.Jobs[i].Link {
			t.Fatalf("same seed produced different order at %d", i)
		}
	}
}

func TestSearchRecorderErrorIsIgnored(t *testing.T) {
	spy := &recorderSpy{err: errors.New("neo4j down")}
	svc := newTestService(t, WithProviders(okProvider("a", 1)), WithRecorder(spy))

	res, err := svc.Search(context.Background(), domain.SearchRequest{Role: "go"})
	if err != nil || res.Count != 1 {
		t.Fatalf("res/err = %+v/%v", res, err)
	}
}

func TestNewServiceValidation(t *testing.T) {
	if _, err := NewService(WithProviders(nil)); err == nil {
		t.Error("expected error for nil provider")
	}
	if _, err := NewService(WithTimeout(0)); err == nil {
		t.Error("expected error for zero timeout")
	}
}

func TestMultiRecorderJoinsErrors(t *testing.T) {
	good, bad := &recorderSpy{}, &recorderSpy{err: errors.New("redis down")}
	m := MultiRecorder{good, nil, bad}

	err := m.RecordSearch(context.Background(), domain.SearchEvent{Total: 1})
	if err == nil {
		t.Fatal("expected joined error")
	}
	if len(good.events) != 1 || len(bad.events) != 1 {
		t.Error("every recorder should receive the event")
	}
}
