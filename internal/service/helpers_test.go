package service

import (
	"context"
	"database/sql"
	"sync"

	"github.com/go-redis/redis/v8"

	"github.com/yagomat/supra-client-nexus-sub000/internal/config"
	"github.com/yagomat/supra-client-nexus-sub000/internal/provider"
)

// fakeAdapter records sends and answers with a per-phone verdict.
type fakeAdapter struct {
	mu       sync.Mutex
	failFor  map[string]bool
	sendFail bool
	calls    []sendCall
}

type sendCall struct {
	UserID string
	To     string
	Text   string
}

func newFakeAdapter() *fakeAdapter {
	return &fakeAdapter{failFor: make(map[string]bool)}
}

func (f *fakeAdapter) SendText(_ context.Context, userID, toPhone, text string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, sendCall{UserID: userID, To: toPhone, Text: text})
	if f.sendFail || f.failFor[toPhone] {
		return false
	}
	return true
}

func (f *fakeAdapter) sentCalls() []sendCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]sendCall, len(f.calls))
	copy(out, f.calls)
	return out
}

// stubInstance is a provider instance whose event stream the test drives.
type stubInstance struct {
	events chan provider.Event

	mu     sync.Mutex
	closed bool
}

func newStubInstance() *stubInstance {
	return &stubInstance{events: make(chan provider.Event, 16)}
}

func (s *stubInstance) Events() <-chan provider.Event { return s.events }

func (s *stubInstance) SendText(context.Context, string, string) error { return nil }

func (s *stubInstance) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.events)
	}
	return nil
}

func (s *stubInstance) Inject(evt provider.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.events <- evt
}

func (s *stubInstance) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// stubProvider hands out prepared instances and counts starts.
type stubProvider struct {
	mu        sync.Mutex
	instances []*stubInstance
	starts    int
	startErr  error
}

func (p *stubProvider) Start(context.Context, string) (provider.Instance, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.startErr != nil {
		return nil, p.startErr
	}
	inst := newStubInstance()
	p.instances = append(p.instances, inst)
	p.starts++
	return inst, nil
}

func (p *stubProvider) startCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.starts
}

func (p *stubProvider) lastInstance() *stubInstance {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.instances) == 0 {
		return nil
	}
	return p.instances[len(p.instances)-1]
}

func testConfig() *config.Config {
	return &config.Config{
		Session:  config.SessionConfig{QRTimeoutMinutes: 1, StatusCacheTTL: 1},
		Campaign: config.CampaignConfig{DefaultIntervalMin: 30, DefaultIntervalMax: 90},
		Dispatch: config.DispatchConfig{IntervalMinutes: 1, BatchSize: 50},
	}
}

// deadRedis points at a closed port; cache reads and writes fail fast and
// the services treat that as a cache miss.
func deadRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
}

func nullInt64(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: true}
}
