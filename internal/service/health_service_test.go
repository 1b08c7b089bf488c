package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/yagomat/supra-client-nexus-sub000/internal/repository/mocks"
)

type fakeBreaker struct {
	state    string
	requests uint32
	failures uint32
}

func (f *fakeBreaker) BreakerStatus() (string, uint32, uint32) {
	return f.state, f.requests, f.failures
}

type fakeDispatch struct {
	running bool
}

func (f *fakeDispatch) Start() error                        { f.running = true; return nil }
func (f *fakeDispatch) Stop() error                         { f.running = false; return nil }
func (f *fakeDispatch) IsRunning() bool                     { return f.running }
func (f *fakeDispatch) DispatchDue(_ context.Context) error { return nil }

func TestHealthService_DatabaseDownIsUnhealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().Ping().Return(errors.New("connection refused"))

	svc := NewHealthService(repo, deadRedis(), &fakeDispatch{running: true}, nil)
	status := svc.GetHealth()

	assert.Equal(t, HealthStatusUnhealthy, status.Status)
	assert.Equal(t, ComponentStatusDisconnected, status.DatabaseStatus)
	assert.Equal(t, DispatcherStatusRunning, status.DispatcherStatus)
}

func TestHealthService_RedisDownIsDegraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().Ping().Return(nil)

	svc := NewHealthService(repo, deadRedis(), &fakeDispatch{running: true}, nil)
	status := svc.GetHealth()

	assert.Equal(t, HealthStatusDegraded, status.Status)
	assert.Equal(t, ComponentStatusConnected, status.DatabaseStatus)
	assert.Equal(t, ComponentStatusDisconnected, status.RedisStatus)
}

func TestHealthService_StoppedDispatcherIsDegraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().Ping().Return(nil)

	svc := NewHealthService(repo, deadRedis(), &fakeDispatch{}, nil)
	status := svc.GetHealth()

	assert.Equal(t, HealthStatusDegraded, status.Status)
	assert.Equal(t, DispatcherStatusStopped, status.DispatcherStatus)
}

func TestHealthService_BreakerReporting(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().Ping().Return(nil)

	breaker := &fakeBreaker{state: "closed", requests: 10, failures: 2}
	svc := NewHealthService(repo, deadRedis(), &fakeDispatch{running: true}, breaker)
	status := svc.GetHealth()

	assert.Equal(t, "closed", status.CircuitBreakerState)
	assert.Equal(t, "failing", status.CircuitBreakerStatus)
}

func TestHealthService_NoBreaker(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().Ping().Return(nil)

	svc := NewHealthService(repo, deadRedis(), &fakeDispatch{running: true}, nil)
	status := svc.GetHealth()

	assert.Empty(t, status.CircuitBreakerState)
	assert.Empty(t, status.CircuitBreakerStatus)
}

func TestBreakerSummary(t *testing.T) {
	assert.Equal(t, "idle", breakerSummary(0, 0))
	assert.Equal(t, "clean", breakerSummary(5, 0))
	assert.Equal(t, "failing", breakerSummary(5, 1))
}
