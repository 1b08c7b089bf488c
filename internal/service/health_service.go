package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/yagomat/supra-client-nexus-sub000/internal/repository"
)

type healthService struct {
	repo        repository.Repository
	redisClient *redis.Client
	dispatch    DispatchService
	breaker     BreakerReporter
}

// NewHealthService builds the health probe. breaker may be nil when the
// active transport carries no circuit breaker.
func NewHealthService(repo repository.Repository, redisClient *redis.Client, dispatch DispatchService, breaker BreakerReporter) HealthService {
	return &healthService{
		repo:        repo,
		redisClient: redisClient,
		dispatch:    dispatch,
		breaker:     breaker,
	}
}

func (s *healthService) GetHealth() *HealthStatus {
	status := &HealthStatus{
		Status:           HealthStatusHealthy,
		DispatcherStatus: DispatcherStatusStopped,
		DatabaseStatus:   ComponentStatusConnected,
		RedisStatus:      ComponentStatusConnected,
	}

	if err := s.repo.Ping(); err != nil {
		status.DatabaseStatus = ComponentStatusDisconnected
		status.Status = HealthStatusUnhealthy
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		status.RedisStatus = ComponentStatusDisconnected
		if status.Status == HealthStatusHealthy {
			status.Status = HealthStatusDegraded
		}
	}

	if s.dispatch.IsRunning() {
		status.DispatcherStatus = DispatcherStatusRunning
	} else if status.Status == HealthStatusHealthy {
		status.Status = HealthStatusDegraded
	}

	if s.breaker != nil {
		state, requests, failures := s.breaker.BreakerStatus()
		status.CircuitBreakerState = state
		status.CircuitBreakerStatus = breakerSummary(requests, failures)
	}

	return status
}

func breakerSummary(requests, failures uint32) string {
	if requests == 0 {
		return "idle"
	}
	if failures == 0 {
		return "clean"
	}
	return "failing"
}
