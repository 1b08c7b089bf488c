package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/yagomat/supra-client-nexus-sub000/internal/config"
)

// relayRequest is the payload forwarded to the workflow-automation relay,
// which performs the actual provider call on our behalf.
type relayRequest struct {
	UserID string `json:"user_id"`
	To     string `json:"to"`
	Text   string `json:"text"`
}

// RelayAdapter sends through an external workflow webhook, guarded by a
// circuit breaker.
type RelayAdapter struct {
	url            string
	authKey        string
	httpClient     *http.Client
	circuitBreaker *CircuitBreaker
	logger         *zap.Logger
}

func NewRelayAdapter(cfg *config.TransportConfig, logger *zap.Logger) (*RelayAdapter, error) {
	if cfg.Relay.URL == "" {
		return nil, fmt.Errorf("relay transport selected but relay url is not configured")
	}

	return &RelayAdapter{
		url:     cfg.Relay.URL,
		authKey: cfg.Relay.AuthKey,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Relay.Timeout) * time.Second,
		},
		circuitBreaker: NewCircuitBreaker(&cfg.CircuitBreaker, logger),
		logger:         logger,
	}, nil
}

// SendText posts the message to the relay. Any transport or HTTP failure
// comes back as false, never as a panic or error.
func (a *RelayAdapter) SendText(ctx context.Context, userID, toPhone, text string) bool {
	phone := NormalizePhone(toPhone)
	if phone == "" {
		a.logger.Warn("Relay send skipped, empty phone after normalization",
			zap.String("userID", userID))
		return false
	}

	err := a.circuitBreaker.Execute(ctx, func() error {
		body, err := json.Marshal(relayRequest{UserID: userID, To: phone, Text: text})
		if err != nil {
			return fmt.Errorf("failed to marshal relay request: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewBuffer(body))
		if err != nil {
			return fmt.Errorf("failed to create relay request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if a.authKey != "" {
			req.Header.Set("x-relay-auth-key", a.authKey)
		}

		resp, err := a.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to call relay: %w", err)
		}
		defer func() {
			if closeErr := resp.Body.Close(); closeErr != nil {
				a.logger.Warn("Failed to close relay response body", zap.Error(closeErr))
			}
		}()

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
			return fmt.Errorf("relay returned unexpected status code: %d", resp.StatusCode)
		}

		return nil
	})
	if err != nil {
		a.logger.Error("Relay send failed",
			zap.String("userID", userID),
			zap.String("phone", phone),
			zap.String("circuitBreakerState", a.circuitBreaker.GetState()),
			zap.Error(err))
		return false
	}

	return true
}

// BreakerStatus exposes the circuit breaker for the health endpoint.
func (a *RelayAdapter) BreakerStatus() (state string, requests, failures uint32) {
	requests, failures = a.circuitBreaker.GetCounts()
	return a.circuitBreaker.GetState(), requests, failures
}
