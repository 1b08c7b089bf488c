package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/yagomat/supra-client-nexus-sub000/internal/config"
)

// relayAction is the control payload posted to the relay for session
// lifecycle operations. The relay owns the real provider connection and
// reports back through the event webhook.
type relayAction struct {
	Action   string `json:"action"`
	Instance string `json:"instance"`
	To       string `json:"to,omitempty"`
	Text     string `json:"text,omitempty"`
}

// RelayProvider drives provider sessions hosted by an external workflow
// relay. Events do not arrive on a provider socket; they are injected into
// the instance when the relay calls our event webhook.
type RelayProvider struct {
	url        string
	authKey    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewRelayProvider(cfg *config.RelayConfig, logger *zap.Logger) (*RelayProvider, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("relay provider selected but relay url is not configured")
	}

	return &RelayProvider{
		url:     cfg.URL,
		authKey: cfg.AuthKey,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		logger: logger,
	}, nil
}

// Start asks the relay to open a connection for the instance. The returned
// handle is live immediately; state arrives later via injected events.
func (p *RelayProvider) Start(ctx context.Context, instanceName string) (Instance, error) {
	if err := p.post(ctx, relayAction{Action: "connect", Instance: instanceName}); err != nil {
		return nil, fmt.Errorf("failed to start relay instance: %w", err)
	}

	return &relayInstance{
		provider: p,
		name:     instanceName,
		events:   make(chan Event, 64),
	}, nil
}

func (p *RelayProvider) post(ctx context.Context, action relayAction) error {
	body, err := json.Marshal(action)
	if err != nil {
		return fmt.Errorf("failed to marshal relay action: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create relay request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if p.authKey != "" {
		req.Header.Set("x-relay-auth-key", p.authKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call relay: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close relay response body", zap.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("relay returned unexpected status code: %d", resp.StatusCode)
	}

	return nil
}

type relayInstance struct {
	provider *RelayProvider
	name     string
	events   chan Event

	mu     sync.Mutex
	closed bool
}

func (i *relayInstance) Events() <-chan Event {
	return i.events
}

// Inject delivers an event received on the webhook into the instance's
// stream. Drops rather than blocks when the consumer falls behind.
func (i *relayInstance) Inject(evt Event) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return
	}

	select {
	case i.events <- evt:
	default:
		i.provider.logger.Warn("Relay event dropped, channel full",
			zap.String("instance", i.name))
	}
}

func (i *relayInstance) SendText(ctx context.Context, toPhone, text string) error {
	return i.provider.post(ctx, relayAction{
		Action:   "send",
		Instance: i.name,
		To:       toPhone,
		Text:     text,
	})
}

// Close tells the relay to tear the connection down and closes the event
// stream. Safe to call more than once.
func (i *relayInstance) Close() error {
	i.mu.Lock()
	if i.closed {
		i.mu.Unlock()
		return nil
	}
	i.closed = true
	close(i.events)
	i.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := i.provider.post(ctx, relayAction{Action: "disconnect", Instance: i.name}); err != nil {
		return fmt.Errorf("failed to stop relay instance: %w", err)
	}

	return nil
}
