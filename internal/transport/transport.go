// Package transport sends outbound text through the messaging provider,
// either directly or via an external workflow relay.
package transport

import (
	"context"
	"strings"
)

// Adapter is the capability the orchestration flows depend on. True means
// the provider accepted the message, not that it was delivered. Adapters
// never panic or error out to callers.
type Adapter interface {
	SendText(ctx context.Context, userID, toPhone, text string) bool
}

// NormalizePhone strips provider JID suffixes and formatting, leaving the
// bare number the provider expects.
func NormalizePhone(phone string) string {
	for _, suffix := range []string{"@s.whatsapp.net", "@c.us", "@g.us"} {
		if idx := strings.Index(phone, suffix); idx >= 0 {
			phone = phone[:idx]
			break
		}
	}

	var b strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
