package relay

import (
	"errors"
	"os"
	"strings"
)

// Mode selects how received webhooks are re-broadcast.
type Mode string

const (
	// ModeForward delivers every webhook to the single forward URL.
	ModeForward Mode = "forward"
	// ModeProxy fans every webhook out to the configured proxy clients.
	ModeProxy Mode = "proxy"
)

// Configuration errors, distinguished so the CLI can map them to exit codes.
var (
	ErrNoForwardURL   = errors.New("relay: forward mode requires a forward URL")
	ErrNoProxyClients = errors.New("relay: proxy mode requires at least one proxy client URL")
)

// Config is the relay's full configuration. It is built explicitly at
// startup and injected; handlers only ever read it.
type Config struct {
	// Addr is the listen address, e.g. ":8780".
	Addr string
	// Mode is forward or proxy.
	Mode Mode
	// ForwardURL is the single listener used in forward mode.
	ForwardURL string
	// ProxyClients are the listeners fanned out to in proxy mode.
	ProxyClients []string
	// LogPayloads controls whether received bodies are written to the log.
	LogPayloads bool
	// SecretKey, when set, enables signature verification of received
	// payloads.
	SecretKey string
}

// Validate checks that the configured mode has somewhere to deliver to.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeForward:
		if c.ForwardURL == "" {
			return ErrNoForwardURL
		}
	case ModeProxy:
		if len(c.ProxyClients) == 0 {
			return ErrNoProxyClients
		}
	default:
		return errors.New("relay: mode must be forward or proxy")
	}
	return nil
}

// Listeners returns the delivery targets for the configured mode.
func (c *Config) Listeners() []string {
	if c.Mode == ModeForward {
		return []string{c.ForwardURL}
	}
	return c.ProxyClients
}

// FromEnv builds a Config from environment variables, applying defaults.
func FromEnv() Config {
	return Config{
		Addr:         getEnv("RELAY_ADDR", ":8780"),
		Mode:         Mode(getEnv("RELAY_MODE", string(ModeForward))),
		ForwardURL:   getEnv("RELAY_FORWARD_URL", ""),
		ProxyClients: splitList(getEnv("RELAY_PROXY_CLIENTS", "")),
		LogPayloads:  getEnv("RELAY_LOG_PAYLOADS", "false") == "true",
		SecretKey:    getEnv("PAYSTACK_SECRET_KEY", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
