package botvac

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultBaseURL = "https://nucleo.neatocloud.com"
	defaultTimeout = 30 * time.Second
)

// Config defines runtime configuration for a Robot client.
type Config struct {
	// Serial identifies the robot; it is lowercased when signing.
	Serial string
	// Secret is the shared HMAC key for this robot.
	Secret string
	// Traits lists extras the robot supports, as reported by the vendor
	// account API.
	Traits []string
	// Name is an optional display name.
	Name string

	// BaseURL overrides the Nucleo endpoint, mostly for tests.
	BaseURL string
	// Timeout bounds each request. Defaults to 30s.
	Timeout time.Duration
	// HTTPClient overrides the pinned client entirely. When set, CACertPEM
	// is ignored.
	HTTPClient *http.Client
	// CACertPEM replaces the bundled trust anchor used to verify the
	// Nucleo server certificate. Defaults to the embedded one.
	CACertPEM []byte
	// Logger receives debug lines for each command send. Defaults to a
	// disabled logger.
	Logger *zerolog.Logger
	// RequestIDFunc generates per-request reqId values. The default sends
	// the literal "1" for every request, matching observed robot traffic;
	// the protocol looks like it intends unique ids, so UUIDRequestIDs is
	// available for hosts that want to confirm that against the real
	// service.
	RequestIDFunc func() string
}

// UUIDRequestIDs is an opt-in RequestIDFunc producing a unique reqId per
// request.
func UUIDRequestIDs() string {
	return uuid.New().String()
}

func constantRequestID() string {
	return "1"
}

func (cfg Config) validate() error {
	if strings.TrimSpace(cfg.Serial) == "" {
		return fmt.Errorf("botvac serial is required")
	}
	if cfg.Secret == "" {
		return fmt.Errorf("botvac secret is required")
	}
	return nil
}

func (cfg Config) baseURL() string {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return strings.TrimRight(base, "/")
}

func (cfg Config) timeout() time.Duration {
	if cfg.Timeout > 0 {
		return cfg.Timeout
	}
	return defaultTimeout
}

func (cfg Config) logger() zerolog.Logger {
	if cfg.Logger != nil {
		return *cfg.Logger
	}
	return zerolog.Nop()
}

func (cfg Config) requestID() func() string {
	if cfg.RequestIDFunc != nil {
		return cfg.RequestIDFunc
	}
	return constantRequestID
}
