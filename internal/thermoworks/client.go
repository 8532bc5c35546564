// Package thermoworks is a client for the ThermoWorks Cloud API: it
// authenticates with email/password, keeps a refreshable session, and
// returns already-parsed temperature readings from registered devices.
//
// The session is an explicit object with an explicit lifecycle
// (Login/Reset) owned by the Client the composition root builds —
// there is no package-level cached credential state, and nothing
// outside this package ever sees a token.
package thermoworks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/jweingardt12/bbq-mcp/internal/engine"
)

const (
	defaultBaseURL = "https://cloud.thermoworks.com/api/v1"
	requestTimeout = 10 * time.Second

	// refreshSkew renews a session slightly before it actually
	// expires so in-flight calls don't race the deadline.
	refreshSkew = 60 * time.Second
)

// ErrNotConfigured is returned by LoadConfig when no credentials are
// present in the environment. The server treats it as "skip device
// tools", not as a failure.
var ErrNotConfigured = errors.New("thermoworks: credentials not configured")

// Config holds ThermoWorks Cloud credentials, read from the
// environment (a .env file is honored when present).
type Config struct {
	Email    string
	Password string
	APIKey   string
	BaseURL  string
}

// LoadConfig reads THERMOWORKS_EMAIL, THERMOWORKS_PASSWORD and
// optional THERMOWORKS_API_KEY / THERMOWORKS_BASE_URL. A missing .env
// file is fine; missing credentials return ErrNotConfigured.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Email:    os.Getenv("THERMOWORKS_EMAIL"),
		Password: os.Getenv("THERMOWORKS_PASSWORD"),
		APIKey:   os.Getenv("THERMOWORKS_API_KEY"),
		BaseURL:  os.Getenv("THERMOWORKS_BASE_URL"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Email == "" || cfg.Password == "" {
		return Config{}, ErrNotConfigured
	}
	return cfg, nil
}

// Session is an authenticated ThermoWorks Cloud session. Tokens stay
// inside this package.
type Session struct {
	ID           string
	idToken      string
	refreshToken string
	expiresAt    time.Time
}

// expired reports whether the session needs a refresh, allowing for
// clock skew.
func (s *Session) expired(now time.Time) bool {
	return now.After(s.expiresAt.Add(-refreshSkew))
}

// Device is a registered thermometer.
type Device struct {
	ID         string `json:"device_id"`
	Name       string `json:"name"`
	Model      string `json:"model,omitempty"`
	ProbeCount int    `json:"probe_count"`
	Online     bool   `json:"online"`
}

// Client talks to the ThermoWorks Cloud API.
type Client struct {
	cfg  Config
	http *http.Client
	log  zerolog.Logger

	mu      sync.Mutex
	session *Session
}

// NewClient creates a Client. No network traffic happens until the
// first call that needs a session.
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: requestTimeout},
		log:  logger.With().Str("component", "thermoworks").Logger(),
	}
}

// Login authenticates and installs a fresh session, replacing any
// existing one.
func (c *Client) Login(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loginLocked(ctx)
}

func (c *Client) loginLocked(ctx context.Context) error {
	body, err := json.Marshal(map[string]string{
		"email":    c.cfg.Email,
		"password": c.cfg.Password,
	})
	if err != nil {
		return fmt.Errorf("thermoworks: encoding login: %w", err)
	}

	var resp struct {
		IDToken      string `json:"id_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int    `json:"expires_in"`
	}
	if err := c.post(ctx, "/auth/login", body, "", &resp); err != nil {
		return fmt.Errorf("thermoworks: login: %w", err)
	}

	c.session = &Session{
		ID:           uuid.NewString(),
		idToken:      resp.IDToken,
		refreshToken: resp.RefreshToken,
		expiresAt:    time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}
	c.log.Debug().Str("session", c.session.ID).Msg("logged in")
	return nil
}

// Reset drops the current session. The next call re-authenticates.
func (c *Client) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = nil
}

// ensureSession returns a valid token, logging in or refreshing as
// needed.
func (c *Client) ensureSession(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		if err := c.loginLocked(ctx); err != nil {
			return "", err
		}
		return c.session.idToken, nil
	}

	if c.session.expired(time.Now()) {
		if err := c.refreshLocked(ctx); err != nil {
			c.log.Debug().Err(err).Msg("refresh failed, retrying with full login")
			if err := c.loginLocked(ctx); err != nil {
				return "", err
			}
		}
	}
	return c.session.idToken, nil
}

func (c *Client) refreshLocked(ctx context.Context) error {
	body, err := json.Marshal(map[string]string{
		"refresh_token": c.session.refreshToken,
	})
	if err != nil {
		return fmt.Errorf("thermoworks: encoding refresh: %w", err)
	}

	var resp struct {
		IDToken      string `json:"id_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int    `json:"expires_in"`
	}
	if err := c.post(ctx, "/auth/refresh", body, "", &resp); err != nil {
		return fmt.Errorf("thermoworks: refresh: %w", err)
	}

	c.session.idToken = resp.IDToken
	if resp.RefreshToken != "" {
		c.session.refreshToken = resp.RefreshToken
	}
	c.session.expiresAt = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	c.log.Debug().Str("session", c.session.ID).Msg("session refreshed")
	return nil
}

// Devices lists the account's registered thermometers.
func (c *Client) Devices(ctx context.Context) ([]Device, error) {
	var resp struct {
		Devices []Device `json:"devices"`
	}
	if err := c.get(ctx, "/devices", &resp); err != nil {
		return nil, fmt.Errorf("thermoworks: listing devices: %w", err)
	}
	return resp.Devices, nil
}

// LatestReading fetches the most recent temperature for one probe of
// a device. Readings come back already parsed — temperature +
// timestamp — per the API contract.
func (c *Client) LatestReading(ctx context.Context, deviceID string, probe int) (engine.Reading, error) {
	var resp struct {
		Temperature float64   `json:"temperature"`
		Units       string    `json:"units"`
		Timestamp   time.Time `json:"timestamp"`
	}
	path := fmt.Sprintf("/devices/%s/probes/%d/reading", deviceID, probe)
	if err := c.get(ctx, path, &resp); err != nil {
		return engine.Reading{}, fmt.Errorf("thermoworks: reading %s probe %d: %w", deviceID, probe, err)
	}

	temp := resp.Temperature
	if resp.Units == "C" || resp.Units == "c" {
		f, err := engine.ConvertTemperature(temp, "C", "F")
		if err != nil {
			return engine.Reading{}, fmt.Errorf("thermoworks: converting units: %w", err)
		}
		temp = f
	}
	return engine.Reading{TempF: temp, Time: resp.Timestamp}, nil
}

// get performs an authenticated GET, retrying once through a fresh
// login when the API answers 401.
func (c *Client) get(ctx context.Context, path string, out any) error {
	token, err := c.ensureSession(ctx)
	if err != nil {
		return err
	}

	err = c.do(ctx, http.MethodGet, path, nil, token, out)
	if errors.Is(err, errUnauthorized) {
		c.Reset()
		if token, err = c.ensureSession(ctx); err != nil {
			return err
		}
		err = c.do(ctx, http.MethodGet, path, nil, token, out)
	}
	return err
}

// post performs an unauthenticated POST (auth endpoints only).
func (c *Client) post(ctx context.Context, path string, body []byte, token string, out any) error {
	return c.do(ctx, http.MethodPost, path, body, token, out)
}

var errUnauthorized = errors.New("unauthorized")

func (c *Client) do(ctx context.Context, method, path string, body []byte, token string, out any) error {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "bbq-mcp")
	if c.cfg.APIKey != "" {
		req.Header.Set("X-API-Key", c.cfg.APIKey)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return errUnauthorized
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%s returned %d", path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
