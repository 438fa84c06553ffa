// Package etherscan is a client for the Etherscan-family explorer API:
// the V2 unified endpoint (any EVM chain through one key and a chainid
// parameter) plus the classic V1 module/action surface.
//
// Every operation returns a result value carrying Success plus either the
// payload or an error string with the inputs echoed back; nothing here is
// fatal to the caller.
package etherscan

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"
	"net/url"
	"time"

	"github.com/Mohsinsiddi/escan-mcp/internal/chain"
)

const (
	defaultBaseURL = "https://api.etherscan.io"
	defaultTimeout = 30 * time.Second

	v1Endpoint = "/api"
	v2Endpoint = "/v2/api"
)

// APIError is the single error kind for transport and remote failures.
// Underlying HTTP or JSON errors never reach callers directly.
type APIError struct {
	Message string
	Code    int
	ChainID string
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("etherscan API error (chain %s, code %d): %s", e.ChainID, e.Code, e.Message)
	}
	return fmt.Sprintf("etherscan API error (chain %s): %s", e.ChainID, e.Message)
}

func apiErr(chainID, format string, args ...interface{}) *APIError {
	return &APIError{Message: fmt.Sprintf(format, args...), ChainID: chainID}
}

// Client talks to the explorer API. It owns one long-lived HTTP client;
// acquire at startup with NewClient and release with Close.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	log     *slog.Logger
	nets    *chain.Registry
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (tests point it at httptest).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a Client. The API key is required.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("etherscan API key is required")
	}
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		log:     slog.Default(),
		nets:    chain.NewRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Close releases the outbound connection pool.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

func (c *Client) network(chainID string) string {
	return c.nets.Name(chainID)
}

// envelope covers both API response shapes: V1 status/message/result and
// V2 result/error. Result stays raw because a failed V1 call carries a
// plain string where a successful one carries an object or array.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// request issues an authenticated GET and normalizes the two envelope
// shapes into a single raw result or *APIError.
func (c *Client) request(ctx context.Context, chainID string, params url.Values, useV2 bool) (json.RawMessage, error) {
	endpoint := v1Endpoint
	if useV2 {
		endpoint = v2Endpoint
		if params.Get("chainid") == "" {
			params.Set("chainid", chainID)
		}
	}
	params.Set("apikey", c.apiKey)

	reqURL := c.baseURL + endpoint + "?" + params.Encode()
	c.log.Debug("explorer request",
		"chain", chainID,
		"module", params.Get("module"),
		"action", params.Get("action"),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apiErr(chainID, "building request: %v", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apiErr(chainID, "HTTP error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiErr(chainID, "HTTP error: unexpected status %s", resp.Status)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, apiErr(chainID, "invalid JSON response: %v", err)
	}

	// V2 shape: explicit error object, or a bare result with no status.
	if useV2 {
		if env.Error != nil {
			return nil, &APIError{Message: env.Error.Message, Code: env.Error.Code, ChainID: chainID}
		}
		if env.Status == "" && env.Result != nil {
			return env.Result, nil
		}
	}

	// V1 shape: status "1" means success; otherwise the result often
	// carries the real error string ("NOTOK" rides in message).
	if env.Status == "1" {
		return env.Result, nil
	}

	msg := env.Message
	if msg == "" {
		msg = "Unknown error"
	}
	var detail string
	if err := json.Unmarshal(env.Result, &detail); err == nil && detail != "" {
		msg = msg + ": " + detail
	}
	return nil, apiErr(chainID, "%s", msg)
}

// --- shared value helpers ---

var wei1eth = new(big.Float).SetFloat64(1e18)

// weiToEther formats a wei amount as a decimal ether string.
func weiToEther(wei *big.Int) string {
	f := new(big.Float).SetInt(wei)
	f.Quo(f, wei1eth)
	return f.Text('f', 18)
}

// parseQuantity parses an RPC quantity that may be hex or decimal.
func parseQuantity(s string) (*big.Int, bool) {
	if len(s) > 2 && s[:2] == "0x" {
		return new(big.Int).SetString(s[2:], 16)
	}
	return new(big.Int).SetString(s, 10)
}

// resultString unwraps a JSON string result.
func resultString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("unexpected result shape: %w", err)
	}
	return s, nil
}
