package driveaccess

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

const defaultUserAgent = "go-driveaccess"

// Config holds configuration for creating a Client. BaseURL is required;
// everything else has a usable default.
type Config struct {
	// BaseURL is the root URL of the access service, e.g.
	// "https://storage.example.com/api". Trailing slashes are trimmed.
	BaseURL string

	// Token is the bearer token sent in the Authorization header. Empty
	// means no Authorization header, for deployments that authenticate at
	// the transport below (mTLS, gateway session).
	Token string

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient. Timeouts belong here.
	HTTPClient *http.Client

	// Logger is used for structured request logging at verbosity 1.
	// Defaults to logr.Discard().
	Logger logr.Logger

	// UserAgent overrides the User-Agent header.
	UserAgent string
}

// Client is the default Transport: a JSON-over-HTTP client for the access
// service. It issues exactly one request per call, never retries, and
// caches nothing.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     logr.Logger
	userAgent  string
}

var _ Transport = (*Client)(nil)

// NewClient creates a Client from the given configuration.
func NewClient(config Config) (*Client, error) {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("driveaccess: BaseURL is required")
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("driveaccess: BaseURL must be an http(s) URL (got %q)", config.BaseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		baseURL:    baseURL,
		token:      config.Token,
		httpClient: httpClient,
		logger:     logger,
		userAgent:  userAgent,
	}, nil
}

// Get implements Transport.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post implements Transport.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Delete implements Transport.
func (c *Client) Delete(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, body)
}

// do executes one request against the access service. The path is relative
// to the base URL (e.g. "/drive/123/access"). On non-2xx responses it
// returns an *APIError parsed from the body; on network failure a transport
// error. Each request carries a generated X-Request-ID for server-side
// correlation.
func (c *Client) do(ctx context.Context, method, path string, requestBody any) (json.RawMessage, error) {
	url := c.baseURL + path

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, newTransportError("failed to encode request body", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, newTransportError("failed to create request", err)
	}

	requestID := uuid.NewString()
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", c.userAgent)
	request.Header.Set("X-Request-ID", requestID)
	if c.token != "" {
		request.Header.Set("Authorization", "Bearer "+c.token)
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	c.logger.V(1).Info("request", "method", method, "path", path, "request_id", requestID)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, newTransportError(fmt.Sprintf("%s %s failed", method, path), err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, newTransportError("failed to read response body", err)
	}

	c.logger.V(1).Info("response", "method", method, "path", path, "request_id", requestID, "status", response.StatusCode)

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, parseAPIError(response.StatusCode, body)
	}
	return body, nil
}
