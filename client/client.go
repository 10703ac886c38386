// Package client implements a typed client for the PayPal Orders v2 and
// Webhooks v1 REST APIs. Each operation is a single request/response round
// trip: a 2xx response decodes into the documented success type and anything
// else decodes into the provider's structured error body. Retries, rate
// limiting and timeout policy are left to the caller and the underlying
// http.Client.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/paymentsapi/paypal-client-go/models"
)

const (
	// APIBaseSandBox points to the sandbox (for testing) version of the API
	APIBaseSandBox = "https://api.sandbox.paypal.com"

	// APIBaseLive points to the live (for production) version of the API
	APIBaseLive = "https://api.paypal.com"
)

// validate checks decoded response bodies against the required fields of the
// documented schemas, so a missing field surfaces as a decode error rather
// than a zero value.
var validate = validator.New()

// Client is a PayPal REST API client. It is safe for concurrent use; the
// only shared state is the access token, which is guarded by a mutex.
type Client struct {
	HTTPClient *http.Client
	APIBase    string
	ClientID   string
	Secret     string

	mu    sync.Mutex
	token *models.TokenResponse
}

// HeaderParams are the optional per-request headers PayPal accepts: content
// negotiation, idempotency (PayPal-Request-Id) and partner attribution. They
// are merged with the library defaults before each call.
type HeaderParams struct {
	ClientMetadataID     string
	PartnerAttributionID string
	RequestID            string
	Prefer               string
	ContentType          string
}

// NewClient returns a client for the given credentials and API base URL. Use
// APIBaseSandBox or APIBaseLive, or a caller-supplied endpoint.
func NewClient(clientID, secret, apiBase string) (*Client, error) {
	if clientID == "" || secret == "" || apiBase == "" {
		return nil, errors.New("clientID, secret and apiBase are required to create a client")
	}

	return &Client{
		HTTPClient: &http.Client{},
		APIBase:    strings.TrimSuffix(apiBase, "/"),
		ClientID:   clientID,
		Secret:     secret,
	}, nil
}

// APIBaseFor maps an environment name from config to an API base URL,
// returning the empty string for anything unrecognised.
func APIBaseFor(env string) string {
	switch env {
	case "live":
		return APIBaseLive
	case "test":
		return APIBaseSandBox
	default:
		return ""
	}
}

// GetAccessToken requests an OAuth access token using the client credentials
// and stores it on the client for subsequent calls.
func (c *Client) GetAccessToken(ctx context.Context) (*models.TokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIBase+"/v1/oauth2/token",
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return nil, fmt.Errorf("error generating request for PayPal access token: [%s]", err)
	}

	req.SetBasicAuth(c.ClientID, c.Secret)
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	token := &models.TokenResponse{}
	if err = c.do(req, token); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	return token, nil
}

// SetAccessToken sets a token obtained out of band, for callers managing
// their own credential flow.
func (c *Client) SetAccessToken(token *models.TokenResponse) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// setupHeaders merges the caller-supplied header parameters with the library
// defaults. Callers may override the content type; the bearer token and the
// accept header are always set by the library.
func (c *Client) setupHeaders(req *http.Request, params HeaderParams) {
	req.Header.Add("Accept", "application/json")

	if params.ContentType != "" {
		req.Header.Add("Content-Type", params.ContentType)
	} else {
		req.Header.Add("Content-Type", "application/json")
	}

	c.mu.Lock()
	if c.token != nil {
		req.Header.Add("Authorization", "Bearer "+c.token.AccessToken)
	}
	c.mu.Unlock()

	if params.ClientMetadataID != "" {
		req.Header.Add("PayPal-Client-Metadata-Id", params.ClientMetadataID)
	}
	if params.PartnerAttributionID != "" {
		req.Header.Add("PayPal-Partner-Attribution-Id", params.PartnerAttributionID)
	}
	if params.RequestID != "" {
		req.Header.Add("PayPal-Request-Id", params.RequestID)
	}
	if params.Prefer != "" {
		req.Header.Add("Prefer", params.Prefer)
	}
}

// do sends the request and classifies the response. A 2xx body is decoded
// into out (when out is non-nil) and validated against the schema's required
// fields; any other status is decoded as the provider's error body and
// returned as a *models.ErrorResponse. Everything else is a transport
// failure.
func (c *Client) do(req *http.Request, out interface{}) error {
	log.Trace("sending request to PayPal", log.Data{"method": req.Method, "path": req.URL.Path})

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request to PayPal: [%w]", err)
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response from PayPal: [%w]", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}

	if err = json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("error reading response from PayPal: [%s]", err)
	}
	if err = validate.Struct(out); err != nil {
		return fmt.Errorf("response from PayPal is missing required fields: [%s]", err)
	}

	return nil
}

// decodeAPIError decodes a non-2xx body into the provider's error schema. A
// body that does not match the schema is itself a failure and is surfaced
// rather than swallowed.
func decodeAPIError(status int, body []byte) error {
	apiErr := &models.ErrorResponse{}
	if err := json.Unmarshal(body, apiErr); err != nil {
		return fmt.Errorf("error status [%v] back from PayPal with undecodable error body: [%s]", status, err)
	}
	if err := validate.Struct(apiErr); err != nil {
		return fmt.Errorf("error status [%v] back from PayPal with unexpected error body: [%s]", status, err)
	}

	apiErr.StatusCode = status
	log.Debug(fmt.Sprintf("paypal api error response status: %d", status), log.Data{"name": apiErr.Name, "debug_id": apiErr.DebugID})
	return apiErr
}
