package nutrition

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseUrl = "https://trackapi.nutritionix.com/v2"

// ErrNotConfigured is returned before any outbound call when the provider
// credentials are absent.
var ErrNotConfigured = errors.New("nutrition service not configured")

// UpstreamError reports that the provider answered with an error status.
// The status is relayed to the caller; the provider's body is not.
type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("nutritionix returned status %d", e.Status)
}

// GatewayError reports that the provider could not be reached or its
// response could not be decoded.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return "nutritionix unreachable: " + e.Err.Error()
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Client calls the Nutritionix API. The natural-language parse is heavier
// than the instant lookup, so the two carry distinct timeouts.
type Client struct {
	BaseUrl string
	AppId   string
	AppKey  string

	natural *http.Client
	instant *http.Client
}

func NewClient(appId string, appKey string) *Client {
	return &Client{
		BaseUrl: DefaultBaseUrl,
		AppId:   appId,
		AppKey:  appKey,
		natural: &http.Client{Timeout: 10 * time.Second},
		instant: &http.Client{Timeout: 8 * time.Second},
	}
}

func (c *Client) Configured() bool {
	return c.AppId != "" && c.AppKey != ""
}

// Natural forwards a payload to /natural/nutrients and returns the decoded
// provider response.
func (c *Client) Natural(payload interface{}) (map[string]interface{}, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &GatewayError{Err: err}
	}
	req, err := http.NewRequest(http.MethodPost, c.BaseUrl+"/natural/nutrients", bytes.NewReader(body))
	if err != nil {
		return nil, &GatewayError{Err: err}
	}
	c.setHeaders(req)
	return c.do(c.natural, req)
}

// Instant forwards a search term to /search/instant and returns the decoded
// provider response.
func (c *Client) Instant(query string) (map[string]interface{}, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	params := url.Values{}
	params.Set("query", query)
	req, err := http.NewRequest(http.MethodGet, c.BaseUrl+"/search/instant?"+params.Encode(), nil)
	if err != nil {
		return nil, &GatewayError{Err: err}
	}
	c.setHeaders(req)
	return c.do(c.instant, req)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("x-app-id", c.AppId)
	req.Header.Set("x-app-key", c.AppKey)
	req.Header.Set("Content-Type", "application/json")
}

func (c *Client) do(client *http.Client, req *http.Request) (map[string]interface{}, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, &GatewayError{Err: err}
	}
	defer resp.Body.Close()
	var data map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, &GatewayError{Err: err}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &UpstreamError{Status: resp.StatusCode}
	}
	return data, nil
}
