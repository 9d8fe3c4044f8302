// Package portal is the Go client for the admin API: the HTTP gateway the
// portal frontend and the portalctl tool talk through, plus the trigger
// form binder and list renderer.
package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/portal360/admin-api/internal/domain"
	pkgdevice "github.com/portal360/admin-api/internal/pkg/device"
	"github.com/portal360/admin-api/internal/timing"
)

// APIError is a non-2xx response from the admin API. Message carries the
// server-supplied text when the body had one, otherwise a generic fallback.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// Unwrap lets callers match 401s with errors.Is(err, domain.ErrUnauthorized)
// and trigger a re-login.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return domain.ErrUnauthorized
	}
	return nil
}

// Client is the admin-API gateway. It attaches the bearer token and the
// per-browser device id to every request.
type Client struct {
	baseURL  string
	token    string
	deviceID string
	httpc    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:  baseURL,
		deviceID: pkgdevice.NewUUID(),
		httpc:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken installs the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

// SetDeviceID overrides the generated device id, e.g. with one persisted
// from a previous run.
func (c *Client) SetDeviceID(id string) { c.deviceID = id }

// LoginResult carries the tokens returned by a successful sign-in.
type LoginResult struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	User         *domain.User    `json:"user,omitempty"`
	Session      *domain.Session `json:"session,omitempty"`
}

// Login signs in with email and password and installs the returned bearer
// token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	req := domain.LoginRequest{Email: email, Password: password, DeviceUUID: c.deviceID}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/v1/sessions/login", req, &result); err != nil {
		return nil, err
	}
	c.token = result.AccessToken
	return &result, nil
}

// Refresh exchanges a refresh token for a new token pair and installs the
// new bearer token on the client.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	req := domain.RefreshRequest{RefreshToken: refreshToken}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/v1/sessions/refresh", req, &result); err != nil {
		return nil, err
	}
	c.token = result.AccessToken
	return &result, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/v1/sessions/logout", nil, nil)
}

// ListTriggers fetches every configured email trigger.
func (c *Client) ListTriggers(ctx context.Context) ([]domain.EmailTrigger, error) {
	var out []domain.EmailTrigger
	if err := c.do(ctx, http.MethodGet, "/v1/email-triggers/get-all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTrigger(ctx context.Context, input domain.EmailTriggerInput) (*domain.EmailTrigger, error) {
	var out domain.EmailTrigger
	if err := c.do(ctx, http.MethodPost, "/v1/email-triggers/create", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTrigger(ctx context.Context, triggerID string, input domain.EmailTriggerInput) (*domain.EmailTrigger, error) {
	var out domain.EmailTrigger
	if err := c.do(ctx, http.MethodPut, "/v1/email-triggers/"+triggerID+"/update", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTrigger(ctx context.Context, triggerID string) error {
	return c.do(ctx, http.MethodDelete, "/v1/email-triggers/"+triggerID+"/delete", nil, nil)
}

func (c *Client) ToggleTrigger(ctx context.Context, triggerID string, active bool) (*domain.EmailTrigger, error) {
	var out domain.EmailTrigger
	req := domain.ToggleRequest{Active: active}
	if err := c.do(ctx, http.MethodPut, "/v1/email-triggers/"+triggerID+"/toggle", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendTestEmail asks the API to deliver the trigger's template to a single
// address for review.
func (c *Client) SendTestEmail(ctx context.Context, triggerID, to string) error {
	req := domain.TriggerTestSendRequest{To: to}
	return c.do(ctx, http.MethodPost, "/v1/email-triggers/"+triggerID+"/test", req, nil)
}

// ListEvents fetches the event catalog that triggers reference.
func (c *Client) ListEvents(ctx context.Context) ([]domain.Event, error) {
	var out []domain.Event
	if err := c.do(ctx, http.MethodGet, "/v1/events", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TimingOptions fetches the fixed timing menu with display labels.
func (c *Client) TimingOptions(ctx context.Context) ([]timing.Option, error) {
	var out []timing.Option
	if err := c.do(ctx, http.MethodGet, "/v1/email-triggers/timing-options", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body *bytes.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(pkgdevice.Header, c.deviceID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// errorFromResponse extracts the server message from an error body. Both
// envelope shapes are accepted; an unreadable body falls back to a generic
// message so the caller always gets something presentable.
func errorFromResponse(resp *http.Response) error {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := fmt.Sprintf("request failed with status %d", resp.StatusCode)
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		if envelope.Message != "" {
			msg = envelope.Message
		} else if envelope.Error != "" {
			msg = envelope.Error
		}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
