// Package apiclient provides a REST client for the gate-keeper server.
//
// The client keeps the session cookie between calls, so a successful Login
// authenticates every subsequent request made through the same Client.
package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/go-resty/resty/v2"
)

// Client talks to one gate-keeper server. It is safe for concurrent use.
type Client struct {
	http   *resty.Client
	logger *logger.Logger
}

// RegisteredUser is the server's answer to a registration request.
type RegisteredUser struct {
	Login string `json:"login"`
	State string `json:"state"`

	// ActivationKey is set only while activation-by-mail is enabled. The
	// server returns it exactly once.
	ActivationKey string `json:"activation_key,omitempty"`
}

// LoginResult is the server's answer to a successful login.
type LoginResult struct {
	LoggedIn bool  `json:"logged_in"`
	UserID   int64 `json:"user_id"`
}

// SessionInfo describes the trust state of the current session. Flags are
// one-shot: reading them consumes them server-side.
type SessionInfo struct {
	LoggedIn bool     `json:"logged_in"`
	UserID   int64    `json:"user_id,omitempty"`
	Flags    []string `json:"flags,omitempty"`
}

type serverVersion struct {
	Version string `json:"version"`
}

// New constructs a Client for the server at address. The address may omit
// the scheme, in which case http is assumed.
func New(address string, timeout time.Duration, logger *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &Client{http: httpClient, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, login, password string) (RegisteredUser, error) {
	var user RegisteredUser

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"login": login, "password": password}).
		SetResult(&user).
		Post("/api/user/register")
	if err != nil {
		return RegisteredUser{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return RegisteredUser{}, err
	}

	return user, nil
}

// Login authenticates the session this client holds.
func (c *Client) Login(ctx context.Context, login, password string, rememberMe bool) (LoginResult, error) {
	var result LoginResult

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"login": login, "password": password, "remember_me": rememberMe}).
		SetResult(&result).
		Post("/api/user/login")
	if err != nil {
		return LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return LoginResult{}, err
	}

	return result, nil
}

// Logout drops the authenticated identity of the session.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Post("/api/user/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// Session reports the current session state and consumes any raised flags.
func (c *Client) Session(ctx context.Context) (SessionInfo, error) {
	var info SessionInfo

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/user/session")
	if err != nil {
		return SessionInfo{}, fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return SessionInfo{}, err
	}

	return info, nil
}

// Activate redeems an activation key.
func (c *Client) Activate(ctx context.Context, key string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", key).
		Get("/api/user/activate")
	if err != nil {
		return fmt.Errorf("activate request: %w", err)
	}

	return mapHTTPError(resp)
}

// DenyActivation redeems an activation key to delete the pending account it
// belongs to.
func (c *Client) DenyActivation(ctx context.Context, key string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", key).
		Post("/api/user/activate/deny")
	if err != nil {
		return fmt.Errorf("deny activation request: %w", err)
	}

	return mapHTTPError(resp)
}

// ChangePassword sets a new password for the authenticated account.
func (c *Client) ChangePassword(ctx context.Context, newPassword string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"new_password": newPassword}).
		Post("/api/user/password")
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteAccount removes the authenticated account and ends the session.
func (c *Client) DeleteAccount(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/api/user/")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version returns the server's version string.
func (c *Client) Version(ctx context.Context) (string, error) {
	var version serverVersion

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return version.Version, nil
}
