package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/xy-planning-network/waypoint"
)

const (
	healthPath = "/auth/v1/health"
	userPath   = "/auth/v1/user"

	defaultTimeout = 5 * time.Second

	// maxErrBody caps how much of an error response is read into an error.
	maxErrBody = 512
)

// A Client calls the identity provider's auth API.
type Client struct {
	anonKey string
	baseURL *url.URL
	http    *http.Client
}

// An Opt configures a *Client.
type Opt func(*Client)

// WithHTTPClient sets the *http.Client requests are made with.
func WithHTTPClient(hc *http.Client) Opt {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New constructs a *Client for the project at baseURL, authenticating as anonKey.
//
// If either is empty or baseURL does not parse, New returns waypoint.ErrBadConfig.
func New(baseURL, anonKey string, opts ...Opt) (*Client, error) {
	if baseURL == "" || anonKey == "" {
		return nil, fmt.Errorf("%w: URL and anon key required", waypoint.ErrBadConfig)
	}

	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid URL %q", waypoint.ErrBadConfig, baseURL)
	}

	c := &Client{
		anonKey: anonKey,
		baseURL: u,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// A RemoteUser is the identity provider's record of a user.
type RemoteUser struct {
	ID    string `json:"id"`
	Aud   string `json:"aud"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

// Health asserts the identity provider's auth API is reachable and healthy.
func (c *Client) Health(ctx context.Context) error {
	res, err := c.do(ctx, healthPath, "")
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrUnavailable, readErr(res))
	}

	return nil
}

// User retrieves the user the access token was issued to.
//
// If the identity provider rejects the token, User returns ErrUnauthorized.
func (c *Client) User(ctx context.Context, accessToken string) (RemoteUser, error) {
	if accessToken == "" {
		return RemoteUser{}, fmt.Errorf("%w: no access token", waypoint.ErrMissingData)
	}

	res, err := c.do(ctx, userPath, accessToken)
	if err != nil {
		return RemoteUser{}, err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized, res.StatusCode == http.StatusForbidden:
		return RemoteUser{}, fmt.Errorf("%w: %s", ErrUnauthorized, readErr(res))
	case res.StatusCode != http.StatusOK:
		return RemoteUser{}, fmt.Errorf("%w: %s", ErrUnavailable, readErr(res))
	}

	var u RemoteUser
	if err := json.NewDecoder(res.Body).Decode(&u); err != nil {
		return RemoteUser{}, fmt.Errorf("%w: can't decode user: %s", waypoint.ErrUnexpected, err)
	}

	return u, nil
}

// do sends a GET request to path, authenticating as the user of token when it is not empty.
func (c *Client) do(ctx context.Context, path, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.JoinPath(path).String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", waypoint.ErrUnexpected, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Apikey", c.anonKey)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}

	return res, nil
}

func readErr(res *http.Response) string {
	b, _ := io.ReadAll(io.LimitReader(res.Body, maxErrBody))
	return fmt.Sprintf("%d %s", res.StatusCode, strings.TrimSpace(string(b)))
}
