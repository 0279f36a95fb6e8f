// Package profile talks to the table server's HTTP collaborator endpoints:
// the viewer identity record and the read-only historical round summaries.
// Both are opaque collaborators; only their response shapes matter here.
package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/lllllan02/holdem/internal/deck"
)

// User is the viewer's identity record. The ID is the stable identity used
// to locate the viewer's seat in snapshots.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Round is one past-round summary from the records endpoint
type Round struct {
	RoundID        string      `json:"roundId"`
	StartTime      int64       `json:"startTime"`
	EndTime        int64       `json:"endTime"`
	DealerPos      int         `json:"dealerPos"`
	Pot            int         `json:"pot"`
	CommunityCards []deck.Card `json:"communityCards"`
	Winners        []Winner    `json:"winners"`
}

// Winner is one winning entry inside a past-round summary
type Winner struct {
	UserID    string      `json:"userId"`
	Name      string      `json:"name"`
	Position  int         `json:"position"`
	WinAmount int         `json:"winAmount"`
	HandRank  string      `json:"handRank"`
	HoleCards []deck.Card `json:"holeCards"`
}

type recordsResponse struct {
	Total   int     `json:"total"`
	Records []Round `json:"records"`
}

// Client fetches identity and record data over HTTP
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a profile client against the server base URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch retrieves the current identity record. Called once at startup; the
// record only changes through explicit updates.
func (c *Client) Fetch(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/user", &user); err != nil {
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	return &user, nil
}

// UpdateName changes the display name and returns the updated record
func (c *Client) UpdateName(ctx context.Context, name string) (*User, error) {
	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut,
		c.endpoint("/user/name"), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var user User
	if err := c.do(req, &user); err != nil {
		return nil, fmt.Errorf("update name: %w", err)
	}
	return &user, nil
}

// UpdateAvatar changes the avatar reference and returns the updated record
func (c *Client) UpdateAvatar(ctx context.Context, avatar string) (*User, error) {
	body, err := json.Marshal(map[string]string{"avatar": avatar})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut,
		c.endpoint("/user/avatar"), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var user User
	if err := c.do(req, &user); err != nil {
		return nil, fmt.Errorf("update avatar: %w", err)
	}
	return &user, nil
}

// Records retrieves past-round summaries, newest first. Zero values leave
// the window and the limit to the server defaults.
func (c *Client) Records(ctx context.Context, days, limit int) ([]Round, error) {
	query := url.Values{}
	if days > 0 {
		query.Set("days", fmt.Sprintf("%d", days))
	}
	if limit > 0 {
		query.Set("limit", fmt.Sprintf("%d", limit))
	}

	path := "/game/records"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp recordsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("fetch records: %w", err)
	}
	return resp.Records, nil
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + path
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
