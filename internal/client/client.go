package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/mauv0809/handball-stats/internal/stats"
)

// APIClient is an HTTP client for the handball stats server.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
	// DryRun asks the server to skip outbound notifications.
	DryRun bool
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Ensure APIClient implements the HandballClient interface.
var _ HandballClient = (*APIClient)(nil)

func (c *APIClient) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *APIClient) ListPlayers(ctx context.Context) ([]handball.Player, error) {
	var players []handball.Player
	if err := c.do(ctx, http.MethodGet, "/players", nil, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (c *APIClient) AddPlayer(ctx context.Context, req AddPlayerRequest) (*handball.Player, error) {
	var player handball.Player
	if err := c.do(ctx, http.MethodPost, "/players", req, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (c *APIClient) ListMatches(ctx context.Context) ([]handball.Match, error) {
	var all []handball.Match
	if err := c.do(ctx, http.MethodGet, "/matches", nil, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (c *APIClient) CreateMatch(ctx context.Context, req CreateMatchRequest) (*handball.Match, error) {
	var resp matchEnvelope
	if err := c.do(ctx, http.MethodPost, "/matches", req, &resp); err != nil {
		return nil, err
	}
	return resp.Match, nil
}

func (c *APIClient) GetMatch(ctx context.Context, id int64) (*handball.Match, error) {
	var resp matchEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/matches/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Match, nil
}

func (c *APIClient) MatchSummary(ctx context.Context, id int64) (*MatchSummary, error) {
	var summary MatchSummary
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/matches/%d/summary", id), nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// UpdateMatchStats submits the final counters of a match.
func (c *APIClient) UpdateMatchStats(ctx context.Context, matchID int64, update handball.StatsUpdate) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/matches/%d", matchID), update, nil)
}

func (c *APIClient) PlayerStats(ctx context.Context, sortBy string) ([]stats.Rollup, error) {
	path := "/stats/players"
	if sortBy != "" {
		path += "?sort=" + url.QueryEscape(sortBy)
	}
	var rollups []stats.Rollup
	if err := c.do(ctx, http.MethodGet, path, nil, &rollups); err != nil {
		return nil, err
	}
	return rollups, nil
}

func (c *APIClient) MatchHistory(ctx context.Context) ([]stats.MatchRow, error) {
	var rows []stats.MatchRow
	if err := c.do(ctx, http.MethodGet, "/stats/matches", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *APIClient) Summary(ctx context.Context) (*stats.Summary, error) {
	var summary stats.Summary
	if err := c.do(ctx, http.MethodGet, "/stats/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *APIClient) BestTeam(ctx context.Context, criterion string) (*BestTeam, error) {
	var team BestTeam
	if err := c.do(ctx, http.MethodGet, "/stats/best-team?criterion="+url.QueryEscape(criterion), nil, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *APIClient) Compare(ctx context.Context, player1, player2 int64) (*stats.Comparison, error) {
	q := url.Values{}
	q.Set("player1", strconv.FormatInt(player1, 10))
	q.Set("player2", strconv.FormatInt(player2, 10))
	var cmp stats.Comparison
	if err := c.do(ctx, http.MethodGet, "/stats/compare?"+q.Encode(), nil, &cmp); err != nil {
		return nil, err
	}
	return &cmp, nil
}

// SendMassEmail returns the server's report even when the send failed, along
// with an *APIError.
func (c *APIClient) SendMassEmail(ctx context.Context, req MassEmailRequest) (*MassEmailResult, error) {
	var result MassEmailResult
	err := c.do(ctx, http.MethodPost, "/mass-email", req, &result)
	return &result, err
}

func (c *APIClient) Theme(ctx context.Context) (handball.Theme, error) {
	var body themeBody
	if err := c.do(ctx, http.MethodGet, "/preferences/theme", nil, &body); err != nil {
		return "", err
	}
	return body.Theme, nil
}

func (c *APIClient) SetTheme(ctx context.Context, theme handball.Theme) error {
	return c.do(ctx, http.MethodPut, "/preferences/theme", themeBody{Theme: theme}, nil)
}

// do sends in as JSON and decodes the response into out. Non-2xx responses
// become an *APIError; when out is set the error body is decoded into it too.
func (c *APIClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if c.DryRun {
		q := req.URL.Query()
		q.Set("dry_run", "true")
		req.URL.RawQuery = q.Encode()
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	log.Debug("Requesting handball API", "method", method, "url", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug("Received non-OK HTTP status from handball API", "status", resp.StatusCode, "body", string(raw))
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
		if out != nil {
			_ = json.Unmarshal(raw, out)
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func errorMessage(raw []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(raw))
}
