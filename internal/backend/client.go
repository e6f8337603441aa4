package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mathquest/app/internal/models"
)

// Client talks to the external auth, profile and ranking service.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	logger  *zap.Logger
	now     func() time.Time
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func NewClient(baseURL string, tokens TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ── Auth ────────────────────────────────────────────────

func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	return c.authenticate(ctx, "/auth/login", creds, "Falha ao fazer login")
}

func (c *Client) Register(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	return c.authenticate(ctx, "/auth/register", creds, "Falha ao criar conta")
}

func (c *Client) authenticate(ctx context.Context, path string, creds models.Credentials, fallback string) (*models.AuthResponse, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("encode credentials: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, path, bytes.NewReader(body), "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{Op: "POST " + path, Status: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fallback
		var e models.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&e) == nil && e.Message() != "" {
			msg = e.Message()
		}
		return nil, &AuthenticationError{Status: resp.StatusCode, Message: msg}
	}

	var auth models.AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return nil, fmt.Errorf("decode auth response: %w", err)
	}
	user := auth.User
	if err := c.tokens.Save(StoredCredentials{AccessToken: auth.AccessToken, RefreshToken: auth.RefreshToken, User: &user}); err != nil {
		return nil, fmt.Errorf("store credentials: %w", err)
	}
	c.logger.Info("authenticated", zap.String("path", path), zap.Int64("user_id", auth.User.ID))
	return &auth, nil
}

func (c *Client) Logout() error {
	return c.tokens.Clear()
}

// HasCredential reports whether an unexpired access token is stored.
func (c *Client) HasCredential() bool {
	creds, ok, err := c.tokens.Load()
	if err != nil || !ok || creds.AccessToken == "" {
		return false
	}
	return !TokenExpired(creds.AccessToken, c.now())
}

// StoredUser returns the user saved with the last successful login.
func (c *Client) StoredUser() (*models.UserData, bool) {
	creds, ok, err := c.tokens.Load()
	if err != nil || !ok || creds.User == nil {
		return nil, false
	}
	return creds.User, true
}

// ── Profile & ranking ───────────────────────────────────

func (c *Client) CurrentUser(ctx context.Context) (*models.UserData, error) {
	var u models.UserData
	if err := c.getJSON(ctx, "/users/me", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) CurrentUserStats(ctx context.Context) (*models.UserStats, error) {
	var s models.UserStats
	if err := c.getJSON(ctx, "/users/me/stats", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

type rankingWire struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Name     string `json:"name"`
	WeeklyXP int    `json:"weekly_xp"`
	XP       int    `json:"xp"`
	Level    int    `json:"level"`
}

// WeeklyRanking accepts either a bare array or an object wrapping the list in
// "entries" or "ranking".
func (c *Client) WeeklyRanking(ctx context.Context, limit int) ([]models.RankingEntry, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var raw json.RawMessage
	if err := c.getJSON(ctx, "/rankings/weekly?"+q.Encode(), &raw); err != nil {
		return nil, err
	}

	var rows []rankingWire
	if err := json.Unmarshal(raw, &rows); err != nil {
		var wrapped struct {
			Entries []rankingWire `json:"entries"`
			Ranking []rankingWire `json:"ranking"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, fmt.Errorf("decode weekly ranking: %w", err)
		}
		rows = wrapped.Entries
		if rows == nil {
			rows = wrapped.Ranking
		}
	}

	out := make([]models.RankingEntry, 0, len(rows))
	for _, r := range rows {
		name := r.Username
		if name == "" {
			name = r.Name
		}
		weekly := r.WeeklyXP
		if weekly == 0 {
			weekly = r.XP
		}
		out = append(out, models.RankingEntry{Rank: r.Rank, Username: name, WeeklyXP: weekly, Level: r.Level})
	}
	return out, nil
}

// ── Transport ───────────────────────────────────────────

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	creds, ok, err := c.tokens.Load()
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}
	if !ok || creds.AccessToken == "" {
		return ErrUnauthorized
	}

	resp, err := c.do(ctx, http.MethodGet, path, nil, creds.AccessToken)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.logger.Warn("credential rejected, clearing", zap.String("path", path))
		if err := c.tokens.Clear(); err != nil {
			c.logger.Error("clear credentials", zap.Error(err))
		}
		return ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Op: "GET " + path, Status: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, ctxErr
		}
		return nil, &NetworkError{Op: method + " " + path, Err: err}
	}
	return resp, nil
}
