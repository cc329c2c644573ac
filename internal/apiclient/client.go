// Package apiclient is a typed client for the Nexus Connect HTTP API. A single
// Client carries the session credential and attaches it to every outgoing
// request once set.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Hop-Syder/nexus-connect-t4/internal/models"
)

// APIError is a non-2xx backend answer, carrying the detail message the
// backend supplied.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
}

// Client talks to one backend deployment.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// New creates a client for the given base URL (e.g. https://api.example.com).
// The /api prefix is appended per request.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken attaches a session credential to all subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the session credential.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the current session credential, if any.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + "/api" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Detail: decodeDetail(resp)}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// decodeDetail extracts the backend's error message from a failure body.
func decodeDetail(resp *http.Response) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Detail != "" {
		return payload.Detail
	}
	return payload.Message
}

// ExchangeFirebaseToken trades a provider ID token for a session credential
// and user record.
func (c *Client) ExchangeFirebaseToken(ctx context.Context, idToken string) (*models.TokenResponse, error) {
	var out models.TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/firebase", nil, map[string]string{"idToken": idToken}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Me resolves the current user from the stored session credential.
func (c *Client) Me(ctx context.Context) (*models.UserResponse, error) {
	var out models.UserResponse
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListQuery are the directory list parameters. Zero values are omitted from
// the request.
type ListQuery struct {
	Search      string
	Location    string
	City        string
	ProfileType string
	MinRating   float64
	Limit       int
}

// Values encodes the query the way the directory sends it: only populated
// filters, and always an explicit limit.
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Location != "" {
		v.Set("location", q.Location)
	}
	if q.City != "" {
		v.Set("city", q.City)
	}
	if q.ProfileType != "" {
		v.Set("profileType", q.ProfileType)
	}
	if q.MinRating > 0 {
		v.Set("minRating", strconv.FormatFloat(q.MinRating, 'f', -1, 64))
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 50
	}
	v.Set("limit", strconv.Itoa(limit))
	return v
}

// ListEntrepreneurs runs one directory query.
func (c *Client) ListEntrepreneurs(ctx context.Context, q ListQuery) ([]models.EntrepreneurPublic, error) {
	var out []models.EntrepreneurPublic
	if err := c.do(ctx, http.MethodGet, "/entrepreneurs", q.Values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RevealContact fetches the contact fields of exactly one listing.
func (c *Client) RevealContact(ctx context.Context, id string) (*models.ContactInfo, error) {
	var out models.ContactInfo
	if err := c.do(ctx, http.MethodGet, "/entrepreneurs/"+url.PathEscape(id)+"/contact", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateEntrepreneur submits a completed profile draft.
func (c *Client) CreateEntrepreneur(ctx context.Context, draft *models.EntrepreneurCreate) (*models.Entrepreneur, error) {
	var out models.Entrepreneur
	if err := c.do(ctx, http.MethodPost, "/entrepreneurs", nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyProfile fetches the current user's published profile.
func (c *Client) MyProfile(ctx context.Context) (*models.Entrepreneur, error) {
	var out models.Entrepreneur
	if err := c.do(ctx, http.MethodGet, "/entrepreneurs/user/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats fetches the landing-page counters.
func (c *Client) Stats(ctx context.Context) (*models.Stats, error) {
	var out models.Stats
	if err := c.do(ctx, http.MethodGet, "/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ContactMessage is a general inquiry for the contact form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContact sends a general inquiry.
func (c *Client) SubmitContact(ctx context.Context, msg ContactMessage) error {
	return c.do(ctx, http.MethodPost, "/contact", nil, msg, nil)
}
