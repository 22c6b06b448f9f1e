package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "http://localhost:5000/api"

// Client wraps the Recolhe+ HTTP API. It attaches the bearer token to
// every protected call and persists the session through its Store.
type Client struct {
	baseURL string
	http    *http.Client
	store   Store
	token   string
}

type Option func(*Client)

func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(url, "/") }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func New(store Store, opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		store:   store,
	}
	for _, opt := range opts {
		opt(c)
	}
	if token, _, err := store.LoadSession(); err == nil {
		c.token = token
	}
	return c
}

// --- wire types ---

type authBody struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
	Language string `json:"language,omitempty"`
}

type authResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// wirePickup is the backend's snake_case pickup record.
type wirePickup struct {
	ID          string      `json:"id"`
	Status      string      `json:"status"`
	ScheduledAt string      `json:"scheduled_at"`
	Items       []WasteItem `json:"items"`
	Location    string      `json:"location"`
	Notes       string      `json:"notes"`
}

func mapPickup(p wirePickup) PickupRequest {
	return PickupRequest{
		ID:          p.ID,
		Status:      p.Status,
		ScheduledAt: p.ScheduledAt,
		Items:       p.Items,
		Location:    p.Location,
		Notes:       p.Notes,
	}
}

type createPickupBody struct {
	Items       []WasteItem `json:"items"`
	ScheduledAt string      `json:"scheduledAt"`
	Location    string      `json:"location"`
	Notes       string      `json:"notes,omitempty"`
}

type chatBody struct {
	History  []ChatMessage `json:"history"`
	Message  string        `json:"message"`
	Language string        `json:"language"`
}

type chatResult struct {
	Text string `json:"text"`
}

type errorBody struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// --- auth ---

// Login authenticates and persists the session on success.
func (c *Client) Login(email, password string) (User, string, error) {
	var res authResult
	err := c.post("/auth/login", authBody{Email: email, Password: password}, &res)
	if err != nil {
		return User{}, "", err
	}
	return c.adopt(res)
}

// Register creates an account and persists the session on success.
func (c *Client) Register(name, email, password, role, language string) (User, string, error) {
	var res authResult
	err := c.post("/auth/register", authBody{
		Name: name, Email: email, Password: password, Role: role, Language: language,
	}, &res)
	if err != nil {
		return User{}, "", err
	}
	return c.adopt(res)
}

func (c *Client) adopt(res authResult) (User, string, error) {
	if res.Token != "" {
		c.token = res.Token
		if err := c.store.SaveSession(res.Token, res.User); err != nil {
			return User{}, "", err
		}
	}
	return res.User, res.Token, nil
}

// AdoptSession persists an externally built session (used by the demo
// fallback, which must write the same keys a real login writes).
func (c *Client) AdoptSession(token string, user User) error {
	c.token = token
	return c.store.SaveSession(token, user)
}

// CurrentUser returns the persisted user record, if any.
func (c *Client) CurrentUser() *User {
	_, user, err := c.store.LoadSession()
	if err != nil {
		return nil
	}
	return user
}

// Logout clears the persisted token and user record.
func (c *Client) Logout() {
	c.token = ""
	_ = c.store.Clear()
}

// --- pickups ---

// CreatePickup submits a pickup draft and returns the server record
// mapped to client naming.
func (c *Client) CreatePickup(items []WasteItem, scheduledAt, location, notes string) (PickupRequest, error) {
	var res wirePickup
	err := c.post("/pickups", createPickupBody{
		Items: items, ScheduledAt: scheduledAt, Location: location, Notes: notes,
	}, &res)
	if err != nil {
		return PickupRequest{}, err
	}
	return mapPickup(res), nil
}

// ListPickups fetches the caller's pickups, newest first.
func (c *Client) ListPickups() ([]PickupRequest, error) {
	var res []wirePickup
	if err := c.get("/pickups", &res); err != nil {
		return nil, err
	}
	out := make([]PickupRequest, 0, len(res))
	for _, p := range res {
		out = append(out, mapPickup(p))
	}
	return out, nil
}

// --- chat ---

// Chat sends the transcript plus a new message to the backend AI proxy.
func (c *Client) Chat(history []ChatMessage, message, language string) (string, error) {
	var res chatResult
	err := c.post("/chat", chatBody{History: history, Message: message, Language: language}, &res)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// --- transport ---

func (c *Client) post(path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) get(path string, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil && eb.Message != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: eb.Message}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
