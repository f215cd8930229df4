// Package api is the REST client used by the CLI to talk to the taskboard
// server. It keeps the current token pair in memory and translates HTTP
// error responses into the shared error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mkalvins/taskboard/internal/common"
)

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Due       time.Time `json:"due"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Due       time.Time `json:"due"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TaskUpdate is a partial update; nil fields are left unchanged.
type TaskUpdate struct {
	Title  *string    `json:"title,omitempty"`
	Status *string    `json:"status,omitempty"`
	Due    *time.Time `json:"due,omitempty"`
}

// ProjectUpdate is a partial update; nil fields are left unchanged.
type ProjectUpdate struct {
	Name   *string    `json:"name,omitempty"`
	Status *string    `json:"status,omitempty"`
	Due    *time.Time `json:"due,omitempty"`
}

type authResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Client struct {
	baseURL      string
	http         *http.Client
	token        string
	refreshToken string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// IsAuthenticated reports whether the client currently holds an access token.
func (c *Client) IsAuthenticated() bool {
	return c.token != ""
}

// Register creates an account and stores the returned token pair.
func (c *Client) Register(ctx context.Context, username string, password []byte) (*User, error) {
	return c.authenticate(ctx, "/auth/register", username, password)
}

// Login authenticates and stores the returned token pair.
func (c *Client) Login(ctx context.Context, username string, password []byte) (*User, error) {
	return c.authenticate(ctx, "/auth/login", username, password)
}

func (c *Client) authenticate(ctx context.Context, path, username string, password []byte) (*User, error) {
	body := map[string]string{"username": username, "password": string(password)}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}

	c.token = resp.Token
	c.refreshToken = resp.RefreshToken
	return &resp.User, nil
}

// Refresh exchanges the stored refresh token for a fresh pair.
func (c *Client) Refresh(ctx context.Context) error {
	if c.refreshToken == "" {
		return common.ErrInvalidToken
	}

	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/auth/refresh", map[string]string{"refresh_token": c.refreshToken}, &resp)
	if err != nil {
		return err
	}

	c.token = resp.Token
	c.refreshToken = resp.RefreshToken
	return nil
}

// Logout revokes the stored refresh token on the server and clears the
// in-memory pair. Safe to call when not logged in.
func (c *Client) Logout(ctx context.Context) error {
	if c.refreshToken != "" {
		if err := c.do(ctx, http.MethodPost, "/auth/logout", map[string]string{"refresh_token": c.refreshToken}, nil); err != nil {
			return err
		}
	}
	c.token = ""
	c.refreshToken = ""
	return nil
}

// Me returns the profile of the authenticated user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/user/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, title, status string, due time.Time) (*Task, error) {
	body := map[string]any{"title": title, "due": due}
	// an omitted status lets the server default it to Pending
	if status != "" {
		body["status"] = status
	}

	var task Task
	if err := c.do(ctx, http.MethodPost, "/api/tasks", body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, update TaskUpdate) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+id, update, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, nil)
}

func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) CreateProject(ctx context.Context, name, status string, due time.Time) (*Project, error) {
	body := map[string]any{"name": name, "due": due}
	if status != "" {
		body["status"] = status
	}

	var project Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", body, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, update ProjectUpdate) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodPut, "/api/projects/"+id, update, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/projects/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.toError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// toError converts an error response to the shared taxonomy so callers can
// match with errors.Is. The server's message is attached for display.
func (c *Client) toError(resp *http.Response) error {
	var er errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&er)

	var sentinel error
	switch resp.StatusCode {
	case http.StatusBadRequest:
		sentinel = common.ErrorValidation
	case http.StatusUnauthorized:
		sentinel = common.ErrorUnauthorized
	case http.StatusForbidden:
		sentinel = common.ErrMissingCredentials
	case http.StatusNotFound:
		sentinel = common.ErrorNotFound
	case http.StatusConflict:
		sentinel = common.ErrorAlreadyExists
	default:
		sentinel = common.ErrorInternal
	}

	if er.Error != "" && er.Error != sentinel.Error() {
		return fmt.Errorf("%s: %w", er.Error, sentinel)
	}
	return sentinel
}
