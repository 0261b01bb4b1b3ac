package okta

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// User is the subset of the provider user resource the action inspects.
type User struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	StatusChanged string `json:"statusChanged"`
	LastUpdated   string `json:"lastUpdated"`
}

// TransitionTimestamp returns the last-change timestamp for the user:
// statusChanged when present, lastUpdated otherwise, empty when the resource
// carries neither.
func (u *User) TransitionTimestamp() string {
	if u.StatusChanged != "" {
		return u.StatusChanged
	}
	return u.LastUpdated
}

// apiError is the provider error envelope.
type apiError struct {
	ErrorCode    string `json:"errorCode"`
	ErrorSummary string `json:"errorSummary"`
	ErrorID      string `json:"errorId"`
}

// Client issues the two outbound calls the action needs against a single
// provider base URL. Timeouts and cancellation arrive through the request
// context; the client imposes none of its own.
type Client struct {
	baseURL    string
	headers    http.Header
	httpClient *http.Client
}

// NewClient creates a client for baseURL carrying the resolved header set on
// every request.
func NewClient(baseURL string, headers http.Header, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		headers:    headers,
		httpClient: httpClient,
	}
}

// Unsuspend posts the lifecycle transition for userID. A 2xx or a 400 hands
// the verdict to the read-back: the provider answers 400 when the user is
// already active, so neither outcome settles anything here. Any other status
// fails with the provider errorSummary when one is present.
func (c *Client) Unsuspend(ctx context.Context, userID string) error {
	endpoint := fmt.Sprintf("%s/api/v1/users/%s/lifecycle/unsuspend", c.baseURL, escapeUserID(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "failed to build unsuspend request")
	}
	c.applyHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "unsuspend request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "failed to read unsuspend response")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		// Success bodies are ignored; some deployments return an empty or
		// non-JSON body here.
		return nil
	}

	if resp.StatusCode == http.StatusBadRequest {
		return nil
	}

	message := fmt.Sprintf("HTTP %d", resp.StatusCode)
	var envelope apiError
	if jsonErr := json.Unmarshal(body, &envelope); jsonErr == nil && envelope.ErrorSummary != "" {
		message = envelope.ErrorSummary
	}

	return goerrors.New(message, goerrors.CategoryOperation).
		WithTextCode(TextCodeUnsuspendRejected).
		WithCode(resp.StatusCode).
		WithMetadata(map[string]any{
			"user_id":    userID,
			"error_code": envelope.ErrorCode,
			"error_id":   envelope.ErrorID,
		})
}

// FetchUser reads the user resource for status verification.
func (c *Client) FetchUser(ctx context.Context, userID string) (*User, error) {
	endpoint := fmt.Sprintf("%s/api/v1/users/%s", c.baseURL, escapeUserID(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "failed to build user fetch request")
	}
	c.applyHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "user fetch request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "failed to read user fetch response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, goerrors.New(
			fmt.Sprintf("Cannot fetch information about User: HTTP %d", resp.StatusCode),
			goerrors.CategoryOperation,
		).WithTextCode(TextCodeUserFetchFailed).
			WithCode(resp.StatusCode).
			WithMetadata(map[string]any{"user_id": userID})
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "Cannot parse User response body").
			WithTextCode(TextCodeUserParseFailed).
			WithCode(goerrors.CodeInternal).
			WithMetadata(map[string]any{"user_id": userID})
	}

	return &user, nil
}

func (c *Client) applyHeaders(req *http.Request) {
	for name, values := range c.headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	req.Header.Set("Accept", "application/json")
}

// escapeUserID percent-encodes a user identifier so it stays a single path
// segment. url.PathEscape covers spaces, slashes, and control characters; "@"
// is encoded on top since RFC 3986 allows it raw inside a segment.
func escapeUserID(id string) string {
	return strings.ReplaceAll(url.PathEscape(id), "@", "%40")
}
