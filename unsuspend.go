package okta

import (
	"context"
	"fmt"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	goerrors "github.com/goliatone/go-errors"
)

// UnsuspendUserMessage carries the action inputs. Address is optional and
// falls back to the OKTA_BASE_URL environment default.
type UnsuspendUserMessage struct {
	UserID  string `json:"userId"`
	Address string `json:"address,omitempty"`
}

func (m UnsuspendUserMessage) Type() string { return "okta.user.unsuspend" }

// Validate will run validation rules. Address is an opaque optional string;
// resolving it is ResolveAddress's job.
func (m UnsuspendUserMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.UserID, validation.Required),
	)
}

// UnsuspendResult reports the verified outcome of the action. UnsuspendedAt
// is the read-back timestamp and is omitted when the provider reports none.
type UnsuspendResult struct {
	UserID        string `json:"userId"`
	Unsuspended   bool   `json:"unsuspended"`
	Address       string `json:"address"`
	UnsuspendedAt string `json:"unsuspendedAt,omitempty"`
	Status        string `json:"status"`
}

// UnsuspendUserHandler moves a suspended account back toward ACTIVE and
// verifies the transition took effect before reporting success. One
// invocation performs exactly one state-mutating call and one read; retries
// belong to the framework.
type UnsuspendUserHandler struct {
	credentials Credentials
	httpClient  *http.Client
	logger      Logger
	now         func() time.Time
}

// HandlerOption customizes handler construction.
type HandlerOption func(*UnsuspendUserHandler)

// WithLogger overrides the default logger.
func WithLogger(logger Logger) HandlerOption {
	return func(h *UnsuspendUserHandler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithHTTPClient overrides the HTTP client used for both outbound calls.
func WithHTTPClient(client *http.Client) HandlerOption {
	return func(h *UnsuspendUserHandler) {
		if client != nil {
			h.httpClient = client
		}
	}
}

// WithClock injects a custom clock (useful for tests).
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *UnsuspendUserHandler) {
		if clock != nil {
			h.now = clock
		}
	}
}

// NewUnsuspendUserHandler creates a handler bound to one set of credentials.
func NewUnsuspendUserHandler(creds Credentials, opts ...HandlerOption) *UnsuspendUserHandler {
	h := &UnsuspendUserHandler{
		credentials: creds,
		logger:      defLogger{},
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Execute runs the action: validate, resolve address and credentials, post
// the lifecycle transition, then read the user back and reconcile its status.
func (h *UnsuspendUserHandler) Execute(ctx context.Context, msg UnsuspendUserMessage) (*UnsuspendResult, error) {
	if err := msg.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid unsuspend request").
			WithTextCode(TextCodeInvalidRequest).
			WithCode(goerrors.CodeBadRequest)
	}

	address, err := ResolveAddress(msg.Address)
	if err != nil {
		return nil, err
	}

	headers, err := ResolveHeaders(ctx, h.credentials)
	if err != nil {
		return nil, err
	}
	headers = NormalizeAuthorization(headers, h.credentials.Scheme)

	client := NewClient(address, headers, h.httpClient)

	h.logger.Debug("unsuspending user %q at %s", msg.UserID, address)

	// The transition call settles nothing on its own: the provider answers
	// 400 both for "already active" and for other bad input, and the two are
	// indistinguishable without the read below.
	if err := client.Unsuspend(ctx, msg.UserID); err != nil {
		return nil, err
	}

	user, err := client.FetchUser(ctx, msg.UserID)
	if err != nil {
		return nil, err
	}

	if user.Status == UserStatusSuspended {
		return nil, goerrors.New(
			fmt.Sprintf("User %s is still %s after the unsuspend request", msg.UserID, UserStatusSuspended),
			goerrors.CategoryOperation,
		).WithTextCode(TextCodeUserStillSuspended).
			WithCode(goerrors.CodeBadRequest).
			WithMetadata(map[string]any{
				"user_id": msg.UserID,
				"status":  user.Status,
			})
	}

	h.logger.Info("user %q reached status %s", msg.UserID, user.Status)

	return &UnsuspendResult{
		UserID:        msg.UserID,
		Unsuspended:   true,
		Address:       address,
		UnsuspendedAt: user.TransitionTimestamp(),
		Status:        user.Status,
	}, nil
}
