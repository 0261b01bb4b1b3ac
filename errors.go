package okta

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	TextCodeInvalidRequest     = "OKTA_INVALID_REQUEST"
	TextCodeMissingAddress     = "OKTA_MISSING_ADDRESS"
	TextCodeCredentialConfig   = "OKTA_CREDENTIAL_CONFIG"
	TextCodeUnsuspendRejected  = "OKTA_UNSUSPEND_REJECTED"
	TextCodeUserFetchFailed    = "OKTA_USER_FETCH_FAILED"
	TextCodeUserParseFailed    = "OKTA_USER_PARSE_FAILED"
	TextCodeUserStillSuspended = "OKTA_USER_STILL_SUSPENDED"
)

// ErrMissingAddress is returned when neither the message nor the environment
// provides a target base URL. No network call is made in that case.
var ErrMissingAddress = goerrors.New(
	"address is required: set it on the message or via "+EnvBaseURL,
	goerrors.CategoryValidation,
).WithTextCode(TextCodeMissingAddress).
	WithCode(goerrors.CodeBadRequest)

// StatusCode extracts the numeric status carried by an action error so the
// framework can classify it for retry decisions. Returns 0 for errors that
// never reached the network.
func StatusCode(err error) int {
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return richErr.Code
	}
	return 0
}
