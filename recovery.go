package okta

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
)

// RecoverFromFailure is the framework error hook. It records the failure
// context and hands the identical error value back so the framework keeps
// ownership of retry and backoff decisions. Nothing is ever suppressed here.
func (h *UnsuspendUserHandler) RecoverFromFailure(ctx context.Context, msg UnsuspendUserMessage, err error) error {
	if err == nil {
		return nil
	}

	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		h.logger.Error(
			"unsuspend failed for user %q: %s (status %d) %s",
			msg.UserID,
			richErr.Message,
			richErr.Code,
			print.MaybePrettyJSON(richErr.Metadata),
		)
		return err
	}

	h.logger.Error("unsuspend failed for user %q: %s", msg.UserID, err)
	return err
}
