package okta

import "fmt"

// User status values as reported by the provider.
const (
	UserStatusActive          = "ACTIVE"
	UserStatusSuspended       = "SUSPENDED"
	UserStatusStaged          = "STAGED"
	UserStatusProvisioned     = "PROVISIONED"
	UserStatusDeprovisioned   = "DEPROVISIONED"
	UserStatusLockedOut       = "LOCKED_OUT"
	UserStatusPasswordExpired = "PASSWORD_EXPIRED"
	UserStatusRecovery        = "RECOVERY"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] OKTA "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] OKTA "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] OKTA "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
