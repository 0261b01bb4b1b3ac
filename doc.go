// Package okta implements the unsuspend-user action for Okta-compatible
// identity providers.
//
// The action issues a lifecycle unsuspend request for a user, then reads the
// user resource back to confirm the account actually left the SUSPENDED
// state. A 400 on the transition call is deliberately tolerated because the
// provider answers 400 when the user is already active; the read-back is the
// only verdict on success.
//
// Invocation dispatch, retry policy, and cancellation belong to the
// surrounding job framework. The package exposes two hooks for it:
// RecoverFromFailure logs context and re-raises the original error unchanged,
// and HandleHalt acknowledges a cancellation without any rollback work since
// both outbound calls are atomic on the provider side.
package okta
