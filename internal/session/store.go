package session

import (
	"context"
	"errors"
)

// ErrNotFound means the session has no stored state: the funnel was never
// started (or the entry expired). Callers treat it as "redirect to the start".
var ErrNotFound = errors.New("session not found")

// Store persists funnel sessions and the set of charges awaiting
// payment confirmation.
type Store interface {
	Get(ctx context.Context, sessionID string) (*State, error)
	Put(ctx context.Context, sessionID string, state *State) error

	// Pending charges feed the payment status poller. The mapping from
	// transaction id back to session lets the confirmation consumer find
	// the session to mark paid.
	AddPendingCharge(ctx context.Context, sessionID, transactionID string) error
	PendingCharges(ctx context.Context) ([]string, error)
	RemovePendingCharge(ctx context.Context, transactionID string) error
	SessionForCharge(ctx context.Context, transactionID string) (string, error)
}
