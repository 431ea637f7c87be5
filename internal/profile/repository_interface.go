package profile

import "context"

// Store is the write side of the user profile document.
type Store interface {
	// ActivateSubscription merge-writes the subscription fields onto the
	// profile document for userID, creating the document if absent and
	// leaving all other fields untouched.
	ActivateSubscription(ctx context.Context, userID, planType string) error
}
