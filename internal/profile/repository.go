package profile

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
)

// Profile documents live at artifacts/default-app-id/users/{userId}/profile/data.
const (
	artifactsCollection = "artifacts"
	appID               = "default-app-id"
	usersCollection     = "users"
	profileCollection   = "profile"
	profileDoc          = "data"
)

type Repository struct {
	client *firestore.Client
	now    func() time.Time
}

type Option func(*Repository)

// WithClock overrides the timestamp source used for premiumSince.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

func NewRepository(client *firestore.Client, opts ...Option) *Repository {
	r := &Repository{client: client, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repository) docRef(userID string) *firestore.DocumentRef {
	return r.client.Collection(artifactsCollection).Doc(appID).
		Collection(usersCollection).Doc(userID).
		Collection(profileCollection).Doc(profileDoc)
}

// activationFields is the full merge payload for an approved payment. The
// write never touches fields outside this set, and writing it twice for the
// same payment is a no-op by construction.
func activationFields(planType string, now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"subscription": planType,
		"isPremium":    true, // legacy readers still check this flag
		"premiumSince": now.UTC().Format(time.RFC3339),
		"dailyCount":   0,
	}
}

func (r *Repository) ActivateSubscription(ctx context.Context, userID, planType string) error {
	if _, err := r.docRef(userID).Set(ctx, activationFields(planType, r.now()), firestore.MergeAll); err != nil {
		return fmt.Errorf("failed to update profile for user %s: %w", userID, err)
	}
	return nil
}
