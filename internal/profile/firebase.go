package profile

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewFirestoreClient builds the Firestore client from either an inline
// service-account JSON or a credentials file path. With neither set the
// client falls back to application-default credentials.
func NewFirestoreClient(ctx context.Context, projectID, serviceAccountJSON, credentialsFile string) (*firestore.Client, error) {
	var opts []option.ClientOption
	switch {
	case serviceAccountJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	case credentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firestore client: %w", err)
	}
	return client, nil
}
