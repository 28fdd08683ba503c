package connection

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

// FBConnection initializes the Firebase app and returns the Firestore and
// Auth clients. The auth client is nil in dev mode, where identity is
// checked against local tokens instead.
func FBConnection(cfg Config) (*firestore.Client, *auth.Client, error) {
	ctx := context.Background()

	var fbCfg *firebase.Config
	if cfg.ProjectID != "" {
		fbCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, fbCfg, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("getting Firestore client: %w", err)
	}

	var authClient *auth.Client
	if cfg.AuthMode != "jwt" {
		authClient, err = app.Auth(ctx)
		if err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("getting Auth client: %w", err)
		}
	}

	fmt.Println("Firestore connection successful")
	return client, authClient, nil
}
