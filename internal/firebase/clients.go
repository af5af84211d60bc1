package firebase

import (
	"context"

	"tableside/backend/internal/config"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
)

// Clients bundles the long-lived Firebase + GCP handles shared by the
// store and handlers. The bundle is built once at startup and injected;
// when the backend is not configured (or bootstrap fails) every handle
// is nil and callers degrade to local-only behavior instead of erroring.
type Clients struct {
	App       *firebase.App
	Auth      *auth.Client
	Firestore *firestore.Client
	Storage   *storage.Client

	ProjectID string
	Bucket    string
}

// Enabled reports whether the backend is usable. Handlers and the store
// treat a disabled bundle as "run against nothing": saves no-op, loads
// return empty, subscriptions return no handle.
func (c *Clients) Enabled() bool {
	return c != nil && c.Firestore != nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Firestore != nil {
		_ = c.Firestore.Close()
	}
	if c.Storage != nil {
		_ = c.Storage.Close()
	}
}

// NewClients builds the shared client bundle. Bootstrap failure is not an
// error to the caller: a malformed-but-present configuration is logged and
// treated exactly like an absent one, so the returned bundle is always
// usable (possibly disabled) and no error propagates.
func NewClients(ctx context.Context, cfg config.Config, log zerolog.Logger) *Clients {
	if !cfg.BackendEnabled() {
		log.Warn().Msg("firebase not configured, running in local-only mode")
		return &Clients{}
	}

	var opts []option.ClientOption
	// In Cloud Run / GCP, Application Default Credentials are used
	// automatically. Locally, GOOGLE_APPLICATION_CREDENTIALS points at a
	// service account JSON file.
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}, opts...)
	if err != nil {
		log.Error().Err(err).Msg("firebase app init failed, degrading to local-only mode")
		return &Clients{}
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Error().Err(err).Msg("firebase auth init failed, degrading to local-only mode")
		return &Clients{}
	}

	fs, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		log.Error().Err(err).Msg("firestore init failed, degrading to local-only mode")
		return &Clients{}
	}

	st, err := storage.NewClient(ctx, opts...)
	if err != nil {
		// Storage only backs image uploads; the data layer still works.
		log.Warn().Err(err).Msg("storage init failed, uploads disabled")
		st = nil
	}

	log.Info().Str("project", cfg.ProjectID).Str("bucket", cfg.StorageBucket).
		Msg("firebase initialized")

	return &Clients{
		App:       app,
		Auth:      authClient,
		Firestore: fs,
		Storage:   st,
		ProjectID: cfg.ProjectID,
		Bucket:    cfg.StorageBucket,
	}
}
