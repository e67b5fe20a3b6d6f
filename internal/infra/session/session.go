// Package session persists the subset of client state that survives a
// restart: the signed-in identity, the saved addresses and the guest
// session marker. Everything else is refetched from the API on startup.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// State is the persisted snapshot. Cart, catalog and order state are
// deliberately absent; the server owns them. Cookies carry the
// HTTP-only auth session across restarts the way a browser profile
// would.
type State struct {
	User           *entity.User     `json:"user,omitempty"`
	Addresses      []entity.Address `json:"addresses,omitempty"`
	GuestSessionID string           `json:"guest_session_id,omitempty"`
	Cookies        []*http.Cookie   `json:"cookies,omitempty"`
	SavedAt        time.Time        `json:"saved_at"`
}

// Manager loads and saves the session snapshot through a blob bucket.
type Manager struct {
	bucket *blob.Bucket
	key    string
	logger *slog.Logger
}

// New opens the configured bucket. The URL scheme picks the driver, so
// file://./data works locally and mem:// in tests.
func New(ctx context.Context, cfg *config.SessionConfig, logger *slog.Logger) (*Manager, error) {
	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "open session bucket")
	}

	return &Manager{bucket: bucket, key: cfg.Key, logger: logger}, nil
}

// NewWithBucket wires an already-open bucket, used by tests.
func NewWithBucket(bucket *blob.Bucket, key string, logger *slog.Logger) *Manager {
	return &Manager{bucket: bucket, key: key, logger: logger}
}

// Load reads the persisted snapshot. A missing blob is not an error; it
// just means a fresh session.
func (m *Manager) Load(ctx context.Context) (*State, error) {
	exists, err := m.bucket.Exists(ctx, m.key)
	if err != nil {
		return nil, errors.Wrap(err, "probe session blob")
	}
	if !exists {
		return &State{}, nil
	}

	raw, err := m.bucket.ReadAll(ctx, m.key)
	if err != nil {
		return nil, errors.Wrap(err, "read session blob")
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		// A corrupt snapshot should not brick startup. Log and
		// start clean.
		m.logger.Warn("discarding unreadable session snapshot", slog.Any("error", err))
		return &State{}, nil
	}

	return &state, nil
}

// Save writes the snapshot, stamping SavedAt.
func (m *Manager) Save(ctx context.Context, state *State) error {
	state.SavedAt = time.Now().UTC()

	raw, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "encode session snapshot")
	}
	if err := m.bucket.WriteAll(ctx, m.key, raw, nil); err != nil {
		return errors.Wrap(err, "write session blob")
	}

	return nil
}

// Purge removes the snapshot entirely, used on logout and auth failure.
func (m *Manager) Purge(ctx context.Context) error {
	exists, err := m.bucket.Exists(ctx, m.key)
	if err != nil {
		return errors.Wrap(err, "probe session blob")
	}
	if !exists {
		return nil
	}
	if err := m.bucket.Delete(ctx, m.key); err != nil {
		return errors.Wrap(err, "delete session blob")
	}

	return nil
}

// Close releases the bucket.
func (m *Manager) Close() error {
	return m.bucket.Close()
}

// NewGuestSessionID mints the identifier the API uses to tie a guest
// cart together across requests.
func NewGuestSessionID() string {
	return uuid.NewString()
}

// TokenExpiry reads the exp claim out of an access token without
// verifying the signature. The server verifies; the client only needs
// the deadline to schedule a refresh.
func TokenExpiry(token string) (time.Time, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, errors.Wrap(err, "parse access token")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, errors.Wrap(err, "read token expiry")
	}
	if exp == nil {
		return time.Time{}, errors.New("access token has no expiry")
	}

	return exp.Time, nil
}

// NeedsRefresh reports whether the token expires within the margin.
func NeedsRefresh(token string, margin time.Duration) bool {
	exp, err := TokenExpiry(token)
	if err != nil {
		return true
	}

	return time.Until(exp) < margin
}
