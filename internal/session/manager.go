package session

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/pharmadesk/pharmadesk/client/go-client/internal/apierr"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/models"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/notify"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/storage"
	"github.com/pharmadesk/pharmadesk/client/go-client/pkg/logger"
	"github.com/pharmadesk/pharmadesk/client/go-client/pkg/metrics"
)

const expiredNotice = "Session expired. Please login again."

// Manager holds the current session and coordinates every transition.
// The in-memory session is the source of truth; the store is a best-effort
// cache so a session survives a restart.
type Manager struct {
	store    storage.Store
	notifier notify.Notifier
	nav      Navigator
	auth     AuthClient

	ttl      time.Duration
	interval time.Duration
	now      func() time.Time

	mu    sync.Mutex
	state State
	sess  Session
	// gen increments on every transition to Anonymous so a login response
	// that raced a logout can tell it lost.
	gen    uint64
	stopCh chan struct{}
}

type Option func(*Manager)

// WithClock injects the time source. Tests use this to probe the expiry boundary.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithCheckInterval overrides the periodic expiry check cadence (default 5m).
func WithCheckInterval(d time.Duration) Option {
	return func(m *Manager) { m.interval = d }
}

// WithTTL overrides the session lifetime (default 24h).
func WithTTL(d time.Duration) Option {
	return func(m *Manager) { m.ttl = d }
}

func NewManager(store storage.Store, notifier notify.Notifier, nav Navigator, opts ...Option) *Manager {
	m := &Manager{
		store:    store,
		notifier: notifier,
		nav:      nav,
		ttl:      24 * time.Hour,
		interval: 5 * time.Minute,
		now:      time.Now,
		state:    StateUninitialized,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// BindAuth attaches the auth collaborator. Wired after construction because
// the HTTP client that backs it needs the manager's token source first.
func (m *Manager) BindAuth(a AuthClient) {
	m.mu.Lock()
	m.auth = a
	m.mu.Unlock()
}

// Snapshot returns the current state and a copy of the session.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{State: m.state, Session: m.sess}
}

// Token returns the bearer credential, or "" when not authenticated.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAuthenticated {
		return ""
	}
	return m.sess.Token
}

// Restore loads a persisted session, if any. It must complete before the
// first routing decision; callers block on it during startup. Any invalid or
// partial record is purged so the next read starts clean.
func (m *Manager) Restore(ctx context.Context) {
	m.mu.Lock()
	m.state = StateRestoring
	m.mu.Unlock()

	tok, okTok := m.store.Get(ctx, storage.KeyToken)
	rawUser, okUser := m.store.Get(ctx, storage.KeyUser)
	rawTS, okTS := m.store.Get(ctx, storage.KeyTokenTimestamp)

	if !okTok || !okUser || !okTS {
		if okTok || okUser || okTS {
			logger.Debug("partial session record found, purging")
		}
		m.abandonRestore(ctx, "absent")
		return
	}

	ms, err := strconv.ParseInt(rawTS, 10, 64)
	if err != nil {
		// malformed timestamp implies expired
		m.abandonRestore(ctx, "expired")
		return
	}
	issued := time.UnixMilli(ms)
	if m.pastTTL(issued) || tokenExpired(tok, m.now()) {
		m.abandonRestore(ctx, "expired")
		return
	}

	var u models.User
	if err := json.Unmarshal([]byte(rawUser), &u); err != nil || u.UserID == 0 {
		logger.Warnf("stored user record unusable, purging")
		m.abandonRestore(ctx, "invalid")
		return
	}

	m.mu.Lock()
	m.sess = Session{Token: tok, User: u, IssuedAt: issued}
	m.state = StateAuthenticated
	m.startWatcherLocked()
	m.mu.Unlock()

	metrics.SessionRestores.WithLabelValues("restored").Inc()
	logger.Infof("session restored for %s", u.Email)
}

func (m *Manager) abandonRestore(ctx context.Context, result string) {
	m.purge(ctx)
	m.mu.Lock()
	m.sess = Session{}
	m.state = StateAnonymous
	m.mu.Unlock()
	metrics.SessionRestores.WithLabelValues(result).Inc()
}

// Login exchanges credentials for a session. On any failure the session is
// fully cleared before the error is returned; a success that arrives after a
// logout is discarded rather than resurrecting the cleared session.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.mu.Lock()
	auth := m.auth
	gen := m.gen
	m.mu.Unlock()
	if auth == nil {
		return ErrNoAuthClient
	}

	resp, err := auth.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		m.clear(ctx)
		m.notifier.Error(apierr.Message(err))
		return err
	}
	if resp == nil || resp.Token == "" || resp.UserID == 0 || resp.Email == "" || resp.Name == "" || resp.Role == "" {
		m.clear(ctx)
		m.notifier.Error("Invalid login response from server")
		return ErrInvalidLoginResponse
	}

	role := models.Role(resp.Role)
	if !role.Valid() {
		logger.Warnf("backend returned unknown role %q", resp.Role)
	}
	sess := Session{
		Token: resp.Token,
		User: models.User{
			UserID: resp.UserID,
			Email:  resp.Email,
			Name:   resp.Name,
			Role:   role,
		},
		IssuedAt: m.now(),
	}

	m.mu.Lock()
	if m.gen != gen {
		m.mu.Unlock()
		logger.Infof("discarding stale login response for %s", resp.Email)
		return ErrLoginSuperseded
	}
	m.sess = sess
	m.state = StateAuthenticated
	m.startWatcherLocked()
	m.mu.Unlock()

	// persist after the in-memory switch: failures here only cost reload
	// survival, never the live session
	m.persist(ctx, sess)

	// a logout that landed while the keys were being written has already
	// cleared the in-memory session; take its purge back up so the store
	// does not hold a record the manager no longer owns
	m.mu.Lock()
	if m.gen != gen {
		m.mu.Unlock()
		m.purge(ctx)
		logger.Infof("discarding stale login response for %s", resp.Email)
		return ErrLoginSuperseded
	}
	m.mu.Unlock()
	m.notifier.Success("Login successful!")
	logger.Infof("login successful for %s", sess.User.Email)
	return nil
}

// Logout clears the session unconditionally. Safe to call when already
// Anonymous.
func (m *Manager) Logout(ctx context.Context) {
	m.clear(ctx)
	m.notifier.Success("Logged out successfully")
}

// Invalidate is the "session invalidated externally" path: same clear as
// Logout but with an expired/invalid notice and a navigation intent toward
// the login entry point. The HTTP pipeline and the expiry watcher both land
// here.
func (m *Manager) Invalidate(ctx context.Context, message string) {
	m.clear(ctx)
	if message == "" {
		message = expiredNotice
	}
	m.notifier.Error(message)
	if m.nav != nil {
		m.nav.ToLogin()
	}
}

// IsExpired reports whether the session's age exceeds the TTL. No recorded
// issue time counts as expired.
func (m *Manager) IsExpired() bool {
	m.mu.Lock()
	issued := m.sess.IssuedAt
	m.mu.Unlock()
	return m.pastTTL(issued)
}

func (m *Manager) pastTTL(issued time.Time) bool {
	if issued.IsZero() {
		return true
	}
	return m.now().Sub(issued) > m.ttl
}

// Close tears the manager down, stopping the expiry watcher.
func (m *Manager) Close() {
	m.mu.Lock()
	m.stopWatcherLocked()
	m.mu.Unlock()
}

func (m *Manager) clear(ctx context.Context) {
	m.mu.Lock()
	m.gen++
	m.sess = Session{}
	m.state = StateAnonymous
	m.stopWatcherLocked()
	m.mu.Unlock()
	m.purge(ctx)
}

// persist writes the three record keys in their fixed order. Best-effort:
// a failed write leaves the in-memory session untouched.
func (m *Manager) persist(ctx context.Context, sess Session) {
	userJSON, err := json.Marshal(sess.User)
	if err != nil {
		logger.Warnf("session user encode failed: %v", err)
		return
	}
	ok := m.store.Set(ctx, storage.KeyToken, sess.Token)
	ok = m.store.Set(ctx, storage.KeyUser, string(userJSON)) && ok
	ok = m.store.Set(ctx, storage.KeyTokenTimestamp, strconv.FormatInt(sess.IssuedAt.UnixMilli(), 10)) && ok
	if !ok {
		logger.Warnf("session persistence incomplete; session will not survive a restart")
	}
}

func (m *Manager) purge(ctx context.Context) {
	for _, key := range storage.AuthKeys {
		m.store.Remove(ctx, key)
	}
}

// startWatcherLocked begins the periodic expiry check. Caller holds m.mu.
func (m *Manager) startWatcherLocked() {
	if m.stopCh != nil || m.interval <= 0 {
		return
	}
	stop := make(chan struct{})
	m.stopCh = stop
	go m.watch(stop)
}

// stopWatcherLocked cancels the periodic check. Caller holds m.mu.
func (m *Manager) stopWatcherLocked() {
	if m.stopCh != nil {
		close(m.stopCh)
		m.stopCh = nil
	}
}

func (m *Manager) watch(stop <-chan struct{}) {
	t := time.NewTicker(m.interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			if m.IsExpired() {
				logger.Info("session passed its lifetime, invalidating")
				m.Invalidate(context.Background(), expiredNotice)
				return
			}
		}
	}
}
