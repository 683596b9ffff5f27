// internal/app/session/session.go

// Package session owns the sign-in lifecycle. The authentication provider
// is a stub: Login simulates the provider round-trip with a fixed delay and
// then resolves a configured identity. The workspace store is constructed
// when the session starts and discarded at logout, so no state survives a
// session.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/syncgroup/internal/app/seed"
	"github.com/dalemusser/syncgroup/internal/app/store/workspace"
	"github.com/dalemusser/syncgroup/internal/app/system/normalize"
	"github.com/dalemusser/syncgroup/internal/domain/models"
	"go.uber.org/zap"
)

// DefaultLoginDelay matches the simulated provider round-trip of the
// original client.
const DefaultLoginDelay = 1500 * time.Millisecond

// Config controls the stubbed identity and session behavior.
type Config struct {
	LoginDelay  time.Duration // zero means DefaultLoginDelay
	DisplayName string
	Email       string
	AvatarURL   string
	SeedDemo    bool // load the starter workspace content after login
}

// Manager tracks the current session: at most one signed-in identity and
// its workspace store.
type Manager struct {
	log *zap.Logger
	cfg Config

	mu    sync.Mutex
	user  *models.User
	store *workspace.Store
}

// NewManager creates a session manager. Missing identity fields fall back
// to the demo identity.
func NewManager(cfg Config, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.LoginDelay <= 0 {
		cfg.LoginDelay = DefaultLoginDelay
	}
	if cfg.DisplayName == "" {
		cfg.DisplayName = "John Doe"
	}
	if cfg.Email == "" {
		cfg.Email = "john@example.com"
	}
	if cfg.AvatarURL == "" {
		cfg.AvatarURL = "https://picsum.photos/seed/user1/200"
	}
	return &Manager{log: logger, cfg: cfg}
}

// Login resolves the session identity after the simulated provider delay
// and constructs a fresh workspace store for it. An abandoned login (ctx
// canceled before the delay elapses) returns the context error and leaves
// no session state behind.
func (m *Manager) Login(ctx context.Context) (models.User, *workspace.Store, error) {
	timer := time.NewTimer(m.cfg.LoginDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return models.User{}, nil, ctx.Err()
	case <-timer.C:
	}

	user := models.User{
		UID:         "user-1",
		DisplayName: normalize.Name(m.cfg.DisplayName),
		Email:       normalize.Email(m.cfg.Email),
		AvatarURL:   m.cfg.AvatarURL,
	}
	st := workspace.New(m.log)
	if m.cfg.SeedDemo {
		seed.Demo(st, user)
	}

	m.mu.Lock()
	m.user = &user
	m.store = st
	m.mu.Unlock()

	m.log.Info("signed in",
		zap.String("uid", user.UID),
		zap.String("display_name", user.DisplayName))
	return user, st, nil
}

// CurrentUser returns the signed-in identity, if any.
func (m *Manager) CurrentUser() (models.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

// Store returns the session's workspace store, if signed in.
func (m *Manager) Store() (*workspace.Store, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.store == nil {
		return nil, false
	}
	return m.store, true
}

// Logout discards the identity and the workspace store. All session state
// is gone; a later Login starts from an empty workspace.
func (m *Manager) Logout() {
	m.mu.Lock()
	uid := ""
	if m.user != nil {
		uid = m.user.UID
	}
	m.user = nil
	m.store = nil
	m.mu.Unlock()

	if uid != "" {
		m.log.Info("signed out", zap.String("uid", uid))
	}
}
