package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tmc/langchaingo/memory"
	"go.uber.org/zap"
)

// Manager serializes turns per session and persists health contexts.
// Turns for different sessions run in parallel.
type Manager struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time

	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// NewManager creates a new session manager
func NewManager(store Store, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		store:  store,
		logger: logger,
		now:    time.Now,
		locks:  make(map[string]*sessionLock),
	}
}

// lock acquires the per-session mutex and returns its release func. The
// entry is dropped once no caller holds or waits for it.
func (m *Manager) lock(sessionID string) func() {
	m.mu.Lock()
	l, ok := m.locks[sessionID]
	if !ok {
		l = &sessionLock{}
		m.locks[sessionID] = l
	}
	l.refs++
	m.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		m.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(m.locks, sessionID)
		}
		m.mu.Unlock()
	}
}

// WithSession loads the session's context, runs fn on it and saves the
// result, holding the session lock throughout. If fn returns an error
// nothing is saved.
func (m *Manager) WithSession(ctx context.Context, sessionID string, fn func(hc *HealthContext) error) error {
	if sessionID == "" {
		return ErrNoSession
	}
	unlock := m.lock(sessionID)
	defer unlock()

	hc, err := m.store.Load(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if err := fn(hc); err != nil {
		return err
	}
	hc.UpdatedAt = m.now().UTC()
	if err := m.store.Save(ctx, hc); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	m.logger.Debug("session saved",
		zap.String("session_id", sessionID),
		zap.Int("turns", len(hc.Turns)))
	return nil
}

// Load returns a snapshot of the session's context.
func (m *Manager) Load(ctx context.Context, sessionID string) (*HealthContext, error) {
	return m.store.Load(ctx, sessionID)
}

// Forget removes everything remembered about a session.
func (m *Manager) Forget(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrNoSession
	}
	unlock := m.lock(sessionID)
	defer unlock()

	if err := m.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	m.logger.Info("session cleared", zap.String("session_id", sessionID))
	return nil
}

// Exists reports whether the store holds a context for sessionID.
func (m *Manager) Exists(ctx context.Context, sessionID string) (bool, error) {
	return m.store.Exists(ctx, sessionID)
}

// Transcript renders the session's turns as "User:"/"Assistant:" lines.
func (m *Manager) Transcript(ctx context.Context, sessionID string) (string, error) {
	hc, err := m.store.Load(ctx, sessionID)
	if err != nil {
		return "", err
	}

	buf := memory.NewConversationBuffer(
		memory.WithHumanPrefix("User"),
		memory.WithAIPrefix("Assistant"),
	)
	for _, t := range hc.Turns {
		var err error
		switch t.Role {
		case RoleUser:
			err = buf.ChatHistory.AddUserMessage(ctx, t.Content)
		case RoleAssistant:
			err = buf.ChatHistory.AddAIMessage(ctx, t.Content)
		default:
			m.logger.Warn("unknown turn role, skipping", zap.String("role", t.Role))
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to add message to history: %w", err)
		}
	}

	vars, err := buf.LoadMemoryVariables(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to render history: %w", err)
	}
	history, _ := vars[buf.GetMemoryKey(ctx)].(string)
	return history, nil
}

// ActiveLocks returns the number of sessions currently locked or waited on.
func (m *Manager) ActiveLocks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}

// Close closes the underlying store
func (m *Manager) Close() error {
	if closer, ok := m.store.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
