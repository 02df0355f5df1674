package session

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Monitor logs sessions out after a period without observed activity,
// raising a warning flag shortly before the cutoff. One repeating timer per
// session; every qualifying activity event resets it, and acknowledging the
// warning counts as activity.
type Monitor struct {
	timeout time.Duration
	warning time.Duration // how long before timeout the warning raises
	logger  *zap.Logger

	mu       sync.Mutex
	sessions map[string]*watched
	onExpire func(token string)
}

type watched struct {
	timer  *time.Timer
	warned bool
}

func NewMonitor(timeout, warning time.Duration, logger *zap.Logger) *Monitor {
	if warning >= timeout {
		warning = timeout / 2
	}
	return &Monitor{
		timeout:  timeout,
		warning:  warning,
		logger:   logger,
		sessions: map[string]*watched{},
	}
}

// SetExpireFunc installs the logout callback. Must be set before Track.
func (m *Monitor) SetExpireFunc(fn func(token string)) {
	m.mu.Lock()
	m.onExpire = fn
	m.mu.Unlock()
}

// Track starts watching a session if it is not already watched. Unlike
// Touch it never resets a running timer, so sessions resolved during data
// polls get their timer started (e.g. after a process restart with sessions
// still in Redis) without the poll counting as activity.
func (m *Monitor) Track(token string) {
	if token == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[token]; ok {
		return
	}
	m.watch(token)
}

// Touch records activity: the warning clears and the timer restarts.
func (m *Monitor) Touch(token string) {
	if token == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if w, ok := m.sessions[token]; ok {
		w.warned = false
		w.timer.Reset(m.timeout - m.warning)
		return
	}
	m.watch(token)
}

// watch starts the idle timer for a token. Callers hold mu.
func (m *Monitor) watch(token string) {
	w := &watched{}
	w.timer = time.AfterFunc(m.timeout-m.warning, func() { m.fire(token) })
	m.sessions[token] = w
}

// Warned reports whether the idle warning is raised for the token.
func (m *Monitor) Warned(token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.sessions[token]
	return ok && w.warned
}

// Forget stops watching a session (logout or expiry handled elsewhere).
func (m *Monitor) Forget(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.sessions[token]; ok {
		w.timer.Stop()
		delete(m.sessions, token)
	}
}

// fire runs twice per idle cycle: first to raise the warning, then to expire.
func (m *Monitor) fire(token string) {
	m.mu.Lock()
	w, ok := m.sessions[token]
	if !ok {
		m.mu.Unlock()
		return
	}
	if !w.warned {
		w.warned = true
		w.timer.Reset(m.warning)
		m.mu.Unlock()
		m.logger.Info("Session idle warning raised", zap.String("token", token))
		return
	}
	delete(m.sessions, token)
	onExpire := m.onExpire
	m.mu.Unlock()

	m.logger.Info("Session expired after inactivity", zap.String("token", token))
	if onExpire != nil {
		onExpire(token)
	}
}
