package monitoring

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"moodtunes/shared/apperrors"
)

// Monitor tracks discovery request outcomes for the health endpoint and the
// heartbeat log. Safe for concurrent requests.
type Monitor struct {
	mu          sync.Mutex
	total       uint64
	failed      uint64
	lastOK      bool
	hadOutcome  bool
	lastKind    apperrors.Kind
	lastRequest time.Time
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) RecordSuccess(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.total++
	m.lastOK = true
	m.hadOutcome = true
	m.lastKind = ""
	m.lastRequest = time.Now()
}

// RecordFailure notes a failed request. Validation failures are client
// mistakes: they count, but never flip health.
func (m *Monitor) RecordFailure(kind apperrors.Kind, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.total++
	m.failed++
	m.lastRequest = time.Now()
	if kind == apperrors.KindValidation {
		return
	}
	m.lastOK = false
	m.hadOutcome = true
	m.lastKind = kind

	slog.Warn("discovery request failed",
		"kind", string(kind),
		"duration_ms", duration.Milliseconds())
}

func (m *Monitor) IsHealthy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hadOutcome {
		return true // No meaningful outcomes yet, assume healthy
	}
	return m.lastOK
}

func (m *Monitor) GetStatusSummary() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lastRequest.IsZero() {
		return "No requests yet"
	}

	summary := fmt.Sprintf("%d requests, %d failed, last at %s",
		m.total, m.failed, m.lastRequest.Format("Jan 2 15:04"))
	if !m.lastOK && m.lastKind != "" {
		summary = fmt.Sprintf("%s (last failure: %s)", summary, m.lastKind)
	}
	return summary
}
