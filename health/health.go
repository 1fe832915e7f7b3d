package health

import (
	"context"
	"sync"
	"time"

	"github.com/aatuh/ulid-toolkit/ports"
)

// Manager implements ports.HealthManager. Liveness is a trivial self-check;
// readiness runs every registered checker.
type Manager struct {
	timeout  time.Duration
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates a health manager with a default per-probe timeout.
func New() ports.HealthManager {
	return &Manager{timeout: 5 * time.Second}
}

// RegisterChecker adds a readiness checker.
func (m *Manager) RegisterChecker(checker ports.HealthChecker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkers = append(m.checkers, checker)
}

// GetLiveness reports whether the process is responsive.
func (m *Manager) GetLiveness(ctx context.Context) ports.HealthResult {
	return ports.HealthResult{
		Status:    ports.HealthStatusHealthy,
		Timestamp: time.Now(),
	}
}

// GetReadiness runs all registered checkers and reports the first failure.
func (m *Manager) GetReadiness(ctx context.Context) ports.HealthResult {
	m.mu.RLock()
	checkers := make([]ports.HealthChecker, len(m.checkers))
	copy(checkers, m.checkers)
	m.mu.RUnlock()

	checkCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	for _, c := range checkers {
		if res := c.Check(checkCtx); res.Status != ports.HealthStatusHealthy {
			res.Message = c.Name() + ": " + res.Message
			return res
		}
	}
	return ports.HealthResult{
		Status:    ports.HealthStatusHealthy,
		Timestamp: time.Now(),
	}
}
