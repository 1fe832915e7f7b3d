package health

import (
	"context"
	"time"

	"github.com/aatuh/ulid-toolkit/ports"
)

// ClockChecker verifies the injected clock advances and stays in sync with
// the wall clock. A stalled or wildly skewed clock breaks identifier
// ordering, so it fails readiness.
type ClockChecker struct {
	clock ports.Clock
}

func NewClockChecker(c ports.Clock) ports.HealthChecker {
	return &ClockChecker{clock: c}
}

func (c *ClockChecker) Name() string { return "clock" }

func (c *ClockChecker) Check(ctx context.Context) ports.HealthResult {
	start := time.Now()
	a := c.clock.Now()
	time.Sleep(2 * time.Millisecond)
	b := c.clock.Now()

	if !b.After(a) {
		return ports.HealthResult{
			Status:    ports.HealthStatusUnhealthy,
			Message:   "clock is not advancing",
			Timestamp: time.Now(),
			Duration:  time.Since(start),
		}
	}
	if skew := time.Since(a); skew > time.Minute || skew < -time.Minute {
		return ports.HealthResult{
			Status:    ports.HealthStatusUnhealthy,
			Message:   "clock skewed from wall time",
			Timestamp: time.Now(),
			Duration:  time.Since(start),
		}
	}
	return ports.HealthResult{
		Status:    ports.HealthStatusHealthy,
		Timestamp: time.Now(),
		Duration:  time.Since(start),
	}
}

// EntropyChecker draws a handful of samples and verifies they are in range
// and not all identical.
type EntropyChecker struct {
	entropy ports.Entropy
}

func NewEntropyChecker(e ports.Entropy) ports.HealthChecker {
	return &EntropyChecker{entropy: e}
}

func (c *EntropyChecker) Name() string { return "entropy" }

func (c *EntropyChecker) Check(ctx context.Context) ports.HealthResult {
	start := time.Now()
	const draws = 8
	first := c.entropy.Float64()
	allSame := true
	for i := 1; i < draws; i++ {
		v := c.entropy.Float64()
		if v < 0 || v >= 1 {
			return ports.HealthResult{
				Status:    ports.HealthStatusUnhealthy,
				Message:   "draw outside [0,1)",
				Timestamp: time.Now(),
				Duration:  time.Since(start),
			}
		}
		if v != first {
			allSame = false
		}
	}
	if first < 0 || first >= 1 {
		return ports.HealthResult{
			Status:    ports.HealthStatusUnhealthy,
			Message:   "draw outside [0,1)",
			Timestamp: time.Now(),
			Duration:  time.Since(start),
		}
	}
	if allSame {
		return ports.HealthResult{
			Status:    ports.HealthStatusUnhealthy,
			Message:   "source returned identical draws",
			Timestamp: time.Now(),
			Duration:  time.Since(start),
		}
	}
	return ports.HealthResult{
		Status:    ports.HealthStatusHealthy,
		Timestamp: time.Now(),
		Duration:  time.Since(start),
	}
}
