package ratelimit

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Options configures the per-client token bucket.
type Options struct {
	Capacity   float64 // tokens
	RefillRate float64 // tokens per second
	RetryAfter time.Duration
}

// Middleware applies a token-bucket limit keyed by client IP.
type Middleware struct {
	opts Options
	mu   sync.Mutex
	m    map[string]*bucket
}

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

func New(opts Options) *Middleware {
	if opts.Capacity <= 0 {
		opts.Capacity = 20
	}
	if opts.RefillRate <= 0 {
		opts.RefillRate = 10
	}
	if opts.RetryAfter <= 0 {
		opts.RetryAfter = time.Second
	}
	return &Middleware{opts: opts, m: make(map[string]*bucket)}
}

func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		key := clientIP(r)

		m.mu.Lock()
		b := m.m[key]
		if b == nil {
			b = &bucket{tokens: m.opts.Capacity, lastSeen: now}
			m.m[key] = b
		}
		b.tokens += now.Sub(b.lastSeen).Seconds() * m.opts.RefillRate
		if b.tokens > m.opts.Capacity {
			b.tokens = m.opts.Capacity
		}
		b.lastSeen = now
		allowed := b.tokens >= 1
		if allowed {
			b.tokens--
		}
		m.mu.Unlock()

		if !allowed {
			w.Header().Set("Retry-After",
				strconv.Itoa(int(m.opts.RetryAfter/time.Second)))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
