// Package ratelimit provides a per-client token bucket for public write
// endpoints. The sliding-window limiter guarding /auth/token lives with the
// general middleware; this one is for cheap, bursty traffic like comment
// and contact submissions.
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"pressroom/internal/handler/http/respond"
)

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// PerIP hands out one token bucket per client IP.
type PerIP struct {
	mu      sync.Mutex
	clients map[string]*clientBucket
	rate    rate.Limit
	burst   int
}

// NewPerIP creates a limiter allowing r events per second with the given
// burst per client. Stale buckets are dropped in the background.
func NewPerIP(r rate.Limit, burst int) *PerIP {
	p := &PerIP{
		clients: make(map[string]*clientBucket),
		rate:    r,
		burst:   burst,
	}
	go p.janitor()
	return p
}

// Middleware rejects requests with 429 once the client's bucket is empty.
func (p *PerIP) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !p.allow(clientIP(r)) {
			respond.JSON(w, http.StatusTooManyRequests,
				map[string]string{"error": "rate limit exceeded, try again later"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ActiveClients reports how many client buckets are currently tracked.
// Used by the health endpoint for operational visibility.
func (p *PerIP) ActiveClients() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.clients)
}

func (p *PerIP) allow(ip string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	client, ok := p.clients[ip]
	if !ok {
		client = &clientBucket{limiter: rate.NewLimiter(p.rate, p.burst)}
		p.clients[ip] = client
	}
	client.lastSeen = time.Now()
	return client.limiter.Allow()
}

func (p *PerIP) janitor() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-10 * time.Minute)
		p.mu.Lock()
		for ip, client := range p.clients {
			if client.lastSeen.Before(cutoff) {
				delete(p.clients, ip)
			}
		}
		p.mu.Unlock()
	}
}

// clientIP prefers the first X-Forwarded-For entry, falling back to the
// connection's remote address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first, _, found := strings.Cut(fwd, ","); found || first != "" {
			return strings.TrimSpace(first)
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
