package crawl

import (
	"context"
	"sync"

	"github.com/akraszewski/webdoc"
	"golang.org/x/time/rate"
)

var _ webdoc.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter throttles requests per domain with token buckets.
// Domains are independent of each other, so a crawl spanning several
// hosts proceeds concurrently while each host sees at most rps
// requests per second.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per
// second per domain, with no bursting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until a request to domain is allowed, or until ctx is
// canceled. Unknown domains get a fresh bucket on first use.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
