package cache

import (
	"context"
	"sync"
	"time"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/report"
)

type memoryEntry struct {
	report    report.TardinessReport
	expiresAt time.Time
}

// MemoryReportCache is the single-process fallback used when Redis is not configured.
type MemoryReportCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[int64]memoryEntry
	now     func() time.Time
}

func NewMemoryReportCache(ttl time.Duration) *MemoryReportCache {
	return &MemoryReportCache{
		ttl:     ttl,
		entries: make(map[int64]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryReportCache) Put(_ context.Context, requesterID int64, r report.TardinessReport) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[requesterID] = memoryEntry{report: r, expiresAt: c.now().Add(c.ttl)}
	return nil
}

func (c *MemoryReportCache) Take(_ context.Context, requesterID int64) (report.TardinessReport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[requesterID]
	if !ok {
		return report.TardinessReport{}, report.ErrReportNotFound
	}
	delete(c.entries, requesterID)

	if !c.now().Before(e.expiresAt) {
		return report.TardinessReport{}, report.ErrReportNotFound
	}
	return e.report, nil
}

// Sweep drops expired entries and returns how many were removed.
func (c *MemoryReportCache) Sweep(_ context.Context) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for id, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, id)
			removed++
		}
	}
	return removed
}

func (c *MemoryReportCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
