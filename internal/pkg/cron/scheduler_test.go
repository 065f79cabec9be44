package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/report"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/cache"
)

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler(nil)

	var calls int32
	s.AddJob("ok", time.Hour, func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("boom")
	})

	s.RunOnce(context.Background())
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(nil)

	var calls int32
	s.AddJob("tick", 5*time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})

	s.Start()
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()
}

func TestReportCacheJobs_Sweep(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryReportCache(time.Nanosecond)
	_ = c.Put(ctx, 1, report.TardinessReport{})
	time.Sleep(time.Millisecond)

	s := NewScheduler(nil)
	NewReportCacheJobs(c, nil).RegisterJobs(s, time.Minute)
	s.RunOnce(ctx)

	assert.Equal(t, 0, c.Len())
}
