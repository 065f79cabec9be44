package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/report"
)

func TestRedisReportCache_Put(t *testing.T) {
	ctx := context.Background()
	rdb, mock := redismock.NewClientMock()
	c := NewRedisReportCache(rdb, 30*time.Minute)

	payload, err := json.Marshal(sampleReport(7))
	require.NoError(t, err)

	mock.ExpectSet(ReportKey(1187398378), payload, 30*time.Minute).SetVal("OK")

	require.NoError(t, c.Put(ctx, 1187398378, sampleReport(7)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisReportCache_Take(t *testing.T) {
	ctx := context.Background()
	rdb, mock := redismock.NewClientMock()
	c := NewRedisReportCache(rdb, 30*time.Minute)

	payload, err := json.Marshal(sampleReport(7))
	require.NoError(t, err)

	t.Run("hit", func(t *testing.T) {
		mock.ExpectGetDel(ReportKey(5)).SetVal(string(payload))

		got, err := c.Take(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, sampleReport(7), got)
	})

	t.Run("miss", func(t *testing.T) {
		mock.ExpectGetDel(ReportKey(5)).RedisNil()

		_, err := c.Take(ctx, 5)
		assert.ErrorIs(t, err, report.ErrReportNotFound)
	})

	t.Run("redis down", func(t *testing.T) {
		mock.ExpectGetDel(ReportKey(5)).SetErr(errors.New("connection refused"))

		_, err := c.Take(ctx, 5)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, report.ErrReportNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportKey(t *testing.T) {
	assert.Equal(t, "reports:tardiness:42", ReportKey(42))
}
