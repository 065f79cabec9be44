package tardiness

import (
	"context"
	"time"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

type TardinessRepository interface {
	Create(ctx context.Context, event TardinessEvent) (TardinessEvent, error)

	// ListBetween returns events whose date is within [from, to], both inclusive
	ListBetween(ctx context.Context, from, to time.Time) ([]TardinessEvent, error)
}
