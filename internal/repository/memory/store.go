// Package memory keeps every record family in process memory. It backs
// STORAGE_DRIVER=memory for local runs and the service flow tests.
package memory

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/action"
	"github.com/cmlabs-hris/presence-bot-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-bot-go/internal/domain/employee"
	"github.com/cmlabs-hris/presence-bot-go/internal/domain/tardiness"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/database"
)

type txKey struct{}

// Store holds the shared tables. Transactions are serialized on txMu and
// roll back by undoing only their own writes, so writes made outside the
// transaction survive a rollback.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	employees     map[int64]employee.Employee
	conversations map[int64]employee.ConversationState
	pending       map[int64]action.Action
	attendances   map[string]attendance.Attendance
	tardiness     map[string]tardiness.TardinessEvent

	// registration and insertion sequence numbers keep list order stable
	seq        int64
	employeeAt map[int64]int64
	recordAt   map[string]int64
}

func NewStore() *Store {
	return &Store{
		employees:     make(map[int64]employee.Employee),
		conversations: make(map[int64]employee.ConversationState),
		pending:       make(map[int64]action.Action),
		attendances:   make(map[string]attendance.Attendance),
		tardiness:     make(map[string]tardiness.TardinessEvent),
		employeeAt:    make(map[int64]int64),
		recordAt:      make(map[string]int64),
	}
}

// undoLog collects the inverse of every write made inside one transaction
type undoLog struct {
	ops []func()
}

// keep records how to put m[k] back the way it is now. Callers hold s.mu.
func keep[K comparable, V any](ctx context.Context, m map[K]V, k K) {
	log, ok := ctx.Value(txKey{}).(*undoLog)
	if !ok {
		return
	}
	old, had := m[k]
	log.ops = append(log.ops, func() {
		if had {
			m[k] = old
		} else {
			delete(m, k)
		}
	})
}

func (s *Store) rollback(log *undoLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(log.ops) - 1; i >= 0; i-- {
		log.ops[i]()
	}
}

func (s *Store) next() int64 {
	s.seq++
	return s.seq
}

// Transactor returns the database.Transactor over this store
func (s *Store) Transactor() database.Transactor {
	return &transactor{store: s}
}

type transactor struct {
	store *Store
}

func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	t.store.txMu.Lock()
	defer t.store.txMu.Unlock()

	log := &undoLog{}
	defer func() {
		if p := recover(); p != nil {
			t.store.rollback(log)
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, log)); err != nil {
		t.store.rollback(log)
		return err
	}
	return nil
}
