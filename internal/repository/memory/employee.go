package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/employee"
)

type employeeRepository struct {
	store *Store
	now   func() time.Time
}

func NewEmployeeRepository(s *Store) employee.EmployeeRepository {
	return &employeeRepository{store: s, now: time.Now}
}

func (r *employeeRepository) GetByUserID(ctx context.Context, userID int64) (employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	emp, ok := r.store.employees[userID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *employeeRepository) Upsert(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.now()
	if existing, ok := r.store.employees[emp.UserID]; ok {
		existing.Name = emp.Name
		existing.UpdatedAt = now
		keep(ctx, r.store.employees, emp.UserID)
		r.store.employees[emp.UserID] = existing
		return existing, nil
	}

	if emp.ExpectedStartTime == "" {
		emp.ExpectedStartTime = employee.DefaultExpectedStartTime
	}
	emp.RegisteredAt = now
	emp.UpdatedAt = now
	keep(ctx, r.store.employees, emp.UserID)
	keep(ctx, r.store.employeeAt, emp.UserID)
	r.store.employees[emp.UserID] = emp
	r.store.employeeAt[emp.UserID] = r.store.next()
	return emp, nil
}

func (r *employeeRepository) UpdateExpectedStart(ctx context.Context, userID int64, expectedStart string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	emp, ok := r.store.employees[userID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.ExpectedStartTime = expectedStart
	emp.UpdatedAt = r.now()
	keep(ctx, r.store.employees, userID)
	r.store.employees[userID] = emp
	return nil
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	list := make([]employee.Employee, 0, len(r.store.employees))
	for _, emp := range r.store.employees {
		list = append(list, emp)
	}
	sort.Slice(list, func(i, j int) bool {
		return r.store.employeeAt[list[i].UserID] < r.store.employeeAt[list[j].UserID]
	})
	return list, nil
}

type conversationRepository struct {
	store *Store
}

func NewConversationRepository(s *Store) employee.ConversationRepository {
	return &conversationRepository{store: s}
}

func (r *conversationRepository) GetState(ctx context.Context, userID int64) (employee.ConversationState, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.conversations[userID], nil
}

func (r *conversationRepository) SetState(ctx context.Context, userID int64, state employee.ConversationState) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	keep(ctx, r.store.conversations, userID)
	r.store.conversations[userID] = state
	return nil
}
