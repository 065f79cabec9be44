package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/employee"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByUserID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID int64) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT user_id, name, expected_start_time, registered_at, updated_at
		FROM employees
		WHERE user_id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, userID).Scan(
		&emp.UserID, &emp.Name, &emp.ExpectedStartTime, &emp.RegisteredAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %d: %w", userID, err)
	}

	return emp, nil
}

// Upsert implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Upsert(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	if emp.ExpectedStartTime == "" {
		emp.ExpectedStartTime = employee.DefaultExpectedStartTime
	}

	query := `
		INSERT INTO employees (user_id, name, expected_start_time)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET name = EXCLUDED.name, updated_at = NOW()
		RETURNING user_id, name, expected_start_time, registered_at, updated_at
	`

	var saved employee.Employee
	err := q.QueryRow(ctx, query, emp.UserID, emp.Name, emp.ExpectedStartTime).Scan(
		&saved.UserID, &saved.Name, &saved.ExpectedStartTime, &saved.RegisteredAt, &saved.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to upsert employee %d: %w", emp.UserID, err)
	}

	return saved, nil
}

// UpdateExpectedStart implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdateExpectedStart(ctx context.Context, userID int64, expectedStart string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `
		UPDATE employees
		SET expected_start_time = $1, updated_at = NOW()
		WHERE user_id = $2
	`, expectedStart, userID)
	if err != nil {
		return fmt.Errorf("failed to update expected start for employee %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, `
		SELECT user_id, name, expected_start_time, registered_at, updated_at
		FROM employees
		ORDER BY registered_at, user_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.UserID, &emp.Name, &emp.ExpectedStartTime, &emp.RegisteredAt, &emp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}
