package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/employee"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/database"
)

const (
	MessageAskName    = "Привет! Как тебя зовут?"
	MessageChooseMenu = "Выберите действие:"
	messageThanks     = "Спасибо, %s!"
)

type EmployeeServiceImpl struct {
	tx               database.Transactor
	employeeRepo     employee.EmployeeRepository
	conversationRepo employee.ConversationRepository
	loc              *time.Location
}

func NewEmployeeService(
	tx database.Transactor,
	employeeRepo employee.EmployeeRepository,
	conversationRepo employee.ConversationRepository,
	loc *time.Location,
) employee.EmployeeService {
	if loc == nil {
		loc = time.UTC
	}
	return &EmployeeServiceImpl{
		tx:               tx,
		employeeRepo:     employeeRepo,
		conversationRepo: conversationRepo,
		loc:              loc,
	}
}

// Start implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Start(ctx context.Context, req employee.StartRequest) (employee.ConversationResponse, error) {
	registered := true
	if _, err := s.employeeRepo.GetByUserID(ctx, req.UserID); err != nil {
		if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ConversationResponse{}, fmt.Errorf("failed to get employee: %w", err)
		}
		registered = false
	}

	if registered && !req.Reregister {
		if err := s.conversationRepo.SetState(ctx, req.UserID, employee.StateReady); err != nil {
			return employee.ConversationResponse{}, fmt.Errorf("failed to set conversation state: %w", err)
		}
		return menuResponse(MessageChooseMenu), nil
	}

	if err := s.conversationRepo.SetState(ctx, req.UserID, employee.StateAwaitingName); err != nil {
		return employee.ConversationResponse{}, fmt.Errorf("failed to set conversation state: %w", err)
	}

	return employee.ConversationResponse{
		State:   employee.StateAwaitingName,
		Message: MessageAskName,
	}, nil
}

// SubmitName implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SubmitName(ctx context.Context, req employee.SubmitNameRequest) (employee.ConversationResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.ConversationResponse{}, err
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		state, err := s.conversationRepo.GetState(ctx, req.UserID)
		if err != nil {
			return fmt.Errorf("failed to get conversation state: %w", err)
		}
		if state != employee.StateAwaitingName {
			return employee.ErrNameNotExpected
		}

		emp, err := s.employeeRepo.Upsert(ctx, employee.Employee{
			UserID:            req.UserID,
			Name:              req.Name,
			ExpectedStartTime: employee.DefaultExpectedStartTime,
		})
		if err != nil {
			return fmt.Errorf("failed to save employee: %w", err)
		}

		if err := s.conversationRepo.SetState(ctx, req.UserID, employee.StateReady); err != nil {
			return fmt.Errorf("failed to set conversation state: %w", err)
		}

		slog.Info("employee registered", "user_id", emp.UserID, "expected_start_time", emp.ExpectedStartTime)
		return nil
	})
	if err != nil {
		return employee.ConversationResponse{}, err
	}

	return menuResponse(fmt.Sprintf(messageThanks, req.Name)), nil
}

// SetExpectedStart implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SetExpectedStart(ctx context.Context, req employee.UpdateExpectedStartRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.UpdateExpectedStart(ctx, req.UserID, req.ExpectedStart); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update expected start: %w", err)
	}

	emp, err := s.employeeRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return s.toResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, s.toResponse(emp))
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		UserID:            emp.UserID,
		Name:              emp.Name,
		ExpectedStartTime: emp.ExpectedStartTime,
		RegisteredAt:      emp.RegisteredAt.In(s.loc).Format(time.RFC3339),
	}
}

func menuResponse(message string) employee.ConversationResponse {
	return employee.ConversationResponse{
		State:   employee.StateReady,
		Message: message,
		Menu:    employee.MainMenu,
	}
}
