package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/employee"
	employeemock "github.com/cmlabs-hris/presence-bot-go/internal/domain/employee/mock"
	"github.com/cmlabs-hris/presence-bot-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupService(t *testing.T) (employee.EmployeeService, employee.EmployeeRepository) {
	t.Helper()
	store := memory.NewStore()
	employees := memory.NewEmployeeRepository(store)
	svc := NewEmployeeService(store.Transactor(), employees, memory.NewConversationRepository(store), time.UTC)
	return svc, employees
}

func TestRegistrationConversation(t *testing.T) {
	svc, employees := setupService(t)
	ctx := context.Background()

	resp, err := svc.Start(ctx, employee.StartRequest{UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, employee.StateAwaitingName, resp.State)
	assert.Equal(t, MessageAskName, resp.Message)
	assert.Empty(t, resp.Menu)

	resp, err = svc.SubmitName(ctx, employee.SubmitNameRequest{UserID: 7, Name: "  Мария  "})
	require.NoError(t, err)
	assert.Equal(t, employee.StateReady, resp.State)
	assert.Equal(t, "Спасибо, Мария!", resp.Message)
	assert.Equal(t, employee.MainMenu, resp.Menu)

	emp, err := employees.GetByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Мария", emp.Name)
	assert.Equal(t, "10:00", emp.ExpectedStartTime)

	resp, err = svc.Start(ctx, employee.StartRequest{UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, employee.StateReady, resp.State)
	assert.Equal(t, MessageChooseMenu, resp.Message)
}

func TestSubmitName_RequiresAwaitingState(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.SubmitName(context.Background(), employee.SubmitNameRequest{UserID: 7, Name: "Мария"})
	assert.ErrorIs(t, err, employee.ErrNameNotExpected)

	_, err = svc.SubmitName(context.Background(), employee.SubmitNameRequest{UserID: 7, Name: "   "})
	assert.Error(t, err)
}

func TestReregistrationKeepsExpectedStart(t *testing.T) {
	svc, employees := setupService(t)
	ctx := context.Background()

	_, err := svc.Start(ctx, employee.StartRequest{UserID: 7})
	require.NoError(t, err)
	_, err = svc.SubmitName(ctx, employee.SubmitNameRequest{UserID: 7, Name: "Мария"})
	require.NoError(t, err)

	updated, err := svc.SetExpectedStart(ctx, employee.UpdateExpectedStartRequest{UserID: 7, ExpectedStart: "09:15"})
	require.NoError(t, err)
	assert.Equal(t, "09:15", updated.ExpectedStartTime)

	resp, err := svc.Start(ctx, employee.StartRequest{UserID: 7, Reregister: true})
	require.NoError(t, err)
	assert.Equal(t, employee.StateAwaitingName, resp.State)
	_, err = svc.SubmitName(ctx, employee.SubmitNameRequest{UserID: 7, Name: "Мария Петрова"})
	require.NoError(t, err)

	emp, err := employees.GetByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Мария Петрова", emp.Name)
	assert.Equal(t, "09:15", emp.ExpectedStartTime)
}

func TestSetExpectedStart_Errors(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.SetExpectedStart(ctx, employee.UpdateExpectedStartRequest{UserID: 7, ExpectedStart: "25:00"})
	assert.Error(t, err)

	_, err = svc.SetExpectedStart(ctx, employee.UpdateExpectedStartRequest{UserID: 7, ExpectedStart: "09:00"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestList_RegistrationOrder(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	for _, id := range []int64{3, 1, 2} {
		_, err := svc.Start(ctx, employee.StartRequest{UserID: id})
		require.NoError(t, err)
		_, err = svc.SubmitName(ctx, employee.SubmitNameRequest{UserID: id, Name: "e"})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, int64(3), list[0].UserID)
	assert.Equal(t, int64(1), list[1].UserID)
	assert.Equal(t, int64(2), list[2].UserID)
}

func TestStart_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	employees := employeemock.NewMockEmployeeRepository(ctrl)
	conversations := employeemock.NewMockConversationRepository(ctrl)
	svc := NewEmployeeService(memory.NewStore().Transactor(), employees, conversations, nil)

	boom := errors.New("timeout")
	employees.EXPECT().GetByUserID(gomock.Any(), int64(7)).Return(employee.Employee{}, boom)

	_, err := svc.Start(context.Background(), employee.StartRequest{UserID: 7})
	assert.ErrorIs(t, err, boom)
}
