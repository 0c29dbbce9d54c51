package employee

import (
	"context"
	"testing"

	"github.com/amit-109/AttendanceApp-backend/internal/domain/employee"
	"github.com/amit-109/AttendanceApp-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmployeeFixture() (employee.EmployeeService, *memory.EmployeeRepository) {
	repo := memory.NewEmployeeRepository()
	return NewEmployeeService(repo), repo
}

func TestEmployeeService_Create_Success(t *testing.T) {
	svc, repo := newEmployeeFixture()

	resp, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:     "John Doe",
		Email:    "John@Example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, "John Doe", resp.Name)
	assert.Equal(t, "john@example.com", resp.Email)
	assert.Equal(t, "employee", resp.Role)
	assert.True(t, resp.IsActive)

	// The stored hash must verify against the original password and never
	// appear in the response.
	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestEmployeeService_Create_DuplicateEmail(t *testing.T) {
	svc, _ := newEmployeeFixture()

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name: "John Doe", Email: "john@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name: "Jane Doe", Email: "john@example.com", Password: "password456",
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeService_Create_Invalid(t *testing.T) {
	svc, _ := newEmployeeFixture()

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name: "J", Email: "not-an-email", Password: "123",
	})
	assert.Error(t, err)
}

func TestEmployeeService_Update_PartialFields(t *testing.T) {
	svc, _ := newEmployeeFixture()

	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name: "John Doe", Email: "john@example.com", Password: "password123",
	})
	require.NoError(t, err)

	newName := "Johnny Doe"
	updated, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID:   created.ID,
		Name: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, "Johnny Doe", updated.Name)
	assert.Equal(t, "john@example.com", updated.Email)
}

func TestEmployeeService_Update_EmailTaken(t *testing.T) {
	svc, _ := newEmployeeFixture()

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name: "John Doe", Email: "john@example.com", Password: "password123",
	})
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name: "Jane Doe", Email: "jane@example.com", Password: "password123",
	})
	require.NoError(t, err)

	takenEmail := "john@example.com"
	_, err = svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID:    second.ID,
		Email: &takenEmail,
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeService_Deactivate(t *testing.T) {
	svc, _ := newEmployeeFixture()

	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name: "John Doe", Email: "john@example.com", Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(context.Background(), created.ID))

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	// Deactivating again is a no-op.
	require.NoError(t, svc.Deactivate(context.Background(), created.ID))
}

func TestEmployeeService_Deactivate_NotFound(t *testing.T) {
	svc, _ := newEmployeeFixture()

	err := svc.Deactivate(context.Background(), "c1c7c5de-9b86-4b0f-9d26-3e5bfbf0e4a7")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_List_OnlyEmployees(t *testing.T) {
	svc, repo := newEmployeeFixture()

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name: "John Doe", Email: "john@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), employee.Employee{
		Name: "Admin", Email: "admin@example.com", PasswordHash: "hash",
		Role: employee.RoleAdmin, IsActive: true,
	})
	require.NoError(t, err)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "employee", list[0].Role)
}
