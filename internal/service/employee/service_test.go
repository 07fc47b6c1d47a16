package employee

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/access"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/user"
	"github.com/dayflow-hris/workforce-backend-go/internal/fixtures"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/clock"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/kvstore"
	"github.com/dayflow-hris/workforce-backend-go/internal/repository/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestService() (employee.DirectoryService, employee.RegisteredRepository) {
	store := kvstore.NewMemory()
	registered := kv.NewRegisteredEmployeeRepository(store)
	svc := NewEmployeeService(fixtures.SeedEmployees(), registered, kv.NewProfileRepository(store), clock.Fixed(testNow))
	return svc, registered
}

func strPtr(s string) *string { return &s }

var (
	admin = access.Subject{Authenticated: true, EmployeeID: "EMP002", Role: user.RoleAdmin}
	john  = access.Subject{Authenticated: true, EmployeeID: "EMP001", Role: user.RoleEmployee}
)

func validRegistration() employee.RegisterEmployeeRequest {
	return employee.RegisterEmployeeRequest{
		EmployeeID: "EMP010",
		Name:       "Carol King",
		Email:      "Carol.King@dayflow.com",
		Department: "Sales",
		Password:   "password123",
	}
}

func TestEmployeeService_ListSeed(t *testing.T) {
	svc, _ := newTestService()

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "EMP001", all[0].EmployeeID)
	assert.Equal(t, "EMP005", all[4].EmployeeID)
}

func TestEmployeeService_Register(t *testing.T) {
	ctx := context.Background()
	svc, registered := newTestService()

	resp, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	assert.Equal(t, "carol.king@dayflow.com", resp.Email)
	assert.Equal(t, "employee", resp.Role)
	assert.True(t, resp.NeedsOnboarding)

	stored, err := registered.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored[0].PasswordHash), []byte("password123")))
	assert.True(t, testNow.Equal(stored[0].RegisteredAt))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.Equal(t, "EMP010", all[5].EmployeeID)
}

func TestEmployeeService_RegisterDuplicates(t *testing.T) {
	ctx := context.Background()

	t.Run("employee id of a seed employee", func(t *testing.T) {
		svc, _ := newTestService()
		req := validRegistration()
		req.EmployeeID = "emp001"

		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)
	})

	t.Run("email of a seed employee", func(t *testing.T) {
		svc, _ := newTestService()
		req := validRegistration()
		req.Email = "JOHN.DOE@dayflow.com"

		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, employee.ErrEmailExists)
	})

	t.Run("registered twice", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Register(ctx, validRegistration())
		require.NoError(t, err)

		_, err = svc.Register(ctx, validRegistration())
		assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)
	})

	t.Run("invalid request", func(t *testing.T) {
		svc, _ := newTestService()
		req := validRegistration()
		req.Password = "short"

		_, err := svc.Register(ctx, req)
		assert.Error(t, err)
	})
}

func TestEmployeeService_Search(t *testing.T) {
	svc, _ := newTestService()

	result, err := svc.Search(context.Background(), employee.SearchFilter{Department: "engineering"})
	require.NoError(t, err)
	require.Len(t, result, 2)

	result, err = svc.Search(context.Background(), employee.SearchFilter{Query: "alice"})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "EMP004", result[0].EmployeeID)
}

func TestEmployeeService_UpsertSelf(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	resp, err := svc.Upsert(ctx, john, employee.UpdateEmployeeRequest{
		EmployeeID: "EMP001",
		Phone:      strPtr("+1-555-9999"),
	})
	require.NoError(t, err)
	assert.Equal(t, "+1-555-9999", *resp.Phone)

	got, err := svc.Get(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, "+1-555-9999", *got.Phone)
	assert.Equal(t, "123 Main St, San Francisco, CA", *got.Address)
}

func TestEmployeeService_UpsertDenied(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	t.Run("employee changes own department", func(t *testing.T) {
		_, err := svc.Upsert(ctx, john, employee.UpdateEmployeeRequest{
			EmployeeID: "EMP001",
			Department: strPtr("Sales"),
		})
		var denied *access.DeniedError
		require.ErrorAs(t, err, &denied)
		assert.Equal(t, access.FieldDepartment, denied.Field)
	})

	t.Run("employee edits someone else", func(t *testing.T) {
		_, err := svc.Upsert(ctx, john, employee.UpdateEmployeeRequest{
			EmployeeID: "EMP004",
			Phone:      strPtr("+1-555-9999"),
		})
		assert.ErrorIs(t, err, access.ErrAccessDenied)
	})

	t.Run("email is immutable", func(t *testing.T) {
		_, err := svc.Upsert(ctx, admin, employee.UpdateEmployeeRequest{
			EmployeeID: "EMP001",
			Email:      strPtr("x@dayflow.com"),
		})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, access.ErrAccessDenied)
	})

	got, err := svc.Get(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, "Engineering", got.Department)
}

func TestEmployeeService_UpsertAdmin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	role := user.RoleAdmin
	resp, err := svc.Upsert(ctx, admin, employee.UpdateEmployeeRequest{
		EmployeeID: "EMP004",
		Department: strPtr("Finance"),
		Role:       &role,
	})
	require.NoError(t, err)
	assert.Equal(t, "Finance", resp.Department)
	assert.Equal(t, "admin", resp.Role)

	_, err = svc.Upsert(ctx, admin, employee.UpdateEmployeeRequest{EmployeeID: "EMP004"})
	assert.ErrorIs(t, err, employee.ErrNothingToUpdate)

	_, err = svc.Upsert(ctx, admin, employee.UpdateEmployeeRequest{EmployeeID: "EMP999", Name: strPtr("Ghost")})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_CompleteOnboarding(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	resp, err := svc.CompleteOnboarding(ctx, employee.CompleteOnboardingRequest{
		EmployeeID: "EMP003",
		Phone:      "+1-555-0127",
		Address:    "1 Market St, San Francisco, CA",
	})
	require.NoError(t, err)
	assert.False(t, resp.NeedsOnboarding)
	assert.Equal(t, "+1-555-0127", *resp.Phone)

	got, err := svc.Get(ctx, "EMP003")
	require.NoError(t, err)
	assert.False(t, got.NeedsOnboarding)

	_, err = svc.CompleteOnboarding(ctx, employee.CompleteOnboardingRequest{
		EmployeeID: "EMP003",
		Phone:      "+1-555-0127",
		Address:    "elsewhere",
	})
	assert.ErrorIs(t, err, employee.ErrOnboardingCompleted)
}

func TestEmployeeService_CompleteOnboardingRequiresContact(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CompleteOnboarding(context.Background(), employee.CompleteOnboardingRequest{EmployeeID: "EMP003"})
	assert.Error(t, err)
}
