//go:build unit

package repository

import (
	"context"

	sqlc "household-services/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// mockDBTX is only handed through to the queries; repositories never call it directly.
type mockDBTX struct {
	mock.Mock
}

func (m *mockDBTX) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *mockDBTX) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *mockDBTX) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

type MockBookingQueries struct {
	mock.Mock
}

func (m *MockBookingQueries) CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockBookingQueries) FindBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindBookingByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.FindBookingByIDRow), args.Error(1)
}

func (m *MockBookingQueries) ListBookingsByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.ListBookingsByCustomerRow, error) {
	args := m.Called(ctx, db, customerID)
	rows, _ := args.Get(0).([]sqlc.ListBookingsByCustomerRow)
	return rows, args.Error(1)
}

func (m *MockBookingQueries) ListBookingsByVendor(ctx context.Context, db sqlc.DBTX, vendorID uuid.UUID) ([]sqlc.ListBookingsByVendorRow, error) {
	args := m.Called(ctx, db, vendorID)
	rows, _ := args.Get(0).([]sqlc.ListBookingsByVendorRow)
	return rows, args.Error(1)
}

func (m *MockBookingQueries) UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

type MockServiceQueries struct {
	mock.Mock
}

func (m *MockServiceQueries) FindServiceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Services, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Services), args.Error(1)
}

func (m *MockServiceQueries) UpdateServiceStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateServiceStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockServiceQueries) DeleteService(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserQueries struct {
	mock.Mock
}

func (m *MockUserQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}
