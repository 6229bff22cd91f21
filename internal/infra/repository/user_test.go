//go:build unit

package repository

import (
	"context"
	"testing"

	"household-services/internal/domain/user"
	"household-services/internal/infra"
	"household-services/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindByID(t *testing.T) {
	userID := uuid.New()

	t.Run("success: vendor with phone", func(t *testing.T) {
		db := new(mockDBTX)
		queries := new(MockUserQueries)
		queries.On("FindUserByID", mock.Anything, db, userID).
			Return(builder.NewUserBuilder().WithID(userID).AsVendor().BuildInfra(), nil)

		got, err := NewUserRepository(queries, db).FindByID(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, user.RoleVendor, got.Role())
		assert.Equal(t, "Acme Cleaning", got.DisplayName("Vendor"))
		assert.Equal(t, "+1-555-0199", got.ContactPhone())
		queries.AssertExpectations(t)
	})

	t.Run("success: NULL phone and blank name fall back", func(t *testing.T) {
		db := new(mockDBTX)
		queries := new(MockUserQueries)
		queries.On("FindUserByID", mock.Anything, db, userID).
			Return(builder.NewUserBuilder().WithID(userID).WithName("").WithPhone("").BuildInfra(), nil)

		got, err := NewUserRepository(queries, db).FindByID(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, "jane.doe", got.DisplayName("Customer"))
		assert.Equal(t, "Not provided", got.ContactPhone())
	})

	t.Run("success: malformed stored email only loses the fallback", func(t *testing.T) {
		db := new(mockDBTX)
		queries := new(MockUserQueries)
		queries.On("FindUserByID", mock.Anything, db, userID).
			Return(builder.NewUserBuilder().WithID(userID).WithName("").WithEmail("not-an-email").BuildInfra(), nil)

		got, err := NewUserRepository(queries, db).FindByID(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, "Customer", got.DisplayName("Customer"))
	})

	tests := []struct {
		name      string
		mockError error
		role      string
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "not found", mockError: pgx.ErrNoRows, role: "customer", wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, role: "customer", wantKind: infra.KindDBFailure},
		{name: "unknown stored role", role: "superuser", wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(mockDBTX)
			queries := new(MockUserQueries)
			queries.On("FindUserByID", mock.Anything, db, userID).
				Return(builder.NewUserBuilder().WithID(userID).WithRole(tt.role).BuildInfra(), tt.mockError)

			got, err := NewUserRepository(queries, db).FindByID(context.Background(), userID)

			assert.Nil(t, got)
			assert.True(t, infra.IsKind(err, tt.wantKind))
		})
	}
}
