package repository

import (
	"context"

	"household-services/internal/domain/user"
	"household-services/internal/infra"
	sqlc "household-services/internal/infra/sqlc/generated"
	"household-services/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
}

type UserRepository struct {
	queries UserQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toUser(row)
}

func toUser(row sqlc.Users) (*user.User, error) {
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user has an unknown role", err)
	}

	// A malformed stored address only loses the display-name fallback.
	email, err := user.NewEmail(row.Email)
	if err != nil {
		email = user.Email{}
	}

	return user.ReconstructUser(row.ID, email, row.Name, pgconv.StringFromPgtype(row.Phone), role), nil
}
