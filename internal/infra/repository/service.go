package repository

import (
	"context"

	"household-services/internal/domain/service"
	"household-services/internal/infra"
	sqlc "household-services/internal/infra/sqlc/generated"
	"household-services/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ServiceQueries interface {
	FindServiceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Services, error)
	UpdateServiceStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateServiceStatusParams) (int64, error)
	DeleteService(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ServiceRepository struct {
	queries ServiceQueries
	db      sqlc.DBTX
}

func NewServiceRepository(queries ServiceQueries, db sqlc.DBTX) *ServiceRepository {
	return &ServiceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	row, err := r.queries.FindServiceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}

	return toService(row)
}

func (r *ServiceRepository) UpdateStatus(ctx context.Context, svc *service.Service) error {
	affected, err := r.queries.UpdateServiceStatus(ctx, r.db, sqlc.UpdateServiceStatusParams{
		ID:        svc.ID(),
		Status:    svc.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(svc.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update service status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteService(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete service", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

func toService(row sqlc.Services) (*service.Service, error) {
	price, err := pgconv.Float64FromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("stored service has an invalid price", err)
	}

	svc, err := service.ReconstructService(
		row.ID,
		row.VendorID,
		row.Name,
		row.Description,
		price,
		service.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("stored service is invalid", err)
	}
	return svc, nil
}
