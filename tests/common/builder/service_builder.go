//go:build unit || e2e

package builder

import (
	"strconv"
	"time"

	"household-services/internal/domain/service"
	sqlc "household-services/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ServiceBuilder struct {
	ID          uuid.UUID
	VendorID    uuid.UUID
	Name        string
	Description string
	Price       float64
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewServiceBuilder() *ServiceBuilder {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return &ServiceBuilder{
		ID:          uuid.New(),
		VendorID:    uuid.New(),
		Name:        "Deep Cleaning",
		Description: "Whole apartment deep cleaning",
		Price:       120.5,
		Status:      string(service.StatusApproved),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(s)
	return s
}

func (s *ServiceBuilder) BuildDomain() *service.Service {
	svc, err := service.ReconstructService(
		s.ID, s.VendorID, s.Name, s.Description, s.Price,
		service.Status(s.Status), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		panic(err)
	}
	return svc
}

func (s *ServiceBuilder) BuildInfra() sqlc.Services {
	var price pgtype.Numeric
	if err := price.Scan(strconv.FormatFloat(s.Price, 'f', 2, 64)); err != nil {
		panic(err)
	}

	return sqlc.Services{
		ID:          s.ID,
		VendorID:    s.VendorID,
		Name:        s.Name,
		Description: s.Description,
		Price:       price,
		Status:      s.Status,
		CreatedAt:   pgtype.Timestamptz{Time: s.CreatedAt, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: s.UpdatedAt, Valid: true},
	}
}

func (s *ServiceBuilder) WithID(id uuid.UUID) *ServiceBuilder {
	s.ID = id
	return s
}

func (s *ServiceBuilder) WithVendorID(id uuid.UUID) *ServiceBuilder {
	s.VendorID = id
	return s
}

func (s *ServiceBuilder) WithName(name string) *ServiceBuilder {
	s.Name = name
	return s
}

func (s *ServiceBuilder) AsPending() *ServiceBuilder {
	s.Status = string(service.StatusPending)
	return s
}

func (s *ServiceBuilder) AsRejected() *ServiceBuilder {
	s.Status = string(service.StatusRejected)
	return s
}
