package readmodel

import (
	"time"

	"household-services/internal/domain/service"

	"github.com/google/uuid"
)

type ServiceRM struct {
	ID          uuid.UUID `json:"id"`
	VendorID    uuid.UUID `json:"vendorId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewServiceRM(s *service.Service) *ServiceRM {
	if s == nil {
		return nil
	}
	return &ServiceRM{
		ID:          s.ID(),
		VendorID:    s.VendorID(),
		Name:        s.Name(),
		Description: s.Description(),
		Price:       s.Price(),
		Status:      s.Status().String(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}
