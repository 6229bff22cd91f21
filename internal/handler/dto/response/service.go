package response

import (
	"time"

	"household-services/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	VendorID    uuid.UUID `json:"vendorId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ServiceEnvelope struct {
	Message string           `json:"message"`
	Service *ServiceResponse `json:"service,omitempty"`
}

func FromServiceRM(rm *readmodel.ServiceRM) (*ServiceResponse, error) {
	resp := &ServiceResponse{}
	if err := copier.Copy(resp, rm); err != nil {
		return nil, err
	}
	return resp, nil
}
