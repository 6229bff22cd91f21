package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidStatus = errors.New("invalid service status")

// Service is a vendor offering. Only approved services can be booked.
type Service struct {
	id          uuid.UUID
	vendorID    uuid.UUID
	name        string
	description string
	price       float64
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func ReconstructService(
	id, vendorID uuid.UUID,
	name, description string,
	price float64,
	status Status,
	createdAt, updatedAt time.Time,
) (*Service, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Service{
		id:          id,
		vendorID:    vendorID,
		name:        name,
		description: description,
		price:       price,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (s *Service) IsBookable() bool {
	return s.status == StatusApproved
}

func (s *Service) IsOwnedBy(vendorID uuid.UUID) bool {
	return s.vendorID == vendorID
}

// Approve reports whether the status actually changed; approving twice is harmless.
func (s *Service) Approve(now time.Time) bool {
	if s.status == StatusApproved {
		return false
	}
	s.status = StatusApproved
	s.updatedAt = now
	return true
}

func (s *Service) ID() uuid.UUID        { return s.id }
func (s *Service) VendorID() uuid.UUID  { return s.vendorID }
func (s *Service) Name() string         { return s.name }
func (s *Service) Description() string  { return s.description }
func (s *Service) Price() float64       { return s.price }
func (s *Service) Status() Status       { return s.status }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }
