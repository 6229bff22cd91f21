//go:build unit

package service_test

import (
	"testing"
	"time"

	"household-services/internal/domain/service"
	"household-services/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstructService(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		svc, err := service.ReconstructService(uuid.New(), uuid.New(), "n", "d", 1, service.Status("archived"), time.Now(), time.Now())
		require.ErrorIs(t, err, service.ErrInvalidStatus)
		assert.Nil(t, svc)
	})

	t.Run("only approved services are bookable", func(t *testing.T) {
		assert.True(t, builder.NewServiceBuilder().BuildDomain().IsBookable())
		assert.False(t, builder.NewServiceBuilder().AsPending().BuildDomain().IsBookable())
		assert.False(t, builder.NewServiceBuilder().AsRejected().BuildDomain().IsBookable())
	})
}

func TestService_Approve(t *testing.T) {
	later := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("pending becomes approved", func(t *testing.T) {
		svc := builder.NewServiceBuilder().AsPending().BuildDomain()

		assert.True(t, svc.Approve(later))
		assert.Equal(t, service.StatusApproved, svc.Status())
		assert.Equal(t, later, svc.UpdatedAt())
	})

	t.Run("approving twice changes nothing", func(t *testing.T) {
		svc := builder.NewServiceBuilder().BuildDomain()
		before := svc.UpdatedAt()

		assert.False(t, svc.Approve(later))
		assert.Equal(t, before, svc.UpdatedAt())
	})
}

func TestService_IsOwnedBy(t *testing.T) {
	vendorID := uuid.New()
	svc := builder.NewServiceBuilder().WithVendorID(vendorID).BuildDomain()

	assert.True(t, svc.IsOwnedBy(vendorID))
	assert.False(t, svc.IsOwnedBy(uuid.New()))
}
