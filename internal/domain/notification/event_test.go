//go:build unit

package notification_test

import (
	"testing"

	"household-services/internal/domain/notification"
	"household-services/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirective_Event(t *testing.T) {
	t.Run("adds the contact under its field", func(t *testing.T) {
		payload := map[string]any{"booking": "b-1"}
		d := notification.Directive{
			Target:       "user-1",
			Kind:         notification.KindBookingNotification,
			Message:      "New booking",
			ContactField: "customerPhone",
			ContactPhone: "+1-555-0100",
		}

		e := d.Event(payload)

		assert.Equal(t, "user-1", e.Target)
		assert.Equal(t, notification.KindBookingNotification, e.Kind)
		assert.Equal(t, "New booking", e.Message)
		assert.Equal(t, map[string]any{"booking": "b-1", "customerPhone": "+1-555-0100"}, e.Payload)
		assert.Len(t, payload, 1, "caller payload must not be modified")
	})

	t.Run("no contact field", func(t *testing.T) {
		d := notification.Directive{Target: "user-1", Kind: notification.KindBookingStatusChanged, Message: "m"}

		e := d.Event(nil)

		assert.Empty(t, e.Payload)
		assert.False(t, e.IsBroadcast())
	})
}

func TestNewBroadcast(t *testing.T) {
	e := notification.NewBroadcast(notification.KindAnnouncement, "Maintenance tonight", nil)

	assert.True(t, e.IsBroadcast())
	assert.Equal(t, notification.Broadcast, e.Target)
	require.NoError(t, e.Validate())
}

func TestEvent_Validate(t *testing.T) {
	tests := []struct {
		name    string
		event   notification.Event
		wantErr bool
	}{
		{name: "addressed", event: notification.NewEvent("user-1", notification.KindServiceNotification, "m", nil)},
		{name: "empty message is allowed", event: notification.NewEvent("user-1", notification.KindServiceNotification, "", nil)},
		{name: "missing target", event: notification.NewEvent("", notification.KindServiceNotification, "m", nil), wantErr: true},
		{name: "blank target", event: notification.NewEvent("  ", notification.KindServiceNotification, "m", nil), wantErr: true},
		{name: "missing kind", event: notification.NewEvent("user-1", "", "m", nil), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
