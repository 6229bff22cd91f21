package notification

import (
	"maps"
	"strings"

	"household-services/internal/pkg/errs"
)

// Broadcast addresses every connected client regardless of subject.
const Broadcast = "*"

type Kind string

const (
	KindBookingNotification  Kind = "bookingNotification"
	KindBookingStatusChanged Kind = "bookingStatusChanged"
	KindServiceNotification  Kind = "serviceNotification"
	KindServicePublished     Kind = "servicePublished"
	KindServiceDeleted       Kind = "serviceDeleted"
	KindAnnouncement         Kind = "announcement"
)

func (k Kind) String() string {
	return string(k)
}

// Directive says who must be told what. Producing one never delivers anything.
// ContactField names the payload key that carries ContactPhone, e.g. "vendorPhone".
type Directive struct {
	Target       string
	Kind         Kind
	Message      string
	ContactField string
	ContactPhone string
}

// Event is a transient, fire-and-forget notification.
type Event struct {
	Target  string
	Kind    Kind
	Message string
	Payload map[string]any
}

func NewEvent(target string, kind Kind, message string, payload map[string]any) Event {
	return Event{
		Target:  target,
		Kind:    kind,
		Message: message,
		Payload: payload,
	}
}

func NewBroadcast(kind Kind, message string, payload map[string]any) Event {
	return NewEvent(Broadcast, kind, message, payload)
}

// Event turns the directive into a deliverable event carrying the given payload.
func (d Directive) Event(payload map[string]any) Event {
	p := make(map[string]any, len(payload)+1)
	maps.Copy(p, payload)
	if d.ContactField != "" {
		p[d.ContactField] = d.ContactPhone
	}
	return NewEvent(d.Target, d.Kind, d.Message, p)
}

func (e Event) IsBroadcast() bool {
	return e.Target == Broadcast
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.Target) == "" {
		return errs.Wrap(errs.ErrValidation, "notification target is required")
	}
	if e.Kind == "" {
		return errs.Wrap(errs.ErrValidation, "notification kind is required")
	}
	return nil
}
