package auth

import (
	"time"

	"household-services/internal/domain/user"

	"github.com/google/uuid"
)

// Identity is the verified claim carried by a credential. It is immutable and lives
// for one request or one realtime session.
type Identity struct {
	subjectID uuid.UUID
	role      user.Role
	email     string
	issuedAt  time.Time
	expiresAt time.Time
}

func NewIdentity(subjectID uuid.UUID, role user.Role, email string, issuedAt, expiresAt time.Time) Identity {
	return Identity{
		subjectID: subjectID,
		role:      role,
		email:     email,
		issuedAt:  issuedAt,
		expiresAt: expiresAt,
	}
}

func (i Identity) SubjectID() uuid.UUID { return i.subjectID }
func (i Identity) Role() user.Role      { return i.role }
func (i Identity) Email() string        { return i.email }
func (i Identity) IssuedAt() time.Time  { return i.issuedAt }
func (i Identity) ExpiresAt() time.Time { return i.expiresAt }

// Subject is the realtime channel key for this identity.
func (i Identity) Subject() string {
	return i.subjectID.String()
}

func (i Identity) IsZero() bool {
	return i.subjectID == uuid.Nil
}
