package user

import (
	"github.com/google/uuid"
)

const phoneNotProvided = "Not provided"

// User is the part of an account that notifications need: who they are and how to reach them.
type User struct {
	id    uuid.UUID
	email Email
	name  string
	phone string
	role  Role
}

func NewUser(email Email, name, phone string, role Role) *User {
	return &User{
		id:    uuid.New(),
		email: email,
		name:  name,
		phone: phone,
		role:  role,
	}
}

func ReconstructUser(id uuid.UUID, email Email, name, phone string, role Role) *User {
	return &User{
		id:    id,
		email: email,
		name:  name,
		phone: phone,
		role:  role,
	}
}

func (u *User) ID() uuid.UUID { return u.id }
func (u *User) Email() Email  { return u.email }
func (u *User) Role() Role    { return u.role }

// DisplayName falls back to the email local part, then to the given default.
func (u *User) DisplayName(fallback string) string {
	if u == nil {
		return fallback
	}
	if u.name != "" {
		return u.name
	}
	if lp := u.email.LocalPart(); lp != "" {
		return lp
	}
	return fallback
}

func (u *User) ContactPhone() string {
	if u == nil || u.phone == "" {
		return phoneNotProvided
	}
	return u.phone
}
