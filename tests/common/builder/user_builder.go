//go:build unit || e2e

package builder

import (
	"time"

	"household-services/internal/domain/user"
	sqlc "household-services/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID    uuid.UUID
	Email string
	Name  string
	Phone string
	Role  string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    uuid.New(),
		Email: "jane.doe@example.com",
		Name:  "Jane Doe",
		Phone: "+1-555-0100",
		Role:  string(user.RoleCustomer),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.ReconstructUser(u.ID, email, u.Name, u.Phone, role), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	var phone pgtype.Text
	if u.Phone != "" {
		phone = pgtype.Text{String: u.Phone, Valid: true}
	}

	return sqlc.Users{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     phone,
		Role:      u.Role,
		CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = phone
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsVendor() *UserBuilder {
	u.Role = string(user.RoleVendor)
	u.Email = "acme.cleaning@example.com"
	u.Name = "Acme Cleaning"
	u.Phone = "+1-555-0199"
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = string(user.RoleAdmin)
	u.Email = "admin@example.com"
	u.Name = "Admin"
	return u
}
