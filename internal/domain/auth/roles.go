package auth

import (
	"sort"
	"strings"

	"household-services/internal/domain/user"
)

// RoleSet is the allow-list a route is registered with.
type RoleSet struct {
	roles map[user.Role]struct{}
}

func NewRoleSet(roles ...user.Role) RoleSet {
	set := RoleSet{roles: make(map[user.Role]struct{}, len(roles))}
	for _, r := range roles {
		set.roles[r] = struct{}{}
	}
	return set
}

func (s RoleSet) Contains(role user.Role) bool {
	_, ok := s.roles[role]
	return ok
}

func (s RoleSet) IsEmpty() bool {
	return len(s.roles) == 0
}

func (s RoleSet) String() string {
	names := make([]string, 0, len(s.roles))
	for r := range s.roles {
		names = append(names, r.String())
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}
