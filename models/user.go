package models

import "strings"

// Roles a user can register with.
const (
	RoleUser   = "user"
	RoleSeller = "seller"
)

type User struct {
	ID        any    `json:"id,omitempty"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	Address   any    `json:"address,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// PublicUser is the payload returned by the auth endpoints.
type PublicUser struct {
	ID    any      `json:"ID"`
	Name  string   `json:"Name"`
	Email string   `json:"Email"`
	Roles []string `json:"Roles"`
}

// IDString is the id as stored in the session registry.
func (u User) IDString() string { return IDString(u.ID) }

func (u User) Public() PublicUser {
	role := u.Role
	if role == "" {
		role = RoleUser
	}
	return PublicUser{
		ID:    u.ID,
		Name:  strings.TrimSpace(u.FirstName + " " + u.LastName),
		Email: u.Email,
		Roles: []string{role},
	}
}

// UserFromRecord reads the known user fields; unknown fields are ignored.
func UserFromRecord(rec Record) User {
	return User{
		ID:        rec.ID(),
		Email:     rec.Str("email"),
		Password:  rec.Str("password"),
		Role:      rec.Str("role"),
		FirstName: rec.Str("firstName"),
		LastName:  rec.Str("lastName"),
		Phone:     rec.Str("phone"),
		Address:   rec["address"],
		CreatedAt: rec.Str("createdAt"),
	}
}
