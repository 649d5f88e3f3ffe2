// Package models defines client-side data models used by the Appointo CLI.
package models

// Role classifies what an account is allowed to do.
type Role string

const (
	// RoleStandard is the role of every self-registered account.
	RoleStandard Role = "user"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStandard, RoleAdmin:
		return true
	}
	return false
}

// Account is a registered identity. Email is the lookup key.
//
// The JSON form is what gets persisted as the current session's account.
type Account struct {
	ID     string  `json:"id"`
	Email  string  `json:"email"`
	Name   string  `json:"name"`
	Role   Role    `json:"role"`
	Avatar *string `json:"avatar,omitempty"`
}

// SeedAccounts returns the accounts that exist at startup.
// A fresh slice is returned on every call.
func SeedAccounts() []Account {
	return []Account{
		{
			ID:     "1",
			Email:  "user@example.com",
			Name:   "John Doe",
			Role:   RoleStandard,
			Avatar: avatar("https://i.pravatar.cc/150?img=1"),
		},
		{
			ID:     "2",
			Email:  "admin@example.com",
			Name:   "Admin User",
			Role:   RoleAdmin,
			Avatar: avatar("https://i.pravatar.cc/150?img=2"),
		},
	}
}

func avatar(s string) *string { return &s }
