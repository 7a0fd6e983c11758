// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is a registered identity that can log in with a login/password pair.
type Account struct {
	Login        string    // Unique, case-sensitive login identifier (an email address).
	Name         string    // Display name.
	PasswordHash string    // bcrypt hash of the password. Never the plaintext.
	Role         Role      // USER or ADMIN.
	CreatedAt    time.Time // Set by the store on insert.
	UpdatedAt    time.Time // Set by the store on insert or update.
}

// Clone returns a copy of the account so stores can hand out values callers may mutate.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	cp := *a

	return &cp
}
