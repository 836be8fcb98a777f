package models

import "time"

// Account is an identity record used for authentication and for ownership of
// rooms.
type Account struct {
	// ID is the generated, immutable account identifier (UUIDv7).
	ID string `json:"user_id"`

	// Email is unique across all accounts.
	Email string `json:"email"`

	// Username is the unique display name of the account.
	Username string `json:"username"`

	// Password holds the bcrypt digest of the account password.
	// It is never stored in plaintext and never serialized.
	Password string `json:"-"`

	// IsAdmin grants privileges that bypass room ownership checks.
	IsAdmin bool `json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// Actor identifies the caller of a service operation. It is resolved once per
// request and passed explicitly into every ownership-scoped call.
type Actor struct {
	ID      string
	IsAdmin bool
}

// OwnerOrAdmin reports whether the actor may act on a resource owned by ownerID.
func (a Actor) OwnerOrAdmin(ownerID string) bool {
	return a.IsAdmin || (a.ID != "" && a.ID == ownerID)
}
