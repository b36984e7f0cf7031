// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the owning account for posts. The Password field always holds the
// bcrypt hash once the user has passed through the service layer; the
// plaintext only exists on the way in.
type User struct {
	ID        int64     // Numeric identifier assigned by the store on creation.
	Username  string    // Unique login/display name.
	Email     string    // Unique contact address.
	Password  string    // Bcrypt hash of the user's password.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}
