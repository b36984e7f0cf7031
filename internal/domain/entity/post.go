package entity

import "time"

// Post is a blog article owned by exactly one User. The owner is carried as a
// foreign-key id plus a snapshot of the owner's username; the full User
// aggregate is never embedded, which keeps the two aggregates acyclic.
type Post struct {
	ID        int64  // Numeric identifier assigned by the store on creation.
	Title     string
	Content   string
	UserID    int64     // Foreign key to the owning User.
	Username  string    // Owner's username, resolved from the users table on read.
	CreatedAt time.Time // Managed by the store.
	UpdatedAt time.Time // Managed by the store.
}
