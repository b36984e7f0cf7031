package model

import "time"

// PostModel mirrors the 'posts' table. UserID references users.id; deleting a
// user cascades to their posts (the wire format denormalizes the owner into
// every post record, so orphans would be unrenderable).
type PostModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"type:varchar(100);not null"`
	Content   string `gorm:"type:text;not null"`
	UserID    int64  `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
