// Package model holds the GORM persistence models, kept separate from the
// pure domain entities.
package model

import "time"

// UserModel mirrors the 'users' table. Username and email carry unique
// indexes; the store enforces them as the last line of defense behind the
// handler-level pre-checks.
type UserModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Posts []PostModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
