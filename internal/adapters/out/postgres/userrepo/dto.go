// Package userrepo persists the accounts used by the HTTP authentication
// layer. Users are a thin collaborator of the order tracking core, so the
// package works with a plain record instead of a full domain aggregate.
package userrepo

import "time"

// UserDTO represents one account row.
type UserDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"uniqueIndex"`
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// TableName specifies the database table name for user accounts.
func (UserDTO) TableName() string {
	return "users"
}
