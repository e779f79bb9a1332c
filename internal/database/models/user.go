package models

import (
	"time"
)

// User roles. Students own their wellness data; admins manage the
// counselor/resource directories and the student list.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User represents a platform account
type User struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	Role        string    `gorm:"not null;default:student" json:"role"`
	IsSuspended bool      `gorm:"not null;default:false" json:"is_suspended"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user may perform admin-gated actions
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
