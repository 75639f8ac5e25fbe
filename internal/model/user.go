package model

import (
	"time"
)

type UserRole string

const (
	Parent UserRole = "parent"
	Child  UserRole = "child"
	Admin  UserRole = "admin"
)

// User is a grown-up account: a parent managing child profiles, or an admin.
// Children never log in directly; they get scoped tokens minted by a parent.
// swagger:model User
type User struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"type:enum('parent','admin');default:'parent'" json:"role"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
