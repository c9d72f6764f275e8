package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID        string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	Username  string     `gorm:"type:varchar(100);uniqueIndex" json:"username"`
	Email     string     `gorm:"type:varchar(120);uniqueIndex" json:"email"`
	Password  string     `gorm:"type:varchar(200)" json:"-"` // bcrypt哈希
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func (u *User) GetDisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
