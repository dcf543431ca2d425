package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleClient = "ROLE_CLIENT"
	RoleAdmin  = "ROLE_ADMIN"
)

type User struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username string    `json:"username" gorm:"type:varchar(40);not null;uniqueIndex"`
	Email    string    `json:"email" gorm:"type:varchar(254);not null;uniqueIndex"`
	Password string    `json:"-" gorm:"type:varchar(100);not null"`
	Roles    []Role    `json:"roles" gorm:"many2many:user_roles"`
	Musics   []Music   `json:"-" gorm:"foreignKey:CreatedByID"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) HasRole(authority string) bool {
	for _, r := range u.Roles {
		if r.Authority == authority {
			return true
		}
	}
	return false
}

type Role struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Authority string `json:"authority" gorm:"type:varchar(40);not null;uniqueIndex"`
}

func (Role) TableName() string {
	return "roles"
}
