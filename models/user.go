package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleGuest Role = "guest"
)

type User struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Name        string     `json:"name" gorm:"default:null"`
	Email       string     `gorm:"unique;not null" json:"email"`
	Phone       string     `json:"phone" gorm:"index;default:null"`
	Password    string     `json:"-" gorm:"not null"`
	Role        Role       `gorm:"size:16;default:guest" json:"role"`
	OtpCode     string     `json:"-" gorm:"default:null"`
	OtpExpiry   *time.Time `json:"-" gorm:"default:null"`
	OtpVerified bool       `json:"-" gorm:"default:false"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
