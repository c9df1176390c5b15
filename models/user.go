package models

import "time"

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"type:varchar(255);unique;not null" json:"username"`
	Email     string `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password  string `gorm:"type:varchar(255);not null" json:"-"`
	IsAdmin   bool   `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
