package models

import "time"

type MenuItem struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Price       float64    `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string     `gorm:"type:varchar(512);not null" json:"image"`
	Options     StringList `gorm:"type:text" json:"options"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
