package model

import "time"

type User struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	Username       string    `json:"username" gorm:"not null;uniqueIndex;size:50"`
	Email          string    `json:"email" gorm:"not null;uniqueIndex;size:255"`
	HashedPassword []byte    `json:"-" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
