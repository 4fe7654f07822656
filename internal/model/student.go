package model

import (
	"time"

	"gorm.io/gorm"
)

type Student struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	UserID        uint           `json:"user_id" gorm:"not null;uniqueIndex"`
	User          *User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	StudentNumber string         `json:"student_number" gorm:"size:50"`
	Level         string         `json:"level" gorm:"size:50"`
	GroupID       *uint          `json:"group_id,omitempty" gorm:"index"`
	Group         *Group         `json:"group,omitempty" gorm:"foreignKey:GroupID"`
	Attempts      []Attempt      `json:"attempts,omitempty" gorm:"foreignKey:StudentID"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
