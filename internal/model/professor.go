package model

import (
	"time"

	"gorm.io/gorm"
)

type Professor struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	UserID     uint           `json:"user_id" gorm:"not null;uniqueIndex"`
	User       *User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Speciality string         `json:"speciality" gorm:"size:100"`
	Quizzes    []Quiz         `json:"quizzes,omitempty" gorm:"foreignKey:ProfessorID"`
	Modules    []Module       `json:"modules,omitempty" gorm:"many2many:teachings;"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
