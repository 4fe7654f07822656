package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleProfessor = "Professeur"
	RoleStudent   = "Etudiant"
	RoleAdmin     = "Administrateur"
)

type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	LastName  string         `json:"last_name" gorm:"size:100;not null"`
	FirstName string         `json:"first_name" gorm:"size:100;not null"`
	Email     string         `json:"email" gorm:"size:150;not null;uniqueIndex"`
	Password  string         `json:"-" gorm:"not null"`
	Role      string         `json:"role" gorm:"not null"` // Professeur, Etudiant, Administrateur
	Professor *Professor     `json:"professor,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Student   *Student       `json:"student,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
