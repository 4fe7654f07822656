package repository

import (
	"github.com/quizdeck/quizdeck/internal/model"
	"gorm.io/gorm"
)

type ProfessorRepository interface {
	Create(professor *model.Professor) error
	FindByID(id uint) (*model.Professor, error)
	FindByUserID(userID uint) (*model.Professor, error)
	FindAll() ([]model.Professor, error)
	Update(professor *model.Professor) error
	Delete(id uint) error
	ListSpecialities() ([]string, error)
}

type professorRepository struct {
	db *gorm.DB
}

func NewProfessorRepository(db *gorm.DB) ProfessorRepository {
	return &professorRepository{db: db}
}

func (r *professorRepository) Create(professor *model.Professor) error {
	return r.db.Create(professor).Error
}

func (r *professorRepository) FindByID(id uint) (*model.Professor, error) {
	var professor model.Professor
	if err := r.db.Preload("User").First(&professor, id).Error; err != nil {
		return nil, err
	}
	return &professor, nil
}

func (r *professorRepository) FindByUserID(userID uint) (*model.Professor, error) {
	var professor model.Professor
	if err := r.db.Where("user_id = ?", userID).First(&professor).Error; err != nil {
		return nil, err
	}
	return &professor, nil
}

func (r *professorRepository) FindAll() ([]model.Professor, error) {
	var professors []model.Professor
	if err := r.db.Preload("User").Order("created_at desc").Find(&professors).Error; err != nil {
		return nil, err
	}
	return professors, nil
}

func (r *professorRepository) Update(professor *model.Professor) error {
	return r.db.Save(professor).Error
}

func (r *professorRepository) Delete(id uint) error {
	return r.db.Delete(&model.Professor{}, id).Error
}

func (r *professorRepository) ListSpecialities() ([]string, error) {
	var specialities []string
	err := r.db.Model(&model.Professor{}).
		Where("speciality <> ''").
		Distinct().
		Pluck("speciality", &specialities).Error
	return specialities, err
}
