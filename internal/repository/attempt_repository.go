package repository

import (
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	FindByID(id uint) (*model.Attempt, error)
	FindByIDWithDetails(id uint) (*model.Attempt, error)
	FindAll(filter dto.AttemptListFilter) ([]model.Attempt, int64, error)
	FindByStudent(studentID uint) ([]model.Attempt, error)
	FindByQuiz(quizID uint) ([]model.Attempt, error)
	Update(attempt *model.Attempt) error
	UpdateColumns(id uint, values map[string]interface{}) error
	Delete(id uint) error
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindByID(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.db.First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByIDWithDetails(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Preload("Student").
		Preload("Quiz").
		Preload("Responses.Question").
		Preload("Responses.Choice").
		First(&attempt, id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAll(filter dto.AttemptListFilter) ([]model.Attempt, int64, error) {
	query := r.db.Model(&model.Attempt{})
	if filter.StudentID != nil {
		query = query.Where("student_id = ?", *filter.StudentID)
	}
	if filter.QuizID != nil {
		query = query.Where("quiz_id = ?", *filter.QuizID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var attempts []model.Attempt
	offset := (filter.Page - 1) * filter.PerPage
	err := query.Preload("Student").Preload("Quiz").Preload("Responses").
		Order("started_at desc").
		Offset(offset).Limit(filter.PerPage).
		Find(&attempts).Error
	return attempts, total, err
}

func (r *attemptRepository) FindByStudent(studentID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Where("student_id = ?", studentID).
		Preload("Quiz").Preload("Responses").
		Order("started_at desc").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindByQuiz(quizID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Where("quiz_id = ?", quizID).
		Preload("Student").Preload("Responses").
		Order("started_at desc").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) Update(attempt *model.Attempt) error {
	return r.db.Save(attempt).Error
}

func (r *attemptRepository) UpdateColumns(id uint, values map[string]interface{}) error {
	return r.db.Model(&model.Attempt{}).Where("id = ?", id).Updates(values).Error
}

func (r *attemptRepository) Delete(id uint) error {
	return r.db.Select("Responses").Delete(&model.Attempt{ID: id}).Error
}
