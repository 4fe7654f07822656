package repository

import (
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	Create(response *model.Response) error
	FindByID(id uint) (*model.Response, error)
	FindByIDWithDetails(id uint) (*model.Response, error)
	FindByAttempt(attemptID uint) ([]model.Response, error)
	FindByAttemptAndQuestion(attemptID, questionID uint) (*model.Response, error)
	FindAll(filter dto.ResponseListFilter) ([]model.Response, int64, error)
	Update(response *model.Response) error
	Delete(id uint) error
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Create(response *model.Response) error {
	return r.db.Create(response).Error
}

func (r *responseRepository) FindByID(id uint) (*model.Response, error) {
	var response model.Response
	if err := r.db.First(&response, id).Error; err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) FindByIDWithDetails(id uint) (*model.Response, error) {
	var response model.Response
	err := r.db.Preload("Question").Preload("Choice").First(&response, id).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) FindByAttempt(attemptID uint) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.Where("attempt_id = ?", attemptID).
		Preload("Question").Preload("Choice").
		Order("id asc").
		Find(&responses).Error
	return responses, err
}

func (r *responseRepository) FindByAttemptAndQuestion(attemptID, questionID uint) (*model.Response, error) {
	var response model.Response
	err := r.db.Where("attempt_id = ? AND question_id = ?", attemptID, questionID).First(&response).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) FindAll(filter dto.ResponseListFilter) ([]model.Response, int64, error) {
	query := r.db.Model(&model.Response{})
	if filter.AttemptID != nil {
		query = query.Where("attempt_id = ?", *filter.AttemptID)
	}
	if filter.QuestionID != nil {
		query = query.Where("question_id = ?", *filter.QuestionID)
	}
	if filter.EstCorrect != nil {
		query = query.Where("est_correct = ?", *filter.EstCorrect)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var responses []model.Response
	offset := (filter.Page - 1) * filter.PerPage
	err := query.Preload("Question").Preload("Choice").
		Order("id asc").
		Offset(offset).Limit(filter.PerPage).
		Find(&responses).Error
	return responses, total, err
}

func (r *responseRepository) Update(response *model.Response) error {
	return r.db.Save(response).Error
}

func (r *responseRepository) Delete(id uint) error {
	return r.db.Delete(&model.Response{}, id).Error
}
