package repository

import (
	"github.com/quizdeck/quizdeck/internal/model"
	"gorm.io/gorm"
)

type ChoiceRepository interface {
	Create(choice *model.Choice) error
	FindByID(id uint) (*model.Choice, error)
	FindByQuestionID(questionID uint) ([]model.Choice, error)
	FindAll() ([]model.Choice, error)
	Update(choice *model.Choice) error
	Delete(id uint) error
}

type choiceRepository struct {
	db *gorm.DB
}

func NewChoiceRepository(db *gorm.DB) ChoiceRepository {
	return &choiceRepository{db: db}
}

func (r *choiceRepository) Create(choice *model.Choice) error {
	return r.db.Create(choice).Error
}

func (r *choiceRepository) FindByID(id uint) (*model.Choice, error) {
	var choice model.Choice
	if err := r.db.First(&choice, id).Error; err != nil {
		return nil, err
	}
	return &choice, nil
}

func (r *choiceRepository) FindByQuestionID(questionID uint) ([]model.Choice, error) {
	var choices []model.Choice
	if err := r.db.Where("question_id = ?", questionID).Order("id asc").Find(&choices).Error; err != nil {
		return nil, err
	}
	return choices, nil
}

func (r *choiceRepository) FindAll() ([]model.Choice, error) {
	var choices []model.Choice
	if err := r.db.Order("id asc").Find(&choices).Error; err != nil {
		return nil, err
	}
	return choices, nil
}

func (r *choiceRepository) Update(choice *model.Choice) error {
	return r.db.Save(choice).Error
}

func (r *choiceRepository) Delete(id uint) error {
	return r.db.Delete(&model.Choice{}, id).Error
}
