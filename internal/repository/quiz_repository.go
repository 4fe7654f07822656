package repository

import (
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	FindByIDWithQuestions(id uint) (*model.Quiz, error)
	FindByCode(code string) (*model.Quiz, error)
	CodeExists(code string) (bool, error)
	FindAll(filter dto.QuizListFilter) ([]model.Quiz, int64, error)
	FindByGroup(groupID uint) ([]model.Quiz, error)
	Update(quiz *model.Quiz) error
	Delete(id uint) error
	SumQuestionPoints(quizID uint) (float64, error)
	CountQuestions(quizID uint) (int64, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.Preload("Professor").Preload("Module").First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.Preload("Questions.Choices").Preload("Module").First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByCode(code string) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.Preload("Questions.Choices").Where("code = ?", code).First(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

// CodeExists checks soft-deleted quizzes too: the unique index on code covers
// them, so a code freed only in the live view would still fail the insert.
func (r *quizRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Unscoped().Model(&model.Quiz{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *quizRepository) FindAll(filter dto.QuizListFilter) ([]model.Quiz, int64, error) {
	query := r.db.Model(&model.Quiz{})
	if filter.ModuleID != nil {
		query = query.Where("module_id = ?", *filter.ModuleID)
	}
	if filter.ProfessorID != nil {
		query = query.Where("professor_id = ?", *filter.ProfessorID)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var quizzes []model.Quiz
	offset := (filter.Page - 1) * filter.PerPage
	err := query.Preload("Questions").
		Order("created_at desc").
		Offset(offset).Limit(filter.PerPage).
		Find(&quizzes).Error
	return quizzes, total, err
}

// FindByGroup returns the quizzes assigned to a group via the assignments
// join table.
func (r *quizRepository) FindByGroup(groupID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.
		Joins("JOIN assignments ON assignments.quiz_id = quizzes.id").
		Where("assignments.group_id = ?", groupID).
		Preload("Questions").
		Order("quizzes.created_at desc").
		Find(&quizzes).Error
	return quizzes, err
}

func (r *quizRepository) Update(quiz *model.Quiz) error {
	return r.db.Save(quiz).Error
}

func (r *quizRepository) Delete(id uint) error {
	return r.db.Select("Questions").Delete(&model.Quiz{ID: id}).Error
}

func (r *quizRepository) SumQuestionPoints(quizID uint) (float64, error) {
	var sum float64
	err := r.db.Model(&model.Question{}).
		Where("quiz_id = ?", quizID).
		Select("COALESCE(SUM(points), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *quizRepository) CountQuestions(quizID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Question{}).Where("quiz_id = ?", quizID).Count(&count).Error
	return count, err
}
