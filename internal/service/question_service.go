package service

import (
	"errors"

	"github.com/quizdeck/quizdeck/internal/apperror"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/quizdeck/quizdeck/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	List() ([]model.Question, error)
	Create(req dto.CreateQuestionRequest) (*model.Question, error)
	BulkCreate(req dto.BulkCreateQuestionsRequest) ([]model.Question, error)
	Get(id uint) (*model.Question, error)
	GetByQuiz(quizID uint) ([]model.Question, error)
	Update(id uint, req dto.UpdateQuestionRequest) (*model.Question, error)
	Delete(id uint) error
}

type questionService struct {
	questionRepo repository.QuestionRepository
	quizRepo     repository.QuizRepository
	db           *gorm.DB
}

func NewQuestionService(questionRepo repository.QuestionRepository, quizRepo repository.QuizRepository, db *gorm.DB) QuestionService {
	return &questionService{questionRepo: questionRepo, quizRepo: quizRepo, db: db}
}

func (s *questionService) List() ([]model.Question, error) {
	questions, err := s.questionRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list questions")
		return nil, apperror.Internal(err)
	}
	return questions, nil
}

func (s *questionService) Create(req dto.CreateQuestionRequest) (*model.Question, error) {
	if _, err := s.quizRepo.FindByID(req.QuizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("quiz")
		}
		return nil, apperror.Internal(err)
	}

	question := model.Question{
		QuizID: req.QuizID,
		Text:   req.Text,
		Type:   req.Type,
		Points: req.Points,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Uint("quizID", req.QuizID).Msg("Failed to create question")
		return nil, apperror.Internal(err)
	}
	return &question, nil
}

// BulkCreate inserts all questions (and their inline choices) in one
// transaction; any failure rolls back the whole batch.
func (s *questionService) BulkCreate(req dto.BulkCreateQuestionsRequest) ([]model.Question, error) {
	if _, err := s.quizRepo.FindByID(req.QuizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("quiz")
		}
		return nil, apperror.Internal(err)
	}

	questions := make([]model.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		question := model.Question{QuizID: req.QuizID, Text: q.Text, Type: q.Type, Points: q.Points}
		for _, ch := range q.Choices {
			question.Choices = append(question.Choices, model.Choice{Text: ch.Text, EstCorrect: ch.EstCorrect})
		}
		questions = append(questions, question)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&questions).Error
	})
	if err != nil {
		log.Error().Err(err).Uint("quizID", req.QuizID).Msg("Bulk question creation failed")
		return nil, apperror.Internal(err)
	}
	return questions, nil
}

func (s *questionService) Get(id uint) (*model.Question, error) {
	question, err := s.questionRepo.FindByIDWithChoices(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("question")
		}
		return nil, apperror.Internal(err)
	}
	return question, nil
}

func (s *questionService) GetByQuiz(quizID uint) ([]model.Question, error) {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("quiz")
		}
		return nil, apperror.Internal(err)
	}
	questions, err := s.questionRepo.FindByQuizID(quizID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return questions, nil
}

func (s *questionService) Update(id uint, req dto.UpdateQuestionRequest) (*model.Question, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("question")
		}
		return nil, apperror.Internal(err)
	}

	if req.Text != nil {
		question.Text = *req.Text
	}
	if req.Type != nil {
		question.Type = *req.Type
	}
	if req.Points != nil {
		question.Points = *req.Points
	}

	if err := s.questionRepo.Update(question); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to update question")
		return nil, apperror.Internal(err)
	}
	return s.questionRepo.FindByIDWithChoices(id)
}

func (s *questionService) Delete(id uint) error {
	if _, err := s.questionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("question")
		}
		return apperror.Internal(err)
	}
	if err := s.questionRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to delete question")
		return apperror.Internal(err)
	}
	return nil
}
