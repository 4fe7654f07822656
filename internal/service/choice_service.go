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

type ChoiceService interface {
	List() ([]model.Choice, error)
	Create(req dto.CreateChoiceRequest) (*model.Choice, error)
	BulkCreate(req dto.BulkCreateChoicesRequest) ([]model.Choice, error)
	Get(id uint) (*model.Choice, error)
	GetByQuestion(questionID uint) ([]model.Choice, error)
	Update(id uint, req dto.UpdateChoiceRequest) (*model.Choice, error)
	Delete(id uint) error
}

type choiceService struct {
	choiceRepo   repository.ChoiceRepository
	questionRepo repository.QuestionRepository
	db           *gorm.DB
}

func NewChoiceService(choiceRepo repository.ChoiceRepository, questionRepo repository.QuestionRepository, db *gorm.DB) ChoiceService {
	return &choiceService{choiceRepo: choiceRepo, questionRepo: questionRepo, db: db}
}

func (s *choiceService) List() ([]model.Choice, error) {
	choices, err := s.choiceRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list choices")
		return nil, apperror.Internal(err)
	}
	return choices, nil
}

func (s *choiceService) Create(req dto.CreateChoiceRequest) (*model.Choice, error) {
	if _, err := s.questionRepo.FindByID(req.QuestionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("question")
		}
		return nil, apperror.Internal(err)
	}

	choice := model.Choice{
		QuestionID: req.QuestionID,
		Text:       req.Text,
		EstCorrect: req.EstCorrect,
	}
	if err := s.choiceRepo.Create(&choice); err != nil {
		log.Error().Err(err).Uint("questionID", req.QuestionID).Msg("Failed to create choice")
		return nil, apperror.Internal(err)
	}
	return &choice, nil
}

func (s *choiceService) BulkCreate(req dto.BulkCreateChoicesRequest) ([]model.Choice, error) {
	if _, err := s.questionRepo.FindByID(req.QuestionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("question")
		}
		return nil, apperror.Internal(err)
	}

	choices := make([]model.Choice, 0, len(req.Choices))
	for _, ch := range req.Choices {
		choices = append(choices, model.Choice{
			QuestionID: req.QuestionID,
			Text:       ch.Text,
			EstCorrect: ch.EstCorrect,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&choices).Error
	})
	if err != nil {
		log.Error().Err(err).Uint("questionID", req.QuestionID).Msg("Bulk choice creation failed")
		return nil, apperror.Internal(err)
	}
	return choices, nil
}

func (s *choiceService) Get(id uint) (*model.Choice, error) {
	choice, err := s.choiceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("choice")
		}
		return nil, apperror.Internal(err)
	}
	return choice, nil
}

func (s *choiceService) GetByQuestion(questionID uint) ([]model.Choice, error) {
	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("question")
		}
		return nil, apperror.Internal(err)
	}
	choices, err := s.choiceRepo.FindByQuestionID(questionID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return choices, nil
}

func (s *choiceService) Update(id uint, req dto.UpdateChoiceRequest) (*model.Choice, error) {
	choice, err := s.choiceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("choice")
		}
		return nil, apperror.Internal(err)
	}

	if req.Text != nil {
		choice.Text = *req.Text
	}
	if req.EstCorrect != nil {
		choice.EstCorrect = *req.EstCorrect
	}

	if err := s.choiceRepo.Update(choice); err != nil {
		log.Error().Err(err).Uint("choiceID", id).Msg("Failed to update choice")
		return nil, apperror.Internal(err)
	}
	return choice, nil
}

func (s *choiceService) Delete(id uint) error {
	if _, err := s.choiceRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("choice")
		}
		return apperror.Internal(err)
	}
	if err := s.choiceRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("choiceID", id).Msg("Failed to delete choice")
		return apperror.Internal(err)
	}
	return nil
}
