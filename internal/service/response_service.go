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

type ResponseService interface {
	List(filter dto.ResponseListFilter) (*dto.Page, error)
	Get(id uint) (*model.Response, error)
	Update(id uint, choiceID uint) (*model.Response, error)
	Delete(id uint) error
	ByAttempt(attemptID uint) (*dto.AttemptStatistics, error)
}

type responseService struct {
	responseRepo repository.ResponseRepository
	attemptRepo  repository.AttemptRepository
	choiceRepo   repository.ChoiceRepository
}

func NewResponseService(
	responseRepo repository.ResponseRepository,
	attemptRepo repository.AttemptRepository,
	choiceRepo repository.ChoiceRepository,
) ResponseService {
	return &responseService{responseRepo: responseRepo, attemptRepo: attemptRepo, choiceRepo: choiceRepo}
}

func (s *responseService) List(filter dto.ResponseListFilter) (*dto.Page, error) {
	responses, total, err := s.responseRepo.FindAll(filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list responses")
		return nil, apperror.Internal(err)
	}
	return &dto.Page{Items: responses, Total: total, Page: filter.Page, PerPage: filter.PerPage}, nil
}

func (s *responseService) Get(id uint) (*model.Response, error) {
	response, err := s.responseRepo.FindByIDWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("response")
		}
		return nil, apperror.Internal(err)
	}
	return response, nil
}

// Update swaps the chosen choice. The new choice must belong to the same
// question, and the correctness flag is re-copied from it.
func (s *responseService) Update(id uint, choiceID uint) (*model.Response, error) {
	response, err := s.responseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("response")
		}
		return nil, apperror.Internal(err)
	}

	choice, err := s.choiceRepo.FindByID(choiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("choice")
		}
		return nil, apperror.Internal(err)
	}
	if choice.QuestionID != response.QuestionID {
		return nil, apperror.Validation("the selected choice does not belong to this question")
	}

	response.ChoiceID = choice.ID
	response.EstCorrect = choice.EstCorrect
	if err := s.responseRepo.Update(response); err != nil {
		log.Error().Err(err).Uint("responseID", id).Msg("Failed to update response")
		return nil, apperror.Internal(err)
	}
	return s.responseRepo.FindByIDWithDetails(id)
}

func (s *responseService) Delete(id uint) error {
	if _, err := s.responseRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("response")
		}
		return apperror.Internal(err)
	}
	if err := s.responseRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("responseID", id).Msg("Failed to delete response")
		return apperror.Internal(err)
	}
	return nil
}

// ByAttempt returns an attempt's responses with a correct/total accuracy
// summary.
func (s *responseService) ByAttempt(attemptID uint) (*dto.AttemptStatistics, error) {
	if _, err := s.attemptRepo.FindByID(attemptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("attempt")
		}
		return nil, apperror.Internal(err)
	}

	responses, err := s.responseRepo.FindByAttempt(attemptID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	stats := dto.AttemptStatistics{
		AttemptID:      attemptID,
		Responses:      responses,
		TotalQuestions: len(responses),
	}
	for _, response := range responses {
		if response.EstCorrect {
			stats.CorrectAnswers++
		}
	}
	if stats.TotalQuestions > 0 {
		stats.Accuracy = ScorePercentage(float64(stats.CorrectAnswers), float64(stats.TotalQuestions))
	}
	return &stats, nil
}
