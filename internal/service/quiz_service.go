package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quizdeck/quizdeck/internal/apperror"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/quizdeck/quizdeck/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuizService interface {
	List(filter dto.QuizListFilter) (*dto.Page, error)
	Create(callerUserID uint, req dto.CreateQuizRequest) (*model.Quiz, error)
	Get(id uint) (*model.Quiz, error)
	GetByCode(code string) (*model.Quiz, error)
	GetByGroup(groupID uint) ([]model.Quiz, error)
	Update(callerUserID uint, callerRole string, id uint, req dto.UpdateQuizRequest) (*model.Quiz, error)
	Delete(id uint) error
	Statistics(id uint) (*dto.QuizStatistics, error)
}

type quizService struct {
	quizRepo    repository.QuizRepository
	moduleRepo  repository.ModuleRepository
	profRepo    repository.ProfessorRepository
	attemptRepo repository.AttemptRepository
	groupRepo   repository.GroupRepository
	db          *gorm.DB
}

func NewQuizService(
	quizRepo repository.QuizRepository,
	moduleRepo repository.ModuleRepository,
	profRepo repository.ProfessorRepository,
	attemptRepo repository.AttemptRepository,
	groupRepo repository.GroupRepository,
	db *gorm.DB,
) QuizService {
	return &quizService{
		quizRepo:    quizRepo,
		moduleRepo:  moduleRepo,
		profRepo:    profRepo,
		attemptRepo: attemptRepo,
		groupRepo:   groupRepo,
		db:          db,
	}
}

func (s *quizService) List(filter dto.QuizListFilter) (*dto.Page, error) {
	quizzes, total, err := s.quizRepo.FindAll(filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list quizzes")
		return nil, apperror.Internal(err)
	}
	return &dto.Page{Items: quizzes, Total: total, Page: filter.Page, PerPage: filter.PerPage}, nil
}

// Create builds the quiz together with any inline questions and choices in a
// single transaction, so a failure partway leaves nothing behind.
func (s *quizService) Create(callerUserID uint, req dto.CreateQuizRequest) (*model.Quiz, error) {
	professor, err := s.profRepo.FindByUserID(callerUserID)
	if err != nil {
		return nil, apperror.Forbidden("only professors can create quizzes")
	}

	if _, err := s.moduleRepo.FindByID(req.ModuleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("module")
		}
		return nil, apperror.Internal(err)
	}

	code, err := s.generateCode()
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	quiz := model.Quiz{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MaxAttempts: 1,
		Active:      true,
		Code:        code,
		ProfessorID: professor.ID,
		ModuleID:    req.ModuleID,
	}
	if quiz.StartDate == nil {
		quiz.StartDate = &now
	}
	if quiz.EndDate == nil {
		end := now.AddDate(0, 0, 30)
		quiz.EndDate = &end
	}
	if req.ShowCorrection != nil {
		quiz.ShowCorrection = *req.ShowCorrection
	}
	if req.MaxAttempts != nil {
		quiz.MaxAttempts = *req.MaxAttempts
	}
	if req.Active != nil {
		quiz.Active = *req.Active
	}
	for _, q := range req.Questions {
		question := model.Question{Text: q.Text, Type: q.Type, Points: q.Points}
		for _, ch := range q.Choices {
			question.Choices = append(question.Choices, model.Choice{Text: ch.Text, EstCorrect: ch.EstCorrect})
		}
		quiz.Questions = append(quiz.Questions, question)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&quiz).Error
	})
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Quiz creation transaction failed")
		return nil, apperror.Internal(err)
	}

	created, err := s.quizRepo.FindByID(quiz.ID)
	if err != nil {
		return &quiz, nil
	}
	return created, nil
}

func (s *quizService) Get(id uint) (*model.Quiz, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("quiz")
		}
		return nil, apperror.Internal(err)
	}
	return quiz, nil
}

func (s *quizService) GetByCode(code string) (*model.Quiz, error) {
	quiz, err := s.quizRepo.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("quiz")
		}
		return nil, apperror.Internal(err)
	}
	return quiz, nil
}

func (s *quizService) GetByGroup(groupID uint) ([]model.Quiz, error) {
	if _, err := s.groupRepo.FindByID(groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("group")
		}
		return nil, apperror.Internal(err)
	}
	quizzes, err := s.quizRepo.FindByGroup(groupID)
	if err != nil {
		log.Error().Err(err).Uint("groupID", groupID).Msg("Failed to list quizzes for group")
		return nil, apperror.Internal(err)
	}
	return quizzes, nil
}

func (s *quizService) Update(callerUserID uint, callerRole string, id uint, req dto.UpdateQuizRequest) (*model.Quiz, error) {
	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("quiz")
		}
		return nil, apperror.Internal(err)
	}

	if callerRole == model.RoleProfessor {
		professor, err := s.profRepo.FindByUserID(callerUserID)
		if err != nil || quiz.ProfessorID != professor.ID {
			return nil, apperror.Forbidden("you can only edit your own quizzes")
		}
	}

	if req.ModuleID != nil {
		if _, err := s.moduleRepo.FindByID(*req.ModuleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperror.NotFound("module")
			}
			return nil, apperror.Internal(err)
		}
		quiz.ModuleID = *req.ModuleID
	}
	if req.Title != nil {
		quiz.Title = *req.Title
	}
	if req.Description != nil {
		quiz.Description = *req.Description
	}
	if req.Duration != nil {
		quiz.Duration = *req.Duration
	}
	if req.StartDate != nil {
		quiz.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		quiz.EndDate = req.EndDate
	}
	if req.ShowCorrection != nil {
		quiz.ShowCorrection = *req.ShowCorrection
	}
	if req.MaxAttempts != nil {
		quiz.MaxAttempts = *req.MaxAttempts
	}
	if req.Active != nil {
		quiz.Active = *req.Active
	}
	// Code is immutable after creation.

	if err := s.quizRepo.Update(quiz); err != nil {
		log.Error().Err(err).Uint("quizID", id).Msg("Failed to update quiz")
		return nil, apperror.Internal(err)
	}
	return s.quizRepo.FindByID(id)
}

func (s *quizService) Delete(id uint) error {
	if _, err := s.quizRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("quiz")
		}
		return apperror.Internal(err)
	}
	if err := s.quizRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("quizID", id).Msg("Failed to delete quiz")
		return apperror.Internal(err)
	}
	return nil
}

func (s *quizService) Statistics(id uint) (*dto.QuizStatistics, error) {
	if _, err := s.quizRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("quiz")
		}
		return nil, apperror.Internal(err)
	}

	attempts, err := s.attemptRepo.FindByQuiz(id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	questionCount, err := s.quizRepo.CountQuestions(id)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	stats := dto.QuizStatistics{QuizID: id, TotalQuestions: questionCount, TotalAttempts: len(attempts)}
	var scoreSum, pctSum float64
	for _, attempt := range attempts {
		switch attempt.Status {
		case model.AttemptCompleted:
			stats.Completed++
			scoreSum += attempt.ScoreObtenu
			pctSum += ScorePercentage(attempt.ScoreObtenu, attempt.ScoreTotal)
		case model.AttemptInProgress:
			stats.InProgress++
		case model.AttemptAbandoned:
			stats.Abandoned++
		}
	}
	if stats.Completed > 0 {
		avg := math.Round(scoreSum/float64(stats.Completed)*100) / 100
		avgPct := math.Round(pctSum/float64(stats.Completed)*100) / 100
		stats.AverageScore = &avg
		stats.AveragePercentage = &avgPct
	}
	return &stats, nil
}

// generateCode produces a short, human-enterable join code and retries on the
// rare collision.
func (s *quizService) generateCode() (string, error) {
	for i := 0; i < 5; i++ {
		raw := strings.ReplaceAll(uuid.NewString(), "-", "")
		code := "QUIZ-" + strings.ToUpper(raw[:8])
		exists, err := s.quizRepo.CodeExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique quiz code")
}
