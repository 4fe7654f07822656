package service

import (
	"errors"
	"math"
	"time"

	"github.com/jinzhu/copier"
	"github.com/quizdeck/quizdeck/internal/apperror"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/quizdeck/quizdeck/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// defaultScoreTotal is the denominator used when a quiz has no question
// points at attempt start, so the percentage is always well defined.
const defaultScoreTotal = 100

// ScorePercentage returns the attempt score as a percentage rounded to two
// decimals. A non-positive total yields 0.
func ScorePercentage(obtained, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(obtained/total*10000) / 100
}

// AttemptService tracks a student's pass through a quiz: start, per-question
// responses, finish with score computation.
type AttemptService interface {
	Start(callerUserID uint, req dto.StartAttemptRequest) (*dto.AttemptResponse, error)
	RecordResponse(req dto.SubmitResponseRequest) (*model.Response, error)
	BulkRecordResponses(req dto.BulkSubmitResponsesRequest) ([]model.Response, error)
	Finish(id uint) (*dto.AttemptResponse, error)
	Get(id uint) (*dto.AttemptResponse, error)
	List(filter dto.AttemptListFilter) (*dto.Page, error)
	Update(id uint, req dto.UpdateAttemptRequest) (*dto.AttemptResponse, error)
	Delete(id uint) error
	ByStudent(studentID uint) ([]dto.AttemptResponse, error)
	ByQuiz(quizID uint) ([]dto.AttemptResponse, error)
}

type attemptService struct {
	attemptRepo  repository.AttemptRepository
	responseRepo repository.ResponseRepository
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	choiceRepo   repository.ChoiceRepository
	studentRepo  repository.StudentRepository
	db           *gorm.DB
}

func NewAttemptService(
	attemptRepo repository.AttemptRepository,
	responseRepo repository.ResponseRepository,
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	choiceRepo repository.ChoiceRepository,
	studentRepo repository.StudentRepository,
	db *gorm.DB,
) AttemptService {
	return &attemptService{
		attemptRepo:  attemptRepo,
		responseRepo: responseRepo,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		choiceRepo:   choiceRepo,
		studentRepo:  studentRepo,
		db:           db,
	}
}

// Start creates an in_progress attempt. The student comes from the request
// body or the caller's own student profile; there is no silent fallback to an
// arbitrary student. ScoreTotal is snapshotted from the quiz's question points
// at this moment.
func (s *attemptService) Start(callerUserID uint, req dto.StartAttemptRequest) (*dto.AttemptResponse, error) {
	if _, err := s.quizRepo.FindByID(req.QuizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("quiz")
		}
		return nil, apperror.Internal(err)
	}

	studentID, err := s.resolveStudent(callerUserID, req.StudentID)
	if err != nil {
		return nil, err
	}

	total, err := s.quizRepo.SumQuestionPoints(req.QuizID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if total == 0 {
		total = defaultScoreTotal
	}

	attempt := model.Attempt{
		StudentID:  studentID,
		QuizID:     req.QuizID,
		Status:     model.AttemptInProgress,
		StartedAt:  time.Now(),
		ScoreTotal: total,
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("quizID", req.QuizID).Msg("Failed to create attempt")
		return nil, apperror.Internal(err)
	}

	return s.Get(attempt.ID)
}

func (s *attemptService) resolveStudent(callerUserID uint, explicit *uint) (uint, error) {
	if explicit != nil {
		student, err := s.studentRepo.FindByID(*explicit)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, apperror.NotFound("student")
			}
			return 0, apperror.Internal(err)
		}
		return student.ID, nil
	}
	if callerUserID != 0 {
		student, err := s.studentRepo.FindByUserID(callerUserID)
		if err == nil {
			return student.ID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperror.Internal(err)
		}
	}
	return 0, apperror.ValidationFields("validation failed", map[string]string{
		"student_id": "student_id is required when the caller has no student profile",
	})
}

// RecordResponse inserts one answer. The correctness flag is copied from the
// choice at this instant and never recomputed. A second answer for the same
// (attempt, question) pair is a conflict, backed by a unique index.
func (s *attemptService) RecordResponse(req dto.SubmitResponseRequest) (*model.Response, error) {
	response, err := s.buildResponse(req)
	if err != nil {
		return nil, err
	}

	if err := s.responseRepo.Create(response); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("a response for this question already exists in this attempt")
		}
		log.Error().Err(err).Uint("attemptID", req.AttemptID).Uint("questionID", req.QuestionID).Msg("Failed to record response")
		return nil, apperror.Internal(err)
	}

	full, err := s.responseRepo.FindByIDWithDetails(response.ID)
	if err != nil {
		return response, nil
	}
	return full, nil
}

// BulkRecordResponses inserts a batch atomically: one bad item rolls back the
// whole submission.
func (s *attemptService) BulkRecordResponses(req dto.BulkSubmitResponsesRequest) ([]model.Response, error) {
	responses := make([]*model.Response, 0, len(req.Responses))
	for _, item := range req.Responses {
		response, err := s.buildResponse(item)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, response := range responses {
			if err := tx.Create(response).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("a response for one of these questions already exists in this attempt")
		}
		log.Error().Err(err).Int("count", len(responses)).Msg("Bulk response submission failed")
		return nil, apperror.Internal(err)
	}

	out := make([]model.Response, 0, len(responses))
	for _, response := range responses {
		out = append(out, *response)
	}
	return out, nil
}

// buildResponse validates the attempt/question/choice triple and freezes the
// correctness flag. It pre-checks the uniqueness constraint so the common
// duplicate case reports a clean conflict; the index still guards races.
func (s *attemptService) buildResponse(req dto.SubmitResponseRequest) (*model.Response, error) {
	if _, err := s.attemptRepo.FindByID(req.AttemptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("attempt")
		}
		return nil, apperror.Internal(err)
	}
	question, err := s.questionRepo.FindByID(req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("question")
		}
		return nil, apperror.Internal(err)
	}
	choice, err := s.choiceRepo.FindByID(req.ChoiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("choice")
		}
		return nil, apperror.Internal(err)
	}

	if choice.QuestionID != question.ID {
		return nil, apperror.Validation("the selected choice does not belong to this question")
	}

	if _, err := s.responseRepo.FindByAttemptAndQuestion(req.AttemptID, req.QuestionID); err == nil {
		return nil, apperror.Conflict("a response for this question already exists in this attempt")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Internal(err)
	}

	return &model.Response{
		AttemptID:  req.AttemptID,
		QuestionID: req.QuestionID,
		ChoiceID:   req.ChoiceID,
		EstCorrect: choice.EstCorrect,
	}, nil
}

// Finish computes the final score from the stored correctness flags and marks
// the attempt completed. Finishing a completed attempt is rejected and changes
// nothing.
func (s *attemptService) Finish(id uint) (*dto.AttemptResponse, error) {
	attempt, err := s.attemptRepo.FindByIDWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("attempt")
		}
		return nil, apperror.Internal(err)
	}
	if attempt.Status == model.AttemptCompleted {
		return nil, apperror.Conflict("this attempt is already finished")
	}

	var score float64
	for _, response := range attempt.Responses {
		if response.EstCorrect && response.Question != nil {
			score += response.Question.Points
		}
	}

	now := time.Now()
	err = s.attemptRepo.UpdateColumns(id, map[string]interface{}{
		"score_obtenu": score,
		"status":       model.AttemptCompleted,
		"ended_at":     now,
	})
	if err != nil {
		log.Error().Err(err).Uint("attemptID", id).Msg("Failed to finish attempt")
		return nil, apperror.Internal(err)
	}

	return s.Get(id)
}

func (s *attemptService) Get(id uint) (*dto.AttemptResponse, error) {
	attempt, err := s.attemptRepo.FindByIDWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("attempt")
		}
		return nil, apperror.Internal(err)
	}
	return s.toResponse(attempt), nil
}

func (s *attemptService) List(filter dto.AttemptListFilter) (*dto.Page, error) {
	attempts, total, err := s.attemptRepo.FindAll(filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list attempts")
		return nil, apperror.Internal(err)
	}
	items := make([]dto.AttemptResponse, 0, len(attempts))
	for i := range attempts {
		items = append(items, *s.toResponse(&attempts[i]))
	}
	return &dto.Page{Items: items, Total: total, Page: filter.Page, PerPage: filter.PerPage}, nil
}

// Update applies an explicit status change, e.g. marking an attempt abandoned.
// Completed attempts stay frozen.
func (s *attemptService) Update(id uint, req dto.UpdateAttemptRequest) (*dto.AttemptResponse, error) {
	attempt, err := s.attemptRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("attempt")
		}
		return nil, apperror.Internal(err)
	}
	if attempt.Status == model.AttemptCompleted {
		return nil, apperror.Conflict("a completed attempt cannot be modified")
	}

	values := map[string]interface{}{}
	if req.Status != nil {
		values["status"] = *req.Status
		if *req.Status == model.AttemptCompleted {
			values["ended_at"] = time.Now()
		}
	}
	if req.ScoreObtenu != nil {
		values["score_obtenu"] = *req.ScoreObtenu
	}
	if len(values) > 0 {
		if err := s.attemptRepo.UpdateColumns(id, values); err != nil {
			log.Error().Err(err).Uint("attemptID", id).Msg("Failed to update attempt")
			return nil, apperror.Internal(err)
		}
	}
	return s.Get(id)
}

func (s *attemptService) Delete(id uint) error {
	if _, err := s.attemptRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("attempt")
		}
		return apperror.Internal(err)
	}
	if err := s.attemptRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("attemptID", id).Msg("Failed to delete attempt")
		return apperror.Internal(err)
	}
	return nil
}

func (s *attemptService) ByStudent(studentID uint) ([]dto.AttemptResponse, error) {
	if _, err := s.studentRepo.FindByID(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("student")
		}
		return nil, apperror.Internal(err)
	}
	attempts, err := s.attemptRepo.FindByStudent(studentID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	items := make([]dto.AttemptResponse, 0, len(attempts))
	for i := range attempts {
		items = append(items, *s.toResponse(&attempts[i]))
	}
	return items, nil
}

func (s *attemptService) ByQuiz(quizID uint) ([]dto.AttemptResponse, error) {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("quiz")
		}
		return nil, apperror.Internal(err)
	}
	attempts, err := s.attemptRepo.FindByQuiz(quizID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	items := make([]dto.AttemptResponse, 0, len(attempts))
	for i := range attempts {
		items = append(items, *s.toResponse(&attempts[i]))
	}
	return items, nil
}

func (s *attemptService) toResponse(attempt *model.Attempt) *dto.AttemptResponse {
	var resp dto.AttemptResponse
	if err := copier.Copy(&resp, attempt); err != nil {
		log.Warn().Err(err).Uint("attemptID", attempt.ID).Msg("Failed to copy attempt to DTO")
	}
	resp.Score = ScorePercentage(attempt.ScoreObtenu, attempt.ScoreTotal)
	return &resp
}
