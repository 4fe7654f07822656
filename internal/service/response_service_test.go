package service

import (
	"testing"

	"github.com/quizdeck/quizdeck/internal/apperror"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newResponseService(db *gorm.DB) ResponseService {
	return NewResponseService(
		repository.NewResponseRepository(db),
		repository.NewAttemptRepository(db),
		repository.NewChoiceRepository(db),
	)
}

func TestUpdateResponse_SwapsChoice(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	attemptSvc := newAttemptService(db)
	svc := newResponseService(db)
	attempt := startAttempt(t, attemptSvc, f)

	recorded, err := attemptSvc.RecordResponse(dto.SubmitResponseRequest{
		AttemptID: attempt.ID, QuestionID: f.questions[0].ID, ChoiceID: f.wrong[0].ID,
	})
	require.NoError(t, err)
	assert.False(t, recorded.EstCorrect)

	updated, err := svc.Update(recorded.ID, f.correct[0].ID)
	require.NoError(t, err)
	assert.Equal(t, f.correct[0].ID, updated.ChoiceID)
	assert.True(t, updated.EstCorrect) // correctness re-copied from the new choice
}

func TestUpdateResponse_ChoiceFromAnotherQuestion(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	attemptSvc := newAttemptService(db)
	svc := newResponseService(db)
	attempt := startAttempt(t, attemptSvc, f)

	recorded, err := attemptSvc.RecordResponse(dto.SubmitResponseRequest{
		AttemptID: attempt.ID, QuestionID: f.questions[0].ID, ChoiceID: f.wrong[0].ID,
	})
	require.NoError(t, err)

	_, err = svc.Update(recorded.ID, f.correct[1].ID)
	requireKind(t, err, apperror.KindValidation)
}

func TestResponsesByAttempt(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	attemptSvc := newAttemptService(db)
	svc := newResponseService(db)
	attempt := startAttempt(t, attemptSvc, f)

	_, err := attemptSvc.RecordResponse(dto.SubmitResponseRequest{AttemptID: attempt.ID, QuestionID: f.questions[0].ID, ChoiceID: f.correct[0].ID})
	require.NoError(t, err)
	_, err = attemptSvc.RecordResponse(dto.SubmitResponseRequest{AttemptID: attempt.ID, QuestionID: f.questions[1].ID, ChoiceID: f.wrong[1].ID})
	require.NoError(t, err)

	stats, err := svc.ByAttempt(attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, attempt.ID, stats.AttemptID)
	assert.Equal(t, 2, stats.TotalQuestions)
	assert.Equal(t, 1, stats.CorrectAnswers)
	assert.Equal(t, float64(50), stats.Accuracy)

	_, err = svc.ByAttempt(9999)
	requireKind(t, err, apperror.KindNotFound)
}

func TestListResponses_CorrectnessFilter(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	attemptSvc := newAttemptService(db)
	svc := newResponseService(db)
	attempt := startAttempt(t, attemptSvc, f)

	_, err := attemptSvc.RecordResponse(dto.SubmitResponseRequest{AttemptID: attempt.ID, QuestionID: f.questions[0].ID, ChoiceID: f.correct[0].ID})
	require.NoError(t, err)
	_, err = attemptSvc.RecordResponse(dto.SubmitResponseRequest{AttemptID: attempt.ID, QuestionID: f.questions[1].ID, ChoiceID: f.wrong[1].ID})
	require.NoError(t, err)

	correct := true
	page, err := svc.List(dto.ResponseListFilter{AttemptID: &attempt.ID, EstCorrect: &correct, Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
}

func TestDeleteResponse(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	attemptSvc := newAttemptService(db)
	svc := newResponseService(db)
	attempt := startAttempt(t, attemptSvc, f)

	recorded, err := attemptSvc.RecordResponse(dto.SubmitResponseRequest{AttemptID: attempt.ID, QuestionID: f.questions[0].ID, ChoiceID: f.correct[0].ID})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(recorded.ID))
	_, err = svc.Get(recorded.ID)
	requireKind(t, err, apperror.KindNotFound)
}

func TestDeleteResponse_FreesSlotForResubmission(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	attemptSvc := newAttemptService(db)
	svc := newResponseService(db)
	attempt := startAttempt(t, attemptSvc, f)

	recorded, err := attemptSvc.RecordResponse(dto.SubmitResponseRequest{
		AttemptID: attempt.ID, QuestionID: f.questions[0].ID, ChoiceID: f.wrong[0].ID,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(recorded.ID))

	// The (attempt, question) unique index must not remember the deleted row.
	resubmitted, err := attemptSvc.RecordResponse(dto.SubmitResponseRequest{
		AttemptID: attempt.ID, QuestionID: f.questions[0].ID, ChoiceID: f.correct[0].ID,
	})
	require.NoError(t, err)
	assert.True(t, resubmitted.EstCorrect)
	assert.NotEqual(t, recorded.ID, resubmitted.ID)
}
