package service

import (
	"testing"

	"github.com/quizdeck/quizdeck/internal/apperror"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/quizdeck/quizdeck/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAttemptService(db *gorm.DB) AttemptService {
	return NewAttemptService(
		repository.NewAttemptRepository(db),
		repository.NewResponseRepository(db),
		repository.NewQuizRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewChoiceRepository(db),
		repository.NewStudentRepository(db),
		db,
	)
}

func startAttempt(t *testing.T, svc AttemptService, f *fixture) *dto.AttemptResponse {
	t.Helper()
	attempt, err := svc.Start(0, dto.StartAttemptRequest{QuizID: f.quiz.ID, StudentID: &f.student.ID})
	require.NoError(t, err)
	return attempt
}

func TestScorePercentage(t *testing.T) {
	tests := []struct {
		name     string
		obtained float64
		total    float64
		want     float64
	}{
		{"third rounds to two decimals", 5, 15, 33.33},
		{"full score", 15, 15, 100},
		{"zero obtained", 0, 15, 0},
		{"zero total", 5, 0, 0},
		{"negative total", 5, -1, 0},
		{"two thirds", 10, 15, 66.67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScorePercentage(tt.obtained, tt.total))
		})
	}
}

func TestStartAttempt(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAttemptService(db)

	attempt := startAttempt(t, svc, f)
	assert.Equal(t, model.AttemptInProgress, attempt.Status)
	assert.Equal(t, f.student.ID, attempt.StudentID)
	assert.Equal(t, f.quiz.ID, attempt.QuizID)
	assert.Equal(t, float64(15), attempt.ScoreTotal) // 5 + 10 question points
	assert.Zero(t, attempt.ScoreObtenu)
	assert.Nil(t, attempt.EndedAt)
	assert.False(t, attempt.StartedAt.IsZero())
}

func TestStartAttempt_QuizNotFound(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAttemptService(db)

	_, err := svc.Start(0, dto.StartAttemptRequest{QuizID: 9999, StudentID: &f.student.ID})
	requireKind(t, err, apperror.KindNotFound)
}

func TestStartAttempt_StudentNotFound(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAttemptService(db)

	missing := uint(9999)
	_, err := svc.Start(0, dto.StartAttemptRequest{QuizID: f.quiz.ID, StudentID: &missing})
	requireKind(t, err, apperror.KindNotFound)
}

func TestStartAttempt_ResolvesCallerStudentProfile(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAttemptService(db)

	attempt, err := svc.Start(f.studentUser.ID, dto.StartAttemptRequest{QuizID: f.quiz.ID})
	require.NoError(t, err)
	assert.Equal(t, f.student.ID, attempt.StudentID)
}

func TestStartAttempt_RequiresStudentIdentity(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAttemptService(db)

	// A professor without a student profile and no explicit student_id must
	// not be silently mapped to some arbitrary student.
	_, err := svc.Start(f.profUser.ID, dto.StartAttemptRequest{QuizID: f.quiz.ID})
	requireKind(t, err, apperror.KindValidation)

	var ae *apperror.Error
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Fields, "student_id")
}

func TestStartAttempt_EmptyQuizDefaultsScoreTotal(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAttemptService(db)

	empty := model.Quiz{Title: "Empty", Duration: 10, Code: "QUIZ-EMPTY001", ProfessorID: f.professor.ID, ModuleID: f.module.ID}
	require.NoError(t, db.Create(&empty).Error)

	attempt, err := svc.Start(0, dto.StartAttemptRequest{QuizID: empty.ID, StudentID: &f.student.ID})
	require.NoError(t, err)
	assert.Equal(t, float64(100), attempt.ScoreTotal)
}

func TestRecordResponse(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAttemptService(db)
	attempt := startAttempt(t, svc, f)

	response, err := svc.RecordResponse(dto.SubmitResponseRequest{
		AttemptID:  attempt.ID,
		QuestionID: f.questions[0].ID,
		ChoiceID:   f.correct[0].ID,
	})
	require.NoError(t, err)
	assert.True(t, response.EstCorrect)

	wrong, err := svc.RecordResponse(dto.SubmitResponseRequest{
		AttemptID:  attempt.ID,
		QuestionID: f.questions[1].ID,
		ChoiceID:   f.wrong[1].ID,
	})
	require.NoError(t, err)
	assert.False(t, wrong.EstCorrect)
}

func TestRecordResponse_ChoiceFromAnotherQuestion(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAttemptService(db)
	attempt := startAttempt(t, svc, f)

	_, err := svc.RecordResponse(dto.SubmitResponseRequest{
		AttemptID:  attempt.ID,
		QuestionID: f.questions[0].ID,
		ChoiceID:   f.correct[1].ID, // belongs to question 2
	})
	requireKind(t, err, apperror.KindValidation)
}

func TestRecordResponse_DuplicateQuestion(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAttemptService(db)
	attempt := startAttempt(t, svc, f)

	req := dto.SubmitResponseRequest{AttemptID: attempt.ID, QuestionID: f.questions[0].ID, ChoiceID: f.correct[0].ID}
	_, err := svc.RecordResponse(req)
	require.NoError(t, err)

	// Same question again, even with a different choice.
	req.ChoiceID = f.wrong[0].ID
	_, err = svc.RecordResponse(req)
	requireKind(t, err, apperror.KindConflict)
}

func TestRecordResponse_AttemptNotFound(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAttemptService(db)

	_, err := svc.RecordResponse(dto.SubmitResponseRequest{
		AttemptID:  9999,
		QuestionID: f.questions[0].ID,
		ChoiceID:   f.correct[0].ID,
	})
	requireKind(t, err, apperror.KindNotFound)
}

func TestBulkRecordResponses(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAttemptService(db)
	attempt := startAttempt(t, svc, f)

	responses, err := svc.BulkRecordResponses(dto.BulkSubmitResponsesRequest{
		Responses: []dto.SubmitResponseRequest{
			{AttemptID: attempt.ID, QuestionID: f.questions[0].ID, ChoiceID: f.correct[0].ID},
			{AttemptID: attempt.ID, QuestionID: f.questions[1].ID, ChoiceID: f.correct[1].ID},
		},
	})
	require.NoError(t, err)
	require.Len(t, responses, 2)
}

func TestBulkRecordResponses_RollsBackOnDuplicate(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAttemptService(db)
	attempt := startAttempt(t, svc, f)

	// Two answers for the same question in one batch pass validation
	// individually but violate the unique index; the whole batch must roll
	// back.
	_, err := svc.BulkRecordResponses(dto.BulkSubmitResponsesRequest{
		Responses: []dto.SubmitResponseRequest{
			{AttemptID: attempt.ID, QuestionID: f.questions[0].ID, ChoiceID: f.correct[0].ID},
			{AttemptID: attempt.ID, QuestionID: f.questions[0].ID, ChoiceID: f.wrong[0].ID},
		},
	})
	requireKind(t, err, apperror.KindConflict)

	var count int64
	require.NoError(t, db.Model(&model.Response{}).Where("attempt_id = ?", attempt.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFinish(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAttemptService(db)
	attempt := startAttempt(t, svc, f)

	// Correct on the 5-point question, wrong on the 10-point one.
	_, err := svc.RecordResponse(dto.SubmitResponseRequest{AttemptID: attempt.ID, QuestionID: f.questions[0].ID, ChoiceID: f.correct[0].ID})
	require.NoError(t, err)
	_, err = svc.RecordResponse(dto.SubmitResponseRequest{AttemptID: attempt.ID, QuestionID: f.questions[1].ID, ChoiceID: f.wrong[1].ID})
	require.NoError(t, err)

	finished, err := svc.Finish(attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AttemptCompleted, finished.Status)
	assert.Equal(t, float64(5), finished.ScoreObtenu)
	assert.Equal(t, float64(15), finished.ScoreTotal)
	assert.Equal(t, 33.33, finished.Score)
	require.NotNil(t, finished.EndedAt)
}

func TestFinish_AlreadyCompleted(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAttemptService(db)
	attempt := startAttempt(t, svc, f)

	_, err := svc.Finish(attempt.ID)
	require.NoError(t, err)

	_, err = svc.Finish(attempt.ID)
	requireKind(t, err, apperror.KindConflict)
}

func TestFinish_NoResponses(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAttemptService(db)
	attempt := startAttempt(t, svc, f)

	finished, err := svc.Finish(attempt.ID)
	require.NoError(t, err)
	assert.Zero(t, finished.ScoreObtenu)
	assert.Zero(t, finished.Score)
	assert.Equal(t, model.AttemptCompleted, finished.Status)
}

func TestFinish_UsesFrozenCorrectness(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAttemptService(db)
	attempt := startAttempt(t, svc, f)

	_, err := svc.RecordResponse(dto.SubmitResponseRequest{AttemptID: attempt.ID, QuestionID: f.questions[0].ID, ChoiceID: f.correct[0].ID})
	require.NoError(t, err)

	// Editing the choice after submission must not change the recorded
	// correctness or the final score.
	require.NoError(t, db.Model(&model.Choice{}).Where("id = ?", f.correct[0].ID).Update("est_correct", false).Error)

	finished, err := svc.Finish(attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(5), finished.ScoreObtenu)
}

func TestUpdateAttempt_Abandon(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAttemptService(db)
	attempt := startAttempt(t, svc, f)

	status := model.AttemptAbandoned
	updated, err := svc.Update(attempt.ID, dto.UpdateAttemptRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, model.AttemptAbandoned, updated.Status)
	assert.Nil(t, updated.EndedAt)
}

func TestUpdateAttempt_CompletedIsFrozen(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAttemptService(db)
	attempt := startAttempt(t, svc, f)

	_, err := svc.Finish(attempt.ID)
	require.NoError(t, err)

	status := model.AttemptInProgress
	_, err = svc.Update(attempt.ID, dto.UpdateAttemptRequest{Status: &status})
	requireKind(t, err, apperror.KindConflict)
}

func TestDeleteAttempt(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAttemptService(db)
	attempt := startAttempt(t, svc, f)

	_, err := svc.RecordResponse(dto.SubmitResponseRequest{AttemptID: attempt.ID, QuestionID: f.questions[0].ID, ChoiceID: f.correct[0].ID})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(attempt.ID))

	_, err = svc.Get(attempt.ID)
	requireKind(t, err, apperror.KindNotFound)
}

func TestAttemptsByStudentAndQuiz(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAttemptService(db)

	startAttempt(t, svc, f)
	startAttempt(t, svc, f)

	byStudent, err := svc.ByStudent(f.student.ID)
	require.NoError(t, err)
	assert.Len(t, byStudent, 2)

	byQuiz, err := svc.ByQuiz(f.quiz.ID)
	require.NoError(t, err)
	assert.Len(t, byQuiz, 2)

	_, err = svc.ByStudent(9999)
	requireKind(t, err, apperror.KindNotFound)
	_, err = svc.ByQuiz(9999)
	requireKind(t, err, apperror.KindNotFound)
}

func TestListAttempts_StatusFilter(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAttemptService(db)

	first := startAttempt(t, svc, f)
	startAttempt(t, svc, f)
	_, err := svc.Finish(first.ID)
	require.NoError(t, err)

	status := model.AttemptCompleted
	page, err := svc.List(dto.AttemptListFilter{Status: &status, Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
}
