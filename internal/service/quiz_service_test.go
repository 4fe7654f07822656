package service

import (
	"regexp"
	"testing"

	"github.com/quizdeck/quizdeck/internal/apperror"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/quizdeck/quizdeck/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var codePattern = regexp.MustCompile(`^QUIZ-[0-9A-F]{8}$`)

func newQuizService(db *gorm.DB) QuizService {
	return NewQuizService(
		repository.NewQuizRepository(db),
		repository.NewModuleRepository(db),
		repository.NewProfessorRepository(db),
		repository.NewAttemptRepository(db),
		repository.NewGroupRepository(db),
		db,
	)
}

func TestCreateQuiz(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newQuizService(db)

	quiz, err := svc.Create(f.profUser.ID, dto.CreateQuizRequest{
		ModuleID: f.module.ID,
		Title:    "Nuclear fission",
		Duration: 45,
		Questions: []dto.QuestionInQuizRequest{
			{
				Text: "Who discovered fission?", Type: model.QuestionType3Choice, Points: 5,
				Choices: []dto.ChoiceInQuestionRequest{
					{Text: "Hahn and Strassmann", EstCorrect: true},
					{Text: "Rutherford"},
					{Text: "Bohr"},
				},
			},
		},
	})
	require.NoError(t, err)

	assert.Regexp(t, codePattern, quiz.Code)
	assert.Equal(t, f.professor.ID, quiz.ProfessorID)
	assert.True(t, quiz.Active)
	assert.Equal(t, 1, quiz.MaxAttempts)
	require.NotNil(t, quiz.StartDate)
	require.NotNil(t, quiz.EndDate)
	assert.True(t, quiz.EndDate.After(*quiz.StartDate))

	// Inline questions and choices land in the same transaction.
	full, err := svc.Get(quiz.ID)
	require.NoError(t, err)
	require.Len(t, full.Questions, 1)
	require.Len(t, full.Questions[0].Choices, 3)
}

func TestCreateQuiz_NotAProfessor(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newQuizService(db)

	_, err := svc.Create(f.studentUser.ID, dto.CreateQuizRequest{ModuleID: f.module.ID, Title: "Nope", Duration: 10})
	requireKind(t, err, apperror.KindForbidden)
}

func TestCreateQuiz_ModuleNotFound(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newQuizService(db)

	_, err := svc.Create(f.profUser.ID, dto.CreateQuizRequest{ModuleID: 9999, Title: "Nope", Duration: 10})
	requireKind(t, err, apperror.KindNotFound)
}

func TestGetQuizByCode(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newQuizService(db)

	quiz, err := svc.GetByCode(f.quiz.Code)
	require.NoError(t, err)
	assert.Equal(t, f.quiz.ID, quiz.ID)

	_, err = svc.GetByCode("QUIZ-NOPE0000")
	requireKind(t, err, apperror.KindNotFound)
}

func TestUpdateQuiz_OwnershipEnforced(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newQuizService(db)

	otherUser := model.User{LastName: "Planck", FirstName: "Max", Email: "planck@example.com", Password: "x", Role: model.RoleProfessor}
	require.NoError(t, db.Create(&otherUser).Error)
	require.NoError(t, db.Create(&model.Professor{UserID: otherUser.ID, Speciality: "Quanta"}).Error)

	title := "Hijacked"
	_, err := svc.Update(otherUser.ID, model.RoleProfessor, f.quiz.ID, dto.UpdateQuizRequest{Title: &title})
	requireKind(t, err, apperror.KindForbidden)

	// The owner can edit, and an admin can edit anything.
	updated, err := svc.Update(f.profUser.ID, model.RoleProfessor, f.quiz.ID, dto.UpdateQuizRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Hijacked", updated.Title)

	active := false
	updated, err = svc.Update(0, model.RoleAdmin, f.quiz.ID, dto.UpdateQuizRequest{Active: &active})
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, f.quiz.Code, updated.Code) // code never changes
}

func TestDeleteQuiz(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newQuizService(db)

	require.NoError(t, svc.Delete(f.quiz.ID))

	_, err := svc.Get(f.quiz.ID)
	requireKind(t, err, apperror.KindNotFound)

	require.Error(t, svc.Delete(9999))
}

func TestDeleteQuiz_CodeStaysReserved(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newQuizService(db)

	require.NoError(t, svc.Delete(f.quiz.ID))

	// The unique index on code still covers the soft-deleted row, so the
	// generator must keep treating the code as taken.
	exists, err := repository.NewQuizRepository(db).CodeExists(f.quiz.Code)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestQuizzesByGroup(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newQuizService(db)

	group := model.Group{Name: "L3 Physics", Level: "L3"}
	require.NoError(t, db.Create(&group).Error)
	require.NoError(t, db.Model(&group).Association("Quizzes").Append(&f.quiz))

	other := model.Group{Name: "M1 Physics", Level: "M1"}
	require.NoError(t, db.Create(&other).Error)

	quizzes, err := svc.GetByGroup(group.ID)
	require.NoError(t, err)
	require.Len(t, quizzes, 1)
	assert.Equal(t, f.quiz.ID, quizzes[0].ID)

	quizzes, err = svc.GetByGroup(other.ID)
	require.NoError(t, err)
	assert.Empty(t, quizzes)

	_, err = svc.GetByGroup(9999)
	requireKind(t, err, apperror.KindNotFound)
}

func TestQuizStatistics(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	quizSvc := newQuizService(db)
	attemptSvc := newAttemptService(db)

	first := startAttempt(t, attemptSvc, f)
	startAttempt(t, attemptSvc, f)
	_, err := attemptSvc.RecordResponse(dto.SubmitResponseRequest{AttemptID: first.ID, QuestionID: f.questions[0].ID, ChoiceID: f.correct[0].ID})
	require.NoError(t, err)
	_, err = attemptSvc.Finish(first.ID)
	require.NoError(t, err)

	stats, err := quizSvc.Statistics(f.quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalQuestions)
	assert.Equal(t, 2, stats.TotalAttempts)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.InProgress)
	assert.Zero(t, stats.Abandoned)
	require.NotNil(t, stats.AverageScore)
	assert.Equal(t, float64(5), *stats.AverageScore)
	require.NotNil(t, stats.AveragePercentage)
	assert.Equal(t, 33.33, *stats.AveragePercentage)
}

func TestListQuizzes_Filters(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newQuizService(db)

	inactive := model.Quiz{Title: "Old", Duration: 10, Code: "QUIZ-OLD00001", ProfessorID: f.professor.ID, ModuleID: f.module.ID}
	require.NoError(t, db.Create(&inactive).Error)
	require.NoError(t, db.Model(&inactive).Update("active", false).Error)

	active := true
	page, err := svc.List(dto.QuizListFilter{Active: &active, Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	page, err = svc.List(dto.QuizListFilter{ModuleID: &f.module.ID, Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
}
