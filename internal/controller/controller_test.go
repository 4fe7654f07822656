package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/middleware"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/quizdeck/quizdeck/internal/repository"
	"github.com/quizdeck/quizdeck/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	db      *gorm.DB
	router  *gin.Engine
	student model.Student
	quiz    model.Quiz
	correct model.Choice
}

// newTestEnv wires real services over an in-memory database and registers the
// quiz and attempt routes without the auth middleware, so handler behavior can
// be exercised directly.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Professor{}, &model.Student{}, &model.Module{}, &model.Group{},
		&model.Quiz{}, &model.Question{}, &model.Choice{}, &model.Attempt{}, &model.Response{},
	))

	env := &testEnv{db: db}

	profUser := model.User{LastName: "Lovelace", FirstName: "Ada", Email: "ada@example.com", Password: "x", Role: model.RoleProfessor}
	require.NoError(t, db.Create(&profUser).Error)
	professor := model.Professor{UserID: profUser.ID, Speciality: "Computing"}
	require.NoError(t, db.Create(&professor).Error)

	studentUser := model.User{LastName: "Hopper", FirstName: "Grace", Email: "grace@example.com", Password: "x", Role: model.RoleStudent}
	require.NoError(t, db.Create(&studentUser).Error)
	env.student = model.Student{UserID: studentUser.ID, StudentNumber: "STU1", Level: "L1"}
	require.NoError(t, db.Create(&env.student).Error)

	module := model.Module{Name: "Programming"}
	require.NoError(t, db.Create(&module).Error)

	env.quiz = model.Quiz{
		Title: "Loops", Duration: 20, Code: "QUIZ-AB12CD34",
		ProfessorID: professor.ID, ModuleID: module.ID, MaxAttempts: 1, Active: true,
		Questions: []model.Question{{
			Text: "What repeats?", Type: model.QuestionType3Choice, Points: 5,
			Choices: []model.Choice{
				{Text: "A loop", EstCorrect: true},
				{Text: "A constant"},
				{Text: "A comment"},
			},
		}},
	}
	require.NoError(t, db.Create(&env.quiz).Error)

	var question model.Question
	require.NoError(t, db.Preload("Choices").Where("quiz_id = ?", env.quiz.ID).First(&question).Error)
	env.quiz.Questions = []model.Question{question}
	for _, ch := range question.Choices {
		if ch.EstCorrect {
			env.correct = ch
		}
	}

	quizRepo := repository.NewQuizRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	quizSvc := service.NewQuizService(quizRepo, repository.NewModuleRepository(db), repository.NewProfessorRepository(db), attemptRepo, repository.NewGroupRepository(db), db)
	attemptSvc := service.NewAttemptService(
		attemptRepo,
		repository.NewResponseRepository(db),
		quizRepo,
		repository.NewQuestionRepository(db),
		repository.NewChoiceRepository(db),
		repository.NewStudentRepository(db),
		db,
	)
	responseSvc := service.NewResponseService(repository.NewResponseRepository(db), attemptRepo, repository.NewChoiceRepository(db))

	quizCtrl := NewQuizController(quizSvc)
	attemptCtrl := NewAttemptController(attemptSvc)
	responseCtrl := NewResponseController(responseSvc, attemptSvc)

	r := gin.New()
	r.GET("/quizzes/code/:code", quizCtrl.GetByCode)
	r.GET("/quizzes/:id", quizCtrl.Get)
	r.POST("/attempts", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, env.student.UserID)
		attemptCtrl.Start(c)
	})
	r.POST("/attempts/:id/finish", attemptCtrl.Finish)
	r.POST("/responses", responseCtrl.Submit)
	env.router = r
	return env
}

func (env *testEnv) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, dto.APIResponse) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	env.router.ServeHTTP(w, req)

	var envelope dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestGetQuizByCodeHandler(t *testing.T) {
	env := newTestEnv(t)

	w, envelope := env.do(t, http.MethodGet, "/quizzes/code/QUIZ-AB12CD34", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, envelope.Success)

	w, envelope = env.do(t, http.MethodGet, "/quizzes/code/QUIZ-MISSING0", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "quiz not found", envelope.Message)
}

func TestGetQuizHandler_InvalidID(t *testing.T) {
	env := newTestEnv(t)

	w, envelope := env.do(t, http.MethodGet, "/quizzes/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "invalid id format", envelope.Message)
}

func TestAttemptLifecycleHandlers(t *testing.T) {
	env := newTestEnv(t)

	// Start resolves the student from the caller's profile.
	w, envelope := env.do(t, http.MethodPost, "/attempts", gin.H{"quiz_id": env.quiz.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, envelope.Success)

	var attempt dto.AttemptResponse
	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &attempt))
	assert.Equal(t, env.student.ID, attempt.StudentID)
	assert.Equal(t, model.AttemptInProgress, attempt.Status)

	// Answer the only question correctly.
	w, envelope = env.do(t, http.MethodPost, "/responses", gin.H{
		"attempt_id":  attempt.ID,
		"question_id": env.quiz.Questions[0].ID,
		"choice_id":   env.correct.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Answering the same question again is a conflict.
	w, envelope = env.do(t, http.MethodPost, "/responses", gin.H{
		"attempt_id":  attempt.ID,
		"question_id": env.quiz.Questions[0].ID,
		"choice_id":   env.correct.ID,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, envelope.Success)

	// Finish computes the score.
	w, envelope = env.do(t, http.MethodPost, fmt.Sprintf("/attempts/%d/finish", attempt.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	raw, err = json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &attempt))
	assert.Equal(t, model.AttemptCompleted, attempt.Status)
	assert.Equal(t, float64(5), attempt.ScoreObtenu)
	assert.Equal(t, float64(100), attempt.Score)

	// Finishing twice is rejected.
	w, _ = env.do(t, http.MethodPost, fmt.Sprintf("/attempts/%d/finish", attempt.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSubmitResponseHandler_BadBody(t *testing.T) {
	env := newTestEnv(t)

	w, envelope := env.do(t, http.MethodPost, "/responses", gin.H{"attempt_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, envelope.Success)
}
