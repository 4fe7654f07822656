package service

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/quizdeck/quizdeck/internal/apperror"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database. The DSN is unique per test so
// parallel tests never share state through the sqlite shared cache.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Professor{},
		&model.Student{},
		&model.Module{},
		&model.Group{},
		&model.Quiz{},
		&model.Question{},
		&model.Choice{},
		&model.Attempt{},
		&model.Response{},
	))
	return db
}

func requireKind(t *testing.T, err error, kind apperror.Kind) {
	t.Helper()
	require.Error(t, err)
	var ae *apperror.Error
	require.ErrorAs(t, err, &ae)
	require.Equal(t, kind, ae.Kind)
}

// fixture is a seeded professor, student, module and one quiz with two
// questions: 5 points (3 choices) and 10 points (4 choices), one correct
// choice each.
type fixture struct {
	db           *gorm.DB
	professor    model.Professor
	profUser     model.User
	student      model.Student
	studentUser  model.User
	module       model.Module
	quiz         model.Quiz
	questions    []model.Question
	correct      []model.Choice // correct choice per question, same order
	wrong        []model.Choice // one wrong choice per question
}

func seedFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	f := &fixture{db: db}

	f.profUser = model.User{LastName: "Curie", FirstName: "Marie", Email: "marie.curie@example.com", Password: "x", Role: model.RoleProfessor}
	require.NoError(t, db.Create(&f.profUser).Error)
	f.professor = model.Professor{UserID: f.profUser.ID, Speciality: "Physics"}
	require.NoError(t, db.Create(&f.professor).Error)

	f.studentUser = model.User{LastName: "Meitner", FirstName: "Lise", Email: "lise.meitner@example.com", Password: "x", Role: model.RoleStudent}
	require.NoError(t, db.Create(&f.studentUser).Error)
	f.student = model.Student{UserID: f.studentUser.ID, StudentNumber: "STU1", Level: "L1"}
	require.NoError(t, db.Create(&f.student).Error)

	f.module = model.Module{Name: "Radioactivity 101"}
	require.NoError(t, db.Create(&f.module).Error)

	f.quiz = model.Quiz{
		Title:       "Decay chains",
		Duration:    30,
		Code:        "QUIZ-TEST0001",
		ProfessorID: f.professor.ID,
		ModuleID:    f.module.ID,
		MaxAttempts: 1,
		Active:      true,
		Questions: []model.Question{
			{
				Text: "What does alpha decay emit?", Type: model.QuestionType3Choice, Points: 5,
				Choices: []model.Choice{
					{Text: "Helium nucleus", EstCorrect: true},
					{Text: "Electron"},
					{Text: "Photon"},
				},
			},
			{
				Text: "Which particle is emitted in beta-minus decay?", Type: model.QuestionType4Choice, Points: 10,
				Choices: []model.Choice{
					{Text: "Electron", EstCorrect: true},
					{Text: "Positron"},
					{Text: "Neutron"},
					{Text: "Proton"},
				},
			},
		},
	}
	require.NoError(t, db.Create(&f.quiz).Error)

	require.NoError(t, db.Preload("Choices").Where("quiz_id = ?", f.quiz.ID).Order("id").Find(&f.questions).Error)
	require.Len(t, f.questions, 2)
	for _, q := range f.questions {
		var correct, wrong *model.Choice
		for i := range q.Choices {
			if q.Choices[i].EstCorrect {
				correct = &q.Choices[i]
			} else if wrong == nil {
				wrong = &q.Choices[i]
			}
		}
		require.NotNil(t, correct)
		require.NotNil(t, wrong)
		f.correct = append(f.correct, *correct)
		f.wrong = append(f.wrong, *wrong)
	}
	return f
}
