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

func newAdminService(db *gorm.DB) AdminService {
	return NewAdminService(
		repository.NewUserRepository(db),
		repository.NewStudentRepository(db),
		repository.NewProfessorRepository(db),
		repository.NewModuleRepository(db),
		repository.NewGroupRepository(db),
		db,
	)
}

func TestAdminStats(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	svc := newAdminService(db)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Users)
	assert.Equal(t, int64(1), stats.Students)
	assert.Equal(t, int64(1), stats.Professors)
	assert.Equal(t, int64(1), stats.Modules)
	assert.Equal(t, int64(1), stats.Quizzes)
	assert.Equal(t, int64(2), stats.Questions)
	assert.Zero(t, stats.Attempts)
}

func TestAdminCreateStudent(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	svc := newAdminService(db)

	student, err := svc.CreateStudent(dto.CreateStudentRequest{
		LastName:  "Franklin",
		FirstName: "Rosalind",
		Email:     "rosalind@example.com",
		Password:  "photo51xx",
		Level:     "L2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, student.StudentNumber) // generated when omitted
	assert.Equal(t, "L2", student.Level)

	var user model.User
	require.NoError(t, db.Where("email = ?", "rosalind@example.com").First(&user).Error)
	assert.Equal(t, model.RoleStudent, user.Role)

	// Duplicate email is rejected before touching the database.
	_, err = svc.CreateStudent(dto.CreateStudentRequest{
		LastName: "Dup", FirstName: "Dup", Email: "rosalind@example.com", Password: "password1",
	})
	requireKind(t, err, apperror.KindValidation)
}

func TestAdminDeleteStudent_RemovesUser(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAdminService(db)

	require.NoError(t, svc.DeleteStudent(f.student.ID))

	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", f.studentUser.ID).Count(&count).Error)
	assert.Zero(t, count)

	require.Error(t, svc.DeleteStudent(f.student.ID))
}

func TestAdminCreateProfessor(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	svc := newAdminService(db)

	professor, err := svc.CreateProfessor(dto.CreateProfessorRequest{
		LastName:  "Faraday",
		FirstName: "Michael",
		Email:     "faraday@example.com",
		Password:  "induction1",
	})
	require.NoError(t, err)
	assert.Equal(t, "General", professor.Speciality) // default when omitted

	specialities, err := svc.ListSpecialities()
	require.NoError(t, err)
	assert.Contains(t, specialities, "Physics")
	assert.Contains(t, specialities, "General")
}

func TestAdminUpdateStudent(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newAdminService(db)

	level := "M1"
	lastName := "Renamed"
	updated, err := svc.UpdateStudent(f.student.ID, dto.UpdateStudentRequest{Level: &level, LastName: &lastName})
	require.NoError(t, err)
	assert.Equal(t, "M1", updated.Level)

	var user model.User
	require.NoError(t, db.First(&user, f.studentUser.ID).Error)
	assert.Equal(t, "Renamed", user.LastName)
}

func TestAdminModules(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	svc := newAdminService(db)

	module, err := svc.CreateModule(dto.CreateModuleRequest{Name: "Thermodynamics"})
	require.NoError(t, err)

	// Module names are unique.
	_, err = svc.CreateModule(dto.CreateModuleRequest{Name: "Thermodynamics"})
	requireKind(t, err, apperror.KindConflict)

	name := "Statistical mechanics"
	updated, err := svc.UpdateModule(module.ID, dto.UpdateModuleRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)

	require.NoError(t, svc.DeleteModule(module.ID))
	_, err = svc.UpdateModule(module.ID, dto.UpdateModuleRequest{})
	requireKind(t, err, apperror.KindNotFound)
}
