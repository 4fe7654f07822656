package service

import (
	"errors"
	"fmt"

	"github.com/quizdeck/quizdeck/internal/apperror"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/quizdeck/quizdeck/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminService backs the administration screens: dashboard counts and
// cross-entity management.
type AdminService interface {
	Stats() (*dto.AdminStats, error)

	ListStudents() ([]model.Student, error)
	CreateStudent(req dto.CreateStudentRequest) (*model.Student, error)
	UpdateStudent(id uint, req dto.UpdateStudentRequest) (*model.Student, error)
	DeleteStudent(id uint) error

	ListProfessors() ([]model.Professor, error)
	CreateProfessor(req dto.CreateProfessorRequest) (*model.Professor, error)
	UpdateProfessor(id uint, req dto.UpdateProfessorRequest) (*model.Professor, error)
	DeleteProfessor(id uint) error
	ListSpecialities() ([]string, error)

	ListModules() ([]model.Module, error)
	CreateModule(req dto.CreateModuleRequest) (*model.Module, error)
	UpdateModule(id uint, req dto.UpdateModuleRequest) (*model.Module, error)
	DeleteModule(id uint) error

	ListGroups() ([]model.Group, error)
	DeleteGroup(id uint) error
}

type adminService struct {
	userRepo    repository.UserRepository
	studentRepo repository.StudentRepository
	profRepo    repository.ProfessorRepository
	moduleRepo  repository.ModuleRepository
	groupRepo   repository.GroupRepository
	db          *gorm.DB
}

func NewAdminService(
	userRepo repository.UserRepository,
	studentRepo repository.StudentRepository,
	profRepo repository.ProfessorRepository,
	moduleRepo repository.ModuleRepository,
	groupRepo repository.GroupRepository,
	db *gorm.DB,
) AdminService {
	return &adminService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		profRepo:    profRepo,
		moduleRepo:  moduleRepo,
		groupRepo:   groupRepo,
		db:          db,
	}
}

func (s *adminService) Stats() (*dto.AdminStats, error) {
	stats := dto.AdminStats{}
	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&model.User{}, &stats.Users},
		{&model.Student{}, &stats.Students},
		{&model.Professor{}, &stats.Professors},
		{&model.Module{}, &stats.Modules},
		{&model.Group{}, &stats.Groups},
		{&model.Quiz{}, &stats.Quizzes},
		{&model.Question{}, &stats.Questions},
		{&model.Attempt{}, &stats.Attempts},
		{&model.Response{}, &stats.Responses},
	}
	for _, c := range counts {
		if err := s.db.Model(c.model).Count(c.dest).Error; err != nil {
			log.Error().Err(err).Msg("Failed to compute admin stats")
			return nil, apperror.Internal(err)
		}
	}
	return &stats, nil
}

func (s *adminService) ListStudents() ([]model.Student, error) {
	students, err := s.studentRepo.FindAll()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return students, nil
}

// CreateStudent creates the backing user account and the student profile in
// one transaction.
func (s *adminService) CreateStudent(req dto.CreateStudentRequest) (*model.Student, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperror.ValidationFields("validation failed", map[string]string{
			"email": "email is already registered",
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var student model.Student
	err = s.db.Transaction(func(tx *gorm.DB) error {
		user := model.User{
			LastName:  req.LastName,
			FirstName: req.FirstName,
			Email:     req.Email,
			Password:  string(hash),
			Role:      model.RoleStudent,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		student = model.Student{
			UserID:        user.ID,
			StudentNumber: req.StudentNumber,
			Level:         req.Level,
			GroupID:       req.GroupID,
		}
		if student.StudentNumber == "" {
			student.StudentNumber = fmt.Sprintf("STU%d", user.ID)
		}
		return tx.Create(&student).Error
	})
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Student creation failed")
		return nil, apperror.Internal(err)
	}
	return s.studentRepo.FindByID(student.ID)
}

func (s *adminService) UpdateStudent(id uint, req dto.UpdateStudentRequest) (*model.Student, error) {
	student, err := s.studentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("student")
		}
		return nil, apperror.Internal(err)
	}

	if req.StudentNumber != nil {
		student.StudentNumber = *req.StudentNumber
	}
	if req.Level != nil {
		student.Level = *req.Level
	}
	if req.GroupID != nil {
		student.GroupID = req.GroupID
	}
	if req.LastName != nil || req.FirstName != nil || req.Email != nil {
		user, err := s.userRepo.FindByID(student.UserID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if req.LastName != nil {
			user.LastName = *req.LastName
		}
		if req.FirstName != nil {
			user.FirstName = *req.FirstName
		}
		if req.Email != nil {
			user.Email = *req.Email
		}
		if err := s.userRepo.Update(user); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	student.User = nil
	student.Group = nil
	if err := s.studentRepo.Update(student); err != nil {
		log.Error().Err(err).Uint("studentID", id).Msg("Failed to update student")
		return nil, apperror.Internal(err)
	}
	return s.studentRepo.FindByID(id)
}

// DeleteStudent removes the backing user, cascading to the profile.
func (s *adminService) DeleteStudent(id uint) error {
	student, err := s.studentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("student")
		}
		return apperror.Internal(err)
	}
	if err := s.userRepo.Delete(student.UserID); err != nil {
		log.Error().Err(err).Uint("studentID", id).Msg("Failed to delete student")
		return apperror.Internal(err)
	}
	return nil
}

func (s *adminService) ListProfessors() ([]model.Professor, error) {
	professors, err := s.profRepo.FindAll()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return professors, nil
}

func (s *adminService) CreateProfessor(req dto.CreateProfessorRequest) (*model.Professor, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperror.ValidationFields("validation failed", map[string]string{
			"email": "email is already registered",
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var professor model.Professor
	err = s.db.Transaction(func(tx *gorm.DB) error {
		user := model.User{
			LastName:  req.LastName,
			FirstName: req.FirstName,
			Email:     req.Email,
			Password:  string(hash),
			Role:      model.RoleProfessor,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		professor = model.Professor{UserID: user.ID, Speciality: req.Speciality}
		if professor.Speciality == "" {
			professor.Speciality = "General"
		}
		return tx.Create(&professor).Error
	})
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Professor creation failed")
		return nil, apperror.Internal(err)
	}
	return s.profRepo.FindByID(professor.ID)
}

func (s *adminService) UpdateProfessor(id uint, req dto.UpdateProfessorRequest) (*model.Professor, error) {
	professor, err := s.profRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("professor")
		}
		return nil, apperror.Internal(err)
	}

	if req.Speciality != nil {
		professor.Speciality = *req.Speciality
	}
	if req.LastName != nil || req.FirstName != nil || req.Email != nil {
		user, err := s.userRepo.FindByID(professor.UserID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if req.LastName != nil {
			user.LastName = *req.LastName
		}
		if req.FirstName != nil {
			user.FirstName = *req.FirstName
		}
		if req.Email != nil {
			user.Email = *req.Email
		}
		if err := s.userRepo.Update(user); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	professor.User = nil
	if err := s.profRepo.Update(professor); err != nil {
		log.Error().Err(err).Uint("professorID", id).Msg("Failed to update professor")
		return nil, apperror.Internal(err)
	}
	return s.profRepo.FindByID(id)
}

func (s *adminService) DeleteProfessor(id uint) error {
	professor, err := s.profRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("professor")
		}
		return apperror.Internal(err)
	}
	if err := s.userRepo.Delete(professor.UserID); err != nil {
		log.Error().Err(err).Uint("professorID", id).Msg("Failed to delete professor")
		return apperror.Internal(err)
	}
	return nil
}

func (s *adminService) ListSpecialities() ([]string, error) {
	specialities, err := s.profRepo.ListSpecialities()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return specialities, nil
}

func (s *adminService) ListModules() ([]model.Module, error) {
	modules, err := s.moduleRepo.FindAll()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return modules, nil
}

func (s *adminService) CreateModule(req dto.CreateModuleRequest) (*model.Module, error) {
	module := model.Module{Name: req.Name, Description: req.Description}
	if err := s.moduleRepo.Create(&module); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("a module with this name already exists")
		}
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create module")
		return nil, apperror.Internal(err)
	}
	return &module, nil
}

func (s *adminService) UpdateModule(id uint, req dto.UpdateModuleRequest) (*model.Module, error) {
	module, err := s.moduleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("module")
		}
		return nil, apperror.Internal(err)
	}
	if req.Name != nil {
		module.Name = *req.Name
	}
	if req.Description != nil {
		module.Description = *req.Description
	}
	if err := s.moduleRepo.Update(module); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("a module with this name already exists")
		}
		return nil, apperror.Internal(err)
	}
	return module, nil
}

func (s *adminService) DeleteModule(id uint) error {
	if _, err := s.moduleRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("module")
		}
		return apperror.Internal(err)
	}
	if err := s.moduleRepo.Delete(id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (s *adminService) ListGroups() ([]model.Group, error) {
	groups, err := s.groupRepo.FindAll()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return groups, nil
}

func (s *adminService) DeleteGroup(id uint) error {
	if _, err := s.groupRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("group")
		}
		return apperror.Internal(err)
	}
	if err := s.groupRepo.Delete(id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
