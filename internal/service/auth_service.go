package service

import (
	"errors"
	"fmt"

	"github.com/quizdeck/quizdeck/config"
	"github.com/quizdeck/quizdeck/internal/apperror"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/quizdeck/quizdeck/internal/repository"
	"github.com/quizdeck/quizdeck/internal/token"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
	Profile(userID uint) (*model.User, error)
	UpdateProfile(userID uint, req dto.UpdateProfileRequest) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	db       *gorm.DB
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config, db *gorm.DB) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg, db: db}
}

// Register creates the user and its role profile in one transaction: a
// Professeur gets a Professor record, an Etudiant gets a Student record with a
// generated student number.
func (s *authService) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperror.ValidationFields("validation failed", map[string]string{
			"email": "email is already registered",
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := model.User{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Email:     req.Email,
		Password:  string(hash),
		Role:      req.Role,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		switch req.Role {
		case model.RoleProfessor:
			return tx.Create(&model.Professor{UserID: user.ID, Speciality: "General"}).Error
		case model.RoleStudent:
			return tx.Create(&model.Student{
				UserID:        user.ID,
				StudentNumber: fmt.Sprintf("STU%d", user.ID),
				Level:         "L1",
			}).Error
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Registration transaction failed")
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("email is already registered")
		}
		return nil, apperror.Internal(err)
	}

	signed, err := token.Generate(s.cfg, &user)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	full, err := s.userRepo.FindByIDWithProfile(user.ID)
	if err != nil {
		full = &user
	}
	return &dto.AuthResponse{User: full, Token: signed}, nil
}

func (s *authService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperror.Unauthenticated("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apperror.Unauthenticated("invalid credentials")
	}

	signed, err := token.Generate(s.cfg, user)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	full, err := s.userRepo.FindByIDWithProfile(user.ID)
	if err != nil {
		full = user
	}
	return &dto.AuthResponse{User: full, Token: signed}, nil
}

func (s *authService) Profile(userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByIDWithProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (s *authService) UpdateProfile(userID uint, req dto.UpdateProfileRequest) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user")
		}
		return nil, apperror.Internal(err)
	}

	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(*req.Email); err == nil {
			return nil, apperror.ValidationFields("validation failed", map[string]string{
				"email": "email is already registered",
			})
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		user.Password = string(hash)
	}

	if err := s.userRepo.Update(user); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to update profile")
		return nil, apperror.Internal(err)
	}
	return s.Profile(userID)
}
