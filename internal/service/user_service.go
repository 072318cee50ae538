// Package service contains the application's business logic.
package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo repository.UserRepository
}

type SignupInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type UpdateProfileInput struct {
	UserID       uint
	Username     string
	ProfileImage string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Signup registers a new account. Email and username collisions both come
// back as a duplicate-identity error, before and after the insert, so a
// concurrent signup race still resolves to the same answer.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	// Identity matching is case-sensitive and exact; no normalization
	// beyond surrounding whitespace.
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	if err := validation.Username(in.Username); err != nil {
		return nil, err
	}
	if err := validation.Email(in.Email); err != nil {
		return nil, err
	}
	if err := validation.Password(in.Password); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewDuplicateIdentityError()
	}
	existing, err = s.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewDuplicateIdentityError()
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials. An unknown email and a wrong password return
// the same error value; callers must not distinguish them.
func (s *UserService) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	email := strings.TrimSpace(in.Email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewInvalidCredentialsError()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, models.NewInvalidCredentialsError()
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile changes the caller's own username or profile image. Posts and
// comments keep the author snapshot taken at their creation; a rename does
// not rewrite them.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Username != "" && in.Username != user.Username {
		if err := validation.Username(in.Username); err != nil {
			return nil, err
		}
		holder, err := s.userRepo.GetByUsername(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if holder != nil && holder.ID != user.ID {
			return nil, models.NewUsernameTakenError()
		}
		user.Username = in.Username
	}
	if in.ProfileImage != "" {
		user.ProfileImage = in.ProfileImage
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
