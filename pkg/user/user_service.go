package user

import (
	"context"
	"errors"
	"fmt"

	"diet-diary/domain"
	"diet-diary/entities"

	"golang.org/x/crypto/bcrypt"
)

type (
	UserService interface {
		CreateUser(ctx context.Context, req domain.UserCreateRequest) (domain.UserCreatedResponse, error)
		UpdateUser(ctx context.Context, req domain.UserUpdateRequest) error
		DeleteUser(ctx context.Context, req domain.UserDeleteRequest) error
		GetProfile(ctx context.Context, req domain.IDRequest) (domain.ProfileResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
	}

	userService struct {
		userRepository UserRepository
		bcryptCost     int
	}
)

func NewUserService(userRepository UserRepository, bcryptCost int) UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userService{
		userRepository: userRepository,
		bcryptCost:     bcryptCost,
	}
}

func (s *userService) CreateUser(ctx context.Context, req domain.UserCreateRequest) (domain.UserCreatedResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return domain.UserCreatedResponse{}, fmt.Errorf("hash password: %w", err)
	}

	user := &entities.User{
		Username: req.Username,
		Password: string(hashed),
		Email:    req.Email,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserCreatedResponse{}, err
	}

	return domain.UserCreatedResponse{UserID: user.ID}, nil
}

// UpdateUser writes the present profile fields. An unknown id updates
// nothing and is not an error.
func (s *userService) UpdateUser(ctx context.Context, req domain.UserUpdateRequest) error {
	_, err := s.userRepository.UpdateProfile(ctx, req.ID, ProfileUpdate{
		Height:        req.Height,
		Gender:        req.Gender,
		DailyKcal:     req.DailyKcal,
		DailyCarbs:    req.DailyCarbs,
		DailyFat:      req.DailyFat,
		DailyProteins: req.DailyProteins,
	})
	return err
}

// DeleteUser removes the user only when the password matches. A wrong
// password or an unknown id deletes nothing.
func (s *userService) DeleteUser(ctx context.Context, req domain.UserDeleteRequest) error {
	user, err := s.userRepository.GetUserByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil
	}
	return s.userRepository.DeleteUsers(ctx, UserFilter{ID: user.ID})
}

func (s *userService) GetProfile(ctx context.Context, req domain.IDRequest) (domain.ProfileResponse, error) {
	profile, err := s.userRepository.GetProfile(ctx, req.ID)
	if err != nil {
		return domain.ProfileResponse{}, err
	}

	res := domain.ProfileResponse{
		Height:        profile.Height,
		Gender:        profile.Gender,
		DailyCarbs:    profile.DailyCarbs,
		DailyProteins: profile.DailyProteins,
		DailyFat:      profile.DailyFat,
	}
	if profile.User != nil {
		res.Username = profile.User.Username
	}
	return res, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}
	return domain.LoginResponse{UserID: user.ID}, nil
}
