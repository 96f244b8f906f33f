package service

import (
	"context"
	"time"

	"github.com/nourishnet/ordering-service/config"
	"github.com/nourishnet/ordering-service/internal/domain"
	"github.com/nourishnet/ordering-service/internal/dto"
	"github.com/nourishnet/ordering-service/internal/repository"
	"github.com/nourishnet/ordering-service/pkg/errs"
	"github.com/nourishnet/ordering-service/pkg/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	repo   repository.UserRepository
	config *config.Config
}

func CreateUserService(repo repository.UserRepository, config *config.Config) UserService {
	return &UserServiceImpl{repo: repo, config: config}
}

func (s *UserServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (resp dto.UserResponse, err error) {
	if req.Fullname == "" || req.Email == "" || req.Contact == "" || req.Password == "" {
		return resp, errs.ErrMissingFields
	}

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return
	}
	if user.ID != 0 {
		return resp, errs.ErrEmailAlreadyUsed
	}

	user, err = s.repo.GetUserByContact(ctx, req.Contact)
	if err != nil {
		return
	}
	if user.ID != 0 {
		return resp, errs.ErrPhoneAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	userEnt := domain.User{
		Fullname:     req.Fullname,
		Email:        req.Email,
		Contact:      req.Contact,
		PasswordHash: string(hash),
		ExternalID:   ulid.Make().String(),
	}

	id, err := s.repo.AddUser(ctx, userEnt)
	if err != nil {
		return
	}

	return dto.UserResponse{
		ID:       id,
		Fullname: userEnt.Fullname,
		Email:    userEnt.Email,
		Contact:  userEnt.Contact,
	}, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (resp dto.LoginResponse, err error) {
	if req.Contact == "" || req.Password == "" {
		return resp, errs.ErrMissingFields
	}

	user, err := s.repo.GetUserByContact(ctx, req.Contact)
	if err != nil {
		return
	}
	if user.ID == 0 {
		return resp, errs.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return resp, errs.ErrInvalidCredentials
	}

	if err = s.repo.UpdateLastLogin(ctx, user.ID, time.Now().Unix()); err != nil {
		return
	}

	token, err := utils.CreateSessionToken(user.ID, user.Fullname, user.ExternalID, s.config.JWTSecret)
	if err != nil {
		return
	}

	resp.Token = token
	resp.User = dto.UserResponse{
		ID:       user.ID,
		Fullname: user.Fullname,
		Email:    user.Email,
		Contact:  user.Contact,
	}

	return
}

func (s *UserServiceImpl) GetUser(ctx context.Context, userID int64) (resp dto.UserResponse, err error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return
	}
	if user.ID == 0 {
		return resp, errs.ErrAccountNotFound
	}

	return dto.UserResponse{
		ID:       user.ID,
		Fullname: user.Fullname,
		Email:    user.Email,
		Contact:  user.Contact,
	}, nil
}
