package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"soulmate/internal/models/db_models"
	"soulmate/internal/models/request_models"
	"soulmate/internal/repositories"
	"soulmate/pkg/utils"
)

type AccountServiceInterface interface {
	IssueToken(ctx context.Context, request request_models.TokenRequest) (string, error)
	GetUserByEmail(ctx context.Context, email string) (*db_models.User, error)
	ListUsers(ctx context.Context, search string) ([]db_models.User, error)
	MakeAdmin(ctx context.Context, id string) error
	MakePremium(ctx context.Context, id string) error
}

type AccountService struct {
	userRepo repositories.UserRepository
}

func NewAccountService(userRepo repositories.UserRepository) AccountServiceInterface {
	return &AccountService{userRepo: userRepo}
}

// IssueToken signs a bearer token for the given email, creating the user
// record on first sight. Calling it again for the same email only issues a
// fresh token.
func (a *AccountService) IssueToken(ctx context.Context, request request_models.TokenRequest) (string, error) {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		logrus.WithError(err).Error("failed to look up user on sign-in")
		return "", utils.ErrDatabaseError
	}

	if existing == nil {
		newUser := &db_models.User{
			Name:     request.Name,
			Email:    request.Email,
			PhotoURL: request.PhotoURL,
			Role:     db_models.RoleUser,
		}
		if err := a.userRepo.Insert(ctx, newUser); err != nil {
			logrus.WithError(err).Error("failed to create user on sign-in")
			return "", utils.ErrDatabaseError
		}
	}

	token, err := utils.CreateToken(request.Email)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (a *AccountService) GetUserByEmail(ctx context.Context, email string) (*db_models.User, error) {
	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (a *AccountService) ListUsers(ctx context.Context, search string) ([]db_models.User, error) {
	users, err := a.userRepo.List(ctx, search)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return users, nil
}

func (a *AccountService) MakeAdmin(ctx context.Context, id string) error {
	if err := a.userRepo.MakeAdmin(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrUserNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) MakePremium(ctx context.Context, id string) error {
	if err := a.userRepo.MakePremium(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrUserNotFound
		}
		logrus.WithError(err).Error("premium grant transaction failed")
		return utils.ErrDatabaseError
	}
	return nil
}
