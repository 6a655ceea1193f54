package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"civix/internal/models/db_models"
	"civix/internal/models/request_models"
	"civix/internal/models/response_models"
	"civix/internal/repositories"
	"civix/pkg/utils"
)

// UserServiceInterface covers the admin-facing account management surface.
type UserServiceInterface interface {
	GetAllUsers(ctx context.Context) ([]response_models.AccountResponse, error)
	GetUserById(ctx context.Context, id uuid.UUID) (*response_models.AccountResponse, error)
	UpdateProfile(ctx context.Context, callerRole string, id uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role string) (*response_models.AccountResponse, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type UserService struct {
	accountRepo repositories.AccountRepository
}

func NewUserService(accountRepo repositories.AccountRepository) UserServiceInterface {
	return &UserService{
		accountRepo: accountRepo,
	}
}

func (u *UserService) GetAllUsers(ctx context.Context) ([]response_models.AccountResponse, error) {
	accounts, err := u.accountRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.AccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, toAccountResponse(&accounts[i]))
	}
	return out, nil
}

func (u *UserService) GetUserById(ctx context.Context, id uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := u.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	resp := toAccountResponse(account)
	return &resp, nil
}

func (u *UserService) UpdateProfile(ctx context.Context, callerRole string, id uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error) {

	account, err := u.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if request.Name != "" {
		account.Name = request.Name
	}
	if request.Email != "" {
		account.Email = request.Email
	}
	if request.Phone != "" {
		account.Phone = request.Phone
	}

	// Only admins may reassign the organization link.
	if request.Organization != "" && callerRole == db_models.RoleAdmin {
		orgID, err := uuid.Parse(request.Organization)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		account.OrganizationID = &orgID
	}

	if request.Password != "" {
		hashed, err := utils.HashPassword(request.Password)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		account.PasswordHash = hashed
	}

	if err := u.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}

	resp := toAccountResponse(account)
	return &resp, nil
}

func (u *UserService) UpdateRole(ctx context.Context, id uuid.UUID, role string) (*response_models.AccountResponse, error) {

	if !db_models.ValidRole(role) {
		return nil, utils.ErrInvalidInput
	}

	account, err := u.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	account.Role = role
	if err := u.accountRepo.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toAccountResponse(account)
	return &resp, nil
}

func (u *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	account, err := u.accountRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	if err := u.accountRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
