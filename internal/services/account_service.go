package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"civix/internal/models/db_models"
	"civix/internal/models/request_models"
	"civix/internal/models/response_models"
	"civix/internal/repositories"
	mem "civix/pkg/memcache"
	"civix/pkg/metrics"
	"civix/pkg/utils"
)

const (
	otpLength          = 6
	registrationOtpTTL = 10 * time.Minute
	resendOtpTTL       = time.Hour
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.RegisterResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	VerifyEmail(ctx context.Context, email, otp string) error
	ResendVerification(ctx context.Context, email string) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.AccountResponse, error)
	Logout(token string)

	RegisterCandidate(ctx context.Context, request request_models.CandidateRegisterRequest) (*response_models.RegisterResponse, error)
	VerifyOtp(ctx context.Context, userID uuid.UUID, otp string) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo  repositories.AccountRepository
	electionRepo repositories.ElectionRepository
	mailService  IMailService
	revoked      mem.RevokedTokenStore
	metrics      *metrics.Metrics
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	electionRepo repositories.ElectionRepository,
	mailService IMailService,
	revoked mem.RevokedTokenStore,
	m *metrics.Metrics,
) AccountServiceInterface {
	return &AccountService{
		accountRepo:  accountRepo,
		electionRepo: electionRepo,
		mailService:  mailService,
		revoked:      revoked,
		metrics:      m,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.RegisterResponse, error) {

	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	existingPhone, err := a.accountRepo.FindByPhone(ctx, request.Phone)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existingPhone != nil {
		return nil, utils.ErrPhoneAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	role := request.Role
	if !db_models.ValidRole(role) {
		role = db_models.RoleVoter
	}

	otp, err := utils.GenerateOtpCode(otpLength)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	otpExpiry := time.Now().Add(registrationOtpTTL).Unix()

	newAccount := &db_models.Account{
		Name:            request.Name,
		Email:           request.Email,
		Phone:           request.Phone,
		PasswordHash:    hashedPassword,
		Role:            role,
		VerificationOTP: &otp,
		OtpExpiry:       &otpExpiry,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		// The unique indexes on email and phone close the pre-check race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}

	a.metrics.IncrementAccountRegistered()

	// Registration succeeds even when the verification mail does not go out;
	// the response tells the caller which happened.
	mailSent := true
	if err := a.mailService.SendVerificationCode(newAccount.Email, newAccount.Name, otp); err != nil {
		log.Printf("Verification email to %s failed: %v", newAccount.Email, err)
		mailSent = false
	}

	return &response_models.RegisterResponse{
		UserID:   newAccount.ID.String(),
		MailSent: mailSent,
	}, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if !account.IsVerified {
		return nil, utils.ErrAccountNotVerified
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token: token,
		User:  toAccountResponse(account),
	}, nil
}

func (a *AccountService) VerifyEmail(ctx context.Context, email, otp string) error {

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	return a.confirmOtp(ctx, account, otp)
}

func (a *AccountService) ResendVerification(ctx context.Context, email string) error {

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	if account.IsVerified {
		return utils.ErrAlreadyVerified
	}

	otp, err := utils.GenerateOtpCode(otpLength)
	if err != nil {
		return utils.ErrDatabaseError
	}
	otpExpiry := time.Now().Add(resendOtpTTL).Unix()

	account.VerificationOTP = &otp
	account.OtpExpiry = &otpExpiry

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.mailService.SendVerificationCode(account.Email, account.Name, otp); err != nil {
		log.Printf("Verification email to %s failed: %v", account.Email, err)
	}

	return nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.AccountResponse, error) {

	account, err := a.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	resp := toAccountResponse(account)
	return &resp, nil
}

// Logout revokes the session token for its remaining lifetime. An invalid
// or already-expired token is a no-op; logout never fails.
func (a *AccountService) Logout(token string) {
	claims, err := utils.ValidateToken(token)
	if err != nil || claims.ExpiresAt == nil {
		return
	}
	a.revoked.Revoke(token, time.Until(claims.ExpiresAt.Time))
}

func (a *AccountService) RegisterCandidate(ctx context.Context, request request_models.CandidateRegisterRequest) (*response_models.RegisterResponse, error) {

	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	electionID, err := uuid.Parse(request.Election)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	election, err := a.electionRepo.FindById(ctx, electionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if election == nil {
		return nil, utils.ErrElectionNotFound
	}

	orgID, err := uuid.Parse(request.Organization)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	otp, err := utils.GenerateOtpCode(otpLength)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	otpExpiry := time.Now().Add(resendOtpTTL).Unix()

	account := &db_models.Account{
		Name:            request.Name,
		Email:           request.Email,
		Phone:           request.Phone,
		PasswordHash:    hashedPassword,
		Role:            db_models.RoleCandidate,
		OrganizationID:  &orgID,
		VerificationOTP: &otp,
		OtpExpiry:       &otpExpiry,
	}

	if err := a.accountRepo.Insert(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}

	a.metrics.IncrementAccountRegistered()

	mailSent := true
	if err := a.mailService.SendVerificationCode(account.Email, account.Name, otp); err != nil {
		log.Printf("Verification email to %s failed: %v", account.Email, err)
		mailSent = false
	}

	return &response_models.RegisterResponse{
		UserID:   account.ID.String(),
		MailSent: mailSent,
	}, nil
}

func (a *AccountService) VerifyOtp(ctx context.Context, userID uuid.UUID, otp string) (*response_models.AccountResponse, error) {

	account, err := a.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := a.confirmOtp(ctx, account, otp); err != nil {
		return nil, err
	}

	resp := toAccountResponse(account)
	return &resp, nil
}

func (a *AccountService) confirmOtp(ctx context.Context, account *db_models.Account, otp string) error {
	if account.IsVerified {
		return utils.ErrAlreadyVerified
	}

	if account.VerificationOTP == nil || *account.VerificationOTP != otp {
		return utils.ErrInvalidOtp
	}

	if account.OtpExpiry == nil || *account.OtpExpiry < time.Now().Unix() {
		return utils.ErrOtpExpired
	}

	account.IsVerified = true
	account.VerificationOTP = nil
	account.OtpExpiry = nil

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func toAccountResponse(account *db_models.Account) response_models.AccountResponse {
	resp := response_models.AccountResponse{
		ID:         account.ID.String(),
		Name:       account.Name,
		Email:      account.Email,
		Phone:      account.Phone,
		Role:       account.Role,
		IsVerified: account.IsVerified,
	}
	if account.OrganizationID != nil {
		org := account.OrganizationID.String()
		resp.Organization = &org
	}
	return resp
}
