package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotVerified = errors.New("account not verified")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrPhoneAlreadyExists = errors.New("phone number already registered")
	ErrAlreadyVerified    = errors.New("email already verified")
	ErrInvalidOtp         = errors.New("invalid verification code")
	ErrOtpExpired         = errors.New("verification code has expired")

	ErrOrganizationNotFound = errors.New("organization not found")
	ErrNoOrganization       = errors.New("committee must be associated with an organization")

	ErrElectionNotFound  = errors.New("election not found")
	ErrInvalidTransition = errors.New("illegal election status transition")
	ErrInvalidSchedule   = errors.New("voting start must be before voting end")

	ErrPostNotFound = errors.New("post not found")

	ErrNominationNotFound      = errors.New("nomination not found")
	ErrNominationClosed        = errors.New("election is not in nomination phase")
	ErrNominationExists        = errors.New("nomination already submitted for this post")
	ErrNominationDecided       = errors.New("nomination has already been processed")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	ErrReceiptRequired         = errors.New("payment receipt is required")

	ErrForbidden = errors.New("forbidden")
)
