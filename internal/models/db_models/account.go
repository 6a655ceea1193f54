package db_models

import "github.com/google/uuid"

const (
	RoleAdmin     = "admin"
	RoleCommittee = "committee"
	RoleCandidate = "candidate"
	RoleVoter     = "voter"
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleCommittee, RoleCandidate, RoleVoter:
		return true
	}
	return false
}

type Account struct {
	BaseModel
	Name            string
	Email           string `gorm:"uniqueIndex"`
	Phone           string `gorm:"uniqueIndex"`
	PasswordHash    string
	Role            string `gorm:"default:voter"`
	IsVerified      bool   `gorm:"default:false"`
	VerificationOTP *string
	OtpExpiry       *int64
	OrganizationID  *uuid.UUID
	Organization    *Organization
}
