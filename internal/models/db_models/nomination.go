package db_models

import "github.com/google/uuid"

const (
	NominationStatusPending  = "pending"
	NominationStatusApproved = "approved"
	NominationStatusRejected = "rejected"
)

type Nomination struct {
	BaseModel
	CandidateID     uuid.UUID `gorm:"uniqueIndex:idx_nomination_triple"`
	Candidate       *Account  `gorm:"foreignKey:CandidateID"`
	PostID          uuid.UUID `gorm:"uniqueIndex:idx_nomination_triple"`
	Post            *Post
	ElectionID      uuid.UUID `gorm:"uniqueIndex:idx_nomination_triple"`
	Election        *Election
	Agenda          string
	PaymentReceipt  string
	Status          string `gorm:"default:pending"`
	RejectionReason *string
}
