package db_models

import "github.com/google/uuid"

// DefaultNominationFee applies when a post is created without one.
const DefaultNominationFee = 500

type Post struct {
	BaseModel
	Title         string
	Description   string
	ElectionID    uuid.UUID
	Election      *Election
	NominationFee int64 `gorm:"default:500"`
}
