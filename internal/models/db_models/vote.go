package db_models

import "github.com/google/uuid"

// Vote is modeled and migrated so the one-ballot-per-voter-per-post rule
// lives in the schema, but no cast or tally endpoint exists yet.
type Vote struct {
	BaseModel
	VoterID     uuid.UUID `gorm:"uniqueIndex:idx_vote_once"`
	Voter       *Account  `gorm:"foreignKey:VoterID"`
	ElectionID  uuid.UUID `gorm:"uniqueIndex:idx_vote_once"`
	Election    *Election
	PostID      uuid.UUID `gorm:"uniqueIndex:idx_vote_once"`
	Post        *Post
	CandidateID uuid.UUID
	Candidate   *Account `gorm:"foreignKey:CandidateID"`
}
