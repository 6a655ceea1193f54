package request_models

import "time"

type CreateElectionRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	VotingStart time.Time `json:"voting_start" binding:"required"`
	VotingEnd   time.Time `json:"voting_end" binding:"required"`
	Status      string    `json:"status"`
}

type UpdateElectionRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	VotingStart *time.Time `json:"voting_start"`
	VotingEnd   *time.Time `json:"voting_end"`
	Status      *string    `json:"status"`
}
