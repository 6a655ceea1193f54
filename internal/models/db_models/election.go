package db_models

import "github.com/google/uuid"

const (
	ElectionStatusDraft      = "draft"
	ElectionStatusNomination = "nomination"
	ElectionStatusVoting     = "voting"
	ElectionStatusCompleted  = "completed"
)

// allowedTransitions is the status allow-list. A status may always "move" to
// itself; anything else must be a listed forward step.
var allowedTransitions = map[string]string{
	ElectionStatusDraft:      ElectionStatusNomination,
	ElectionStatusNomination: ElectionStatusVoting,
	ElectionStatusVoting:     ElectionStatusCompleted,
}

func ValidElectionTransition(from, to string) bool {
	if from == to {
		return true
	}
	return allowedTransitions[from] == to
}

type Election struct {
	BaseModel
	Title            string
	Description      string
	OrganizationID   uuid.UUID
	Organization     *Organization
	CommitteeID      uuid.UUID
	Committee        *Account `gorm:"foreignKey:CommitteeID"`
	VotingStart      int64
	VotingEnd        int64
	Status           string `gorm:"default:draft"`
	RegistrationLink string `gorm:"uniqueIndex"`
	NominationLink   string `gorm:"uniqueIndex"`
	VotingLink       string `gorm:"uniqueIndex"`
}
