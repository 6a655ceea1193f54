package db_models

import "github.com/google/uuid"

const (
	OrgTypeNGO     = "NGO"
	OrgTypeSociety = "Society"
	OrgTypeClub    = "Club"
)

func ValidOrganizationType(t string) bool {
	switch t {
	case OrgTypeNGO, OrgTypeSociety, OrgTypeClub:
		return true
	}
	return false
}

// Organization's committee roster is not stored as its own list: the roster
// is exactly the accounts with role "committee" whose OrganizationID points
// here, which keeps the roster invariant true by construction.
type Organization struct {
	BaseModel
	Name           string
	Type           string
	ContactEmail   string
	ContactPhone   string
	ContactAddress string
	AdminID        *uuid.UUID
	Admin          *Account `gorm:"foreignKey:AdminID"`
}
