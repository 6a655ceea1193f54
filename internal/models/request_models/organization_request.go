package request_models

type ContactInfo struct {
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address"`
}

type CreateOrganizationRequest struct {
	Name             string      `json:"name" binding:"required"`
	Type             string      `json:"type" binding:"required"`
	ContactInfo      ContactInfo `json:"contact_info" binding:"required"`
	Admin            string      `json:"admin" binding:"omitempty,uuid"`
	CommitteeMembers []string    `json:"committee_members" binding:"dive,uuid"`
}

type UpdateOrganizationRequest struct {
	Name             string       `json:"name"`
	Type             string       `json:"type"`
	ContactInfo      *ContactInfo `json:"contact_info"`
	Admin            string       `json:"admin" binding:"omitempty,uuid"`
	CommitteeMembers *[]string    `json:"committee_members" binding:"omitempty,dive,uuid"`
}

type AssignCommitteeRequest struct {
	CommitteeMembers []string `json:"committee_members" binding:"required,dive,uuid"`
}
