package response_models

type ContactInfoResponse struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

type OrganizationResponse struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Type             string              `json:"type"`
	ContactInfo      ContactInfoResponse `json:"contact_info"`
	Admin            *MemberSummary      `json:"admin,omitempty"`
	CommitteeMembers []MemberSummary     `json:"committee_members"`
}
