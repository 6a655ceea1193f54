package response_models

type ElectionResponse struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description,omitempty"`
	Status           string         `json:"status"`
	VotingStart      string         `json:"voting_start"`
	VotingEnd        string         `json:"voting_end"`
	RegistrationLink string         `json:"registration_link,omitempty"`
	NominationLink   string         `json:"nomination_link,omitempty"`
	VotingLink       string         `json:"voting_link,omitempty"`
	Organization     string         `json:"organization,omitempty"`
	Committee        *MemberSummary `json:"committee,omitempty"`
	CreatedAt        string         `json:"created_at"`
}

type ElectionListResponse struct {
	Count int                `json:"count"`
	Data  []ElectionResponse `json:"data"`
}
