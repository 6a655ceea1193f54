package response_models

type PostSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type ElectionSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status,omitempty"`
}

type NominationResponse struct {
	ID              string           `json:"id"`
	Agenda          string           `json:"agenda,omitempty"`
	PaymentReceipt  string           `json:"payment_receipt,omitempty"`
	Status          string           `json:"status"`
	RejectionReason string           `json:"rejection_reason,omitempty"`
	Candidate       *MemberSummary   `json:"candidate,omitempty"`
	Post            *PostSummary     `json:"post,omitempty"`
	Election        *ElectionSummary `json:"election,omitempty"`
	CreatedAt       string           `json:"created_at"`
}
