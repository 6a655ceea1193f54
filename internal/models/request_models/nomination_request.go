package request_models

type CreateNominationRequest struct {
	Post           string `json:"post" binding:"required,uuid"`
	Election       string `json:"election" binding:"required,uuid"`
	Agenda         string `json:"agenda"`
	PaymentReceipt string `json:"payment_receipt" binding:"required"`
}

type UpdateNominationRequest struct {
	Agenda         *string `json:"agenda"`
	PaymentReceipt *string `json:"payment_receipt"`
}

type RejectNominationRequest struct {
	RejectionReason string `json:"rejection_reason"`
}

type UpdateAgendaRequest struct {
	Agenda string `json:"agenda" binding:"required"`
}

type CandidateRegisterRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	Password     string `json:"password" binding:"required,min=6"`
	Organization string `json:"organization_id" binding:"required,uuid"`
	Election     string `json:"election_id" binding:"required,uuid"`
}

type VerifyOtpRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Otp    string `json:"otp" binding:"required"`
}
