package response_models

type AccountResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Role         string  `json:"role"`
	IsVerified   bool    `json:"is_verified"`
	Organization *string `json:"organization,omitempty"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  AccountResponse `json:"user"`
}

type RegisterResponse struct {
	UserID   string `json:"user_id"`
	MailSent bool   `json:"mail_sent"`
}

// MemberSummary is the display slice of an account joined into other
// aggregates. Never carries credential fields.
type MemberSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
