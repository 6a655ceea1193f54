package response_models

type PostResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Election      string `json:"election"`
	NominationFee int64  `json:"nomination_fee"`
	CreatedAt     string `json:"created_at"`
}
