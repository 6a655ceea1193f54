package request_models

type CreatePostRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	NominationFee *int64 `json:"nomination_fee"`
}

type UpdatePostRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	NominationFee *int64  `json:"nomination_fee"`
}
