package controllers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"civix/internal/models/request_models"
	"civix/internal/services"
	"civix/pkg/config"
	"civix/pkg/utils"
)

// CandidateController covers the candidate self-service flow: signup against
// an election, OTP confirmation, multipart nomination submission and the
// candidate's own dashboard.
type CandidateController struct {
	accountService    services.AccountServiceInterface
	nominationService services.NominationServiceInterface
	uploadDir         string
}

func NewCandidateController(
	accountService services.AccountServiceInterface,
	nominationService services.NominationServiceInterface,
	cfg *config.Config,
) *CandidateController {
	return &CandidateController{
		accountService:    accountService,
		nominationService: nominationService,
		uploadDir:         filepath.Join(cfg.UploadDir, "receipts"),
	}
}

// Register godoc
// @Summary Register a candidate
// @Description Sign up a candidate account tied to an organization and election
// @Tags Candidates
// @Accept json
// @Produce json
// @Param request body request_models.CandidateRegisterRequest true "Candidate payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/candidates/register [post]
func (cc *CandidateController) Register(c *gin.Context) {
	var req request_models.CandidateRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := cc.accountService.RegisterCandidate(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Candidate registered successfully. Please verify your email."
	if !resp.MailSent {
		message = "Candidate registered successfully, but the verification email could not be sent."
	}
	utils.RespondCreated(c, resp, message)
}

func (cc *CandidateController) VerifyOtp(c *gin.Context) {
	var req request_models.VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	account, err := cc.accountService.VerifyOtp(c.Request.Context(), userID, req.Otp)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Email verified successfully")
}

// SubmitNomination godoc
// @Summary Submit a nomination with a payment receipt
// @Description Multipart nomination submission. Uploads the receipt and promotes the caller to candidate.
// @Tags Candidates
// @Accept multipart/form-data
// @Produce json
// @Param election formData string true "Election ID"
// @Param post formData string true "Post ID"
// @Param agenda formData string false "Candidate agenda"
// @Param paymentReceipt formData file true "Payment receipt (jpeg, png or pdf, max 5MB)"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/candidates/submit [post]
func (cc *CandidateController) SubmitNomination(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	electionID, err := uuid.Parse(c.PostForm("election"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid election id")
		return
	}

	postID, err := uuid.Parse(c.PostForm("post"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	file, err := c.FormFile("paymentReceipt")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Payment receipt is required")
		return
	}

	receiptPath, err := utils.SaveReceipt(c, file, cc.uploadDir)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	nomination, err := cc.nominationService.SubmitNomination(
		c.Request.Context(), caller, electionID, postID, c.PostForm("agenda"), receiptPath)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nomination, "Nomination submitted successfully")
}

func (cc *CandidateController) MyNominations(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	nominations, err := cc.nominationService.ListByCandidate(c.Request.Context(), caller)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nominations, "Nominations fetched successfully")
}

func (cc *CandidateController) UpdateAgenda(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateAgendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Agenda is required")
		return
	}

	nomination, err := cc.nominationService.UpdateAgenda(c.Request.Context(), caller, id, req.Agenda)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nomination, "Agenda updated successfully")
}
