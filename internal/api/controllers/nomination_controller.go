package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"civix/internal/models/request_models"
	"civix/internal/services"
	"civix/pkg/utils"
)

type NominationController struct {
	nominationService services.NominationServiceInterface
}

func NewNominationController(nominationService services.NominationServiceInterface) *NominationController {
	return &NominationController{
		nominationService: nominationService,
	}
}

// Create godoc
// @Summary Submit a nomination
// @Description File a nomination for a post in an election during its nomination phase
// @Tags Nominations
// @Accept json
// @Produce json
// @Param request body request_models.CreateNominationRequest true "Nomination payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/nomination [post]
func (n *NominationController) Create(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.CreateNominationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	nomination, err := n.nominationService.CreateNomination(c.Request.Context(), caller, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nomination, "Nomination submitted successfully")
}

func (n *NominationController) GetById(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	nomination, err := n.nominationService.GetById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nomination, "Nomination fetched successfully")
}

func (n *NominationController) ListByElection(c *gin.Context) {
	electionID, ok := pathID(c, "id")
	if !ok {
		return
	}

	nominations, err := n.nominationService.ListByElection(c.Request.Context(), electionID, c.Query("status"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nominations, "Nominations fetched successfully")
}

func (n *NominationController) ListByCandidate(c *gin.Context) {
	candidateID, ok := pathID(c, "candidateId")
	if !ok {
		return
	}

	nominations, err := n.nominationService.ListByCandidate(c.Request.Context(), candidateID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nominations, "Nominations fetched successfully")
}

func (n *NominationController) Approve(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	nomination, err := n.nominationService.Approve(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nomination, "Nomination approved successfully")
}

func (n *NominationController) Reject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.RejectNominationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	nomination, err := n.nominationService.Reject(c.Request.Context(), id, req.RejectionReason)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nomination, "Nomination rejected successfully")
}

func (n *NominationController) Update(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateNominationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	nomination, err := n.nominationService.UpdateNomination(c.Request.Context(), caller, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nomination, "Nomination updated successfully")
}

func (n *NominationController) Delete(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := n.nominationService.DeleteNomination(c.Request.Context(), caller, c.GetString("role"), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Nomination withdrawn successfully")
}
