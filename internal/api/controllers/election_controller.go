package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"civix/internal/models/request_models"
	"civix/internal/models/response_models"
	"civix/internal/services"
	"civix/pkg/utils"
)

type ElectionController struct {
	electionService services.ElectionServiceInterface
}

func NewElectionController(electionService services.ElectionServiceInterface) *ElectionController {
	return &ElectionController{
		electionService: electionService,
	}
}

// Create godoc
// @Summary Create an election
// @Description Create an election for the caller's organization with generated access links
// @Tags Elections
// @Accept json
// @Produce json
// @Param request body request_models.CreateElectionRequest true "Election payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/election/committee/elections [post]
func (e *ElectionController) Create(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.CreateElectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	election, err := e.electionService.CreateElection(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, election, "Election created successfully")
}

func (e *ElectionController) Update(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateElectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	election, err := e.electionService.UpdateElection(c.Request.Context(), caller, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, election, "Election updated successfully")
}

func (e *ElectionController) Delete(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := e.electionService.DeleteElection(c.Request.Context(), caller, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Election removed successfully")
}

func (e *ElectionController) ListMine(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	elections, err := e.electionService.ListForCommittee(c.Request.Context(), caller)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, elections, "Elections fetched successfully")
}

// ListAll godoc
// @Summary List elections
// @Description List elections, optionally filtered by organization and status
// @Tags Elections
// @Produce json
// @Param organization query string false "Organization ID"
// @Param status query string false "Election status"
// @Success 200 {object} utils.APIResponse
// @Router /api/election/elections [get]
func (e *ElectionController) ListAll(c *gin.Context) {
	elections, err := e.electionService.ListAll(c.Request.Context(), c.Query("organization"), c.Query("status"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ElectionListResponse{
		Count: len(elections),
		Data:  elections,
	}, "Elections fetched successfully")
}
