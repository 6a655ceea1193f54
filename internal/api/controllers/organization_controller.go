package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"civix/internal/models/request_models"
	"civix/internal/services"
	"civix/pkg/utils"
)

type OrganizationController struct {
	orgService services.OrganizationServiceInterface
}

func NewOrganizationController(orgService services.OrganizationServiceInterface) *OrganizationController {
	return &OrganizationController{
		orgService: orgService,
	}
}

func (o *OrganizationController) GetAll(c *gin.Context) {
	orgs, err := o.orgService.GetAllOrganizations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, orgs, "Organizations fetched successfully")
}

func (o *OrganizationController) GetById(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	org, err := o.orgService.GetOrganizationById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, org, "Organization fetched successfully")
}

// Create godoc
// @Summary Create an organization
// @Description Register an organization and apply its initial committee roster
// @Tags Organizations
// @Accept json
// @Produce json
// @Param request body request_models.CreateOrganizationRequest true "Organization payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/organizations [post]
func (o *OrganizationController) Create(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	org, err := o.orgService.CreateOrganization(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, org, "Organization created successfully")
}

func (o *OrganizationController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	org, err := o.orgService.UpdateOrganization(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, org, "Organization updated successfully")
}

func (o *OrganizationController) AssignCommittee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.AssignCommitteeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Committee members are required")
		return
	}

	org, err := o.orgService.AssignCommitteeMembers(c.Request.Context(), id, req.CommitteeMembers)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, org, "Committee members assigned successfully")
}

func (o *OrganizationController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := o.orgService.DeleteOrganization(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Organization removed successfully")
}
