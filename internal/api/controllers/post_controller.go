package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"civix/internal/models/request_models"
	"civix/internal/services"
	"civix/pkg/utils"
)

type PostController struct {
	postService services.PostServiceInterface
}

func NewPostController(postService services.PostServiceInterface) *PostController {
	return &PostController{
		postService: postService,
	}
}

// Create godoc
// @Summary Create a post
// @Description Add a contested post to an election owned by the caller
// @Tags Posts
// @Accept json
// @Produce json
// @Param id path string true "Election ID"
// @Param request body request_models.CreatePostRequest true "Post payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/post/{id}/posts [post]
func (p *PostController) Create(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	electionID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	post, err := p.postService.CreatePost(c.Request.Context(), caller, electionID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, post, "Post created successfully")
}

func (p *PostController) Update(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	post, err := p.postService.UpdatePost(c.Request.Context(), caller, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post updated successfully")
}

func (p *PostController) Delete(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := p.postService.DeletePost(c.Request.Context(), caller, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Post removed successfully")
}

func (p *PostController) ListByElection(c *gin.Context) {
	electionID, ok := pathID(c, "id")
	if !ok {
		return
	}

	posts, err := p.postService.ListByElection(c.Request.Context(), electionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "Posts fetched successfully")
}
