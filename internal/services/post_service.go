package services

import (
	"context"

	"github.com/google/uuid"

	"civix/internal/models/db_models"
	"civix/internal/models/request_models"
	"civix/internal/models/response_models"
	"civix/internal/repositories"
	"civix/pkg/utils"
)

type PostServiceInterface interface {
	CreatePost(ctx context.Context, callerID, electionID uuid.UUID, request request_models.CreatePostRequest) (*response_models.PostResponse, error)
	UpdatePost(ctx context.Context, callerID, id uuid.UUID, request request_models.UpdatePostRequest) (*response_models.PostResponse, error)
	DeletePost(ctx context.Context, callerID, id uuid.UUID) error
	ListByElection(ctx context.Context, electionID uuid.UUID) ([]response_models.PostResponse, error)
}

type PostService struct {
	postRepo     repositories.PostRepository
	electionRepo repositories.ElectionRepository
}

func NewPostService(postRepo repositories.PostRepository, electionRepo repositories.ElectionRepository) PostServiceInterface {
	return &PostService{
		postRepo:     postRepo,
		electionRepo: electionRepo,
	}
}

func (p *PostService) CreatePost(ctx context.Context, callerID, electionID uuid.UUID, request request_models.CreatePostRequest) (*response_models.PostResponse, error) {

	election, err := p.electionRepo.FindById(ctx, electionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if election == nil {
		return nil, utils.ErrElectionNotFound
	}

	if election.CommitteeID != callerID {
		return nil, utils.ErrForbidden
	}

	fee := int64(db_models.DefaultNominationFee)
	if request.NominationFee != nil {
		fee = *request.NominationFee
	}

	post := &db_models.Post{
		Title:         request.Title,
		Description:   request.Description,
		ElectionID:    electionID,
		NominationFee: fee,
	}

	if err := p.postRepo.Insert(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toPostResponse(post)
	return &resp, nil
}

func (p *PostService) UpdatePost(ctx context.Context, callerID, id uuid.UUID, request request_models.UpdatePostRequest) (*response_models.PostResponse, error) {

	post, err := p.findOwnedPost(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		post.Title = *request.Title
	}
	if request.Description != nil {
		post.Description = *request.Description
	}
	if request.NominationFee != nil {
		post.NominationFee = *request.NominationFee
	}

	// Detach the preloaded election so Save only writes the post row.
	post.Election = nil
	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toPostResponse(post)
	return &resp, nil
}

func (p *PostService) DeletePost(ctx context.Context, callerID, id uuid.UUID) error {

	if _, err := p.findOwnedPost(ctx, callerID, id); err != nil {
		return err
	}

	if err := p.postRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PostService) ListByElection(ctx context.Context, electionID uuid.UUID) ([]response_models.PostResponse, error) {

	election, err := p.electionRepo.FindById(ctx, electionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if election == nil {
		return nil, utils.ErrElectionNotFound
	}

	posts, err := p.postRepo.ListByElection(ctx, electionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toPostResponse(&posts[i]))
	}
	return out, nil
}

// findOwnedPost re-resolves the parent election on every call so ownership
// is checked against current state, not a cached copy.
func (p *PostService) findOwnedPost(ctx context.Context, callerID, id uuid.UUID) (*db_models.Post, error) {

	post, err := p.postRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	election, err := p.electionRepo.FindById(ctx, post.ElectionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if election == nil {
		return nil, utils.ErrElectionNotFound
	}

	if election.CommitteeID != callerID {
		return nil, utils.ErrForbidden
	}

	return post, nil
}

func toPostResponse(post *db_models.Post) response_models.PostResponse {
	return response_models.PostResponse{
		ID:            post.ID.String(),
		Title:         post.Title,
		Description:   post.Description,
		Election:      post.ElectionID.String(),
		NominationFee: post.NominationFee,
		CreatedAt:     utils.FormatUnixRFC3339(post.CreatedAt),
	}
}
