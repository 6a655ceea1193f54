package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"civix/internal/models/db_models"
	"civix/internal/models/request_models"
	"civix/internal/models/response_models"
	"civix/internal/repositories"
	"civix/pkg/utils"
)

type ElectionServiceInterface interface {
	CreateElection(ctx context.Context, callerID uuid.UUID, request request_models.CreateElectionRequest) (*response_models.ElectionResponse, error)
	UpdateElection(ctx context.Context, callerID, id uuid.UUID, request request_models.UpdateElectionRequest) (*response_models.ElectionResponse, error)
	DeleteElection(ctx context.Context, callerID, id uuid.UUID) error
	ListForCommittee(ctx context.Context, callerID uuid.UUID) ([]response_models.ElectionResponse, error)
	ListAll(ctx context.Context, organization, status string) ([]response_models.ElectionResponse, error)
}

type ElectionService struct {
	electionRepo repositories.ElectionRepository
	accountRepo  repositories.AccountRepository
}

func NewElectionService(electionRepo repositories.ElectionRepository, accountRepo repositories.AccountRepository) ElectionServiceInterface {
	return &ElectionService{
		electionRepo: electionRepo,
		accountRepo:  accountRepo,
	}
}

func (e *ElectionService) CreateElection(ctx context.Context, callerID uuid.UUID, request request_models.CreateElectionRequest) (*response_models.ElectionResponse, error) {

	caller, err := e.accountRepo.FindById(ctx, callerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if caller == nil {
		return nil, utils.ErrAccountNotFound
	}
	if caller.OrganizationID == nil {
		return nil, utils.ErrNoOrganization
	}

	if !request.VotingStart.Before(request.VotingEnd) {
		return nil, utils.ErrInvalidSchedule
	}

	// Elections start in draft; creating one directly in the nomination
	// phase is the only shortcut allowed.
	status := db_models.ElectionStatusDraft
	if request.Status != "" {
		if !db_models.ValidElectionTransition(db_models.ElectionStatusDraft, request.Status) {
			return nil, utils.ErrInvalidTransition
		}
		status = request.Status
	}

	registrationLink, err := utils.GenerateLinkToken()
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	nominationLink, err := utils.GenerateLinkToken()
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	votingLink, err := utils.GenerateLinkToken()
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	election := &db_models.Election{
		Title:            request.Title,
		Description:      request.Description,
		OrganizationID:   *caller.OrganizationID,
		CommitteeID:      callerID,
		VotingStart:      request.VotingStart.Unix(),
		VotingEnd:        request.VotingEnd.Unix(),
		Status:           status,
		RegistrationLink: registrationLink,
		NominationLink:   nominationLink,
		VotingLink:       votingLink,
	}

	if err := e.electionRepo.Insert(ctx, election); err != nil {
		// A link token collision trips the unique index; not retried.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrDatabaseError
		}
		return nil, utils.ErrDatabaseError
	}

	resp := toElectionResponse(election)
	return &resp, nil
}

func (e *ElectionService) UpdateElection(ctx context.Context, callerID, id uuid.UUID, request request_models.UpdateElectionRequest) (*response_models.ElectionResponse, error) {

	election, err := e.electionRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if election == nil {
		return nil, utils.ErrElectionNotFound
	}

	if election.CommitteeID != callerID {
		return nil, utils.ErrForbidden
	}

	if request.Title != nil {
		election.Title = *request.Title
	}
	if request.Description != nil {
		election.Description = *request.Description
	}
	if request.VotingStart != nil {
		election.VotingStart = request.VotingStart.Unix()
	}
	if request.VotingEnd != nil {
		election.VotingEnd = request.VotingEnd.Unix()
	}
	if election.VotingStart >= election.VotingEnd {
		return nil, utils.ErrInvalidSchedule
	}

	if request.Status != nil && *request.Status != election.Status {
		if !db_models.ValidElectionTransition(election.Status, *request.Status) {
			return nil, utils.ErrInvalidTransition
		}
		election.Status = *request.Status
	}

	if err := e.electionRepo.Update(ctx, election); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toElectionResponse(election)
	return &resp, nil
}

func (e *ElectionService) DeleteElection(ctx context.Context, callerID, id uuid.UUID) error {

	election, err := e.electionRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if election == nil {
		return utils.ErrElectionNotFound
	}

	if election.CommitteeID != callerID {
		return utils.ErrForbidden
	}

	if err := e.electionRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (e *ElectionService) ListForCommittee(ctx context.Context, callerID uuid.UUID) ([]response_models.ElectionResponse, error) {
	elections, err := e.electionRepo.ListByCommittee(ctx, callerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ElectionResponse, 0, len(elections))
	for i := range elections {
		out = append(out, toElectionResponse(&elections[i]))
	}
	return out, nil
}

func (e *ElectionService) ListAll(ctx context.Context, organization, status string) ([]response_models.ElectionResponse, error) {

	filter := repositories.ElectionFilter{Status: status}
	if organization != "" {
		orgID, err := uuid.Parse(organization)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		filter.OrganizationID = &orgID
	}

	elections, err := e.electionRepo.List(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ElectionResponse, 0, len(elections))
	for i := range elections {
		out = append(out, toElectionResponse(&elections[i]))
	}
	return out, nil
}

func toElectionResponse(election *db_models.Election) response_models.ElectionResponse {
	resp := response_models.ElectionResponse{
		ID:               election.ID.String(),
		Title:            election.Title,
		Description:      election.Description,
		Status:           election.Status,
		VotingStart:      utils.FormatUnixRFC3339(election.VotingStart),
		VotingEnd:        utils.FormatUnixRFC3339(election.VotingEnd),
		RegistrationLink: election.RegistrationLink,
		NominationLink:   election.NominationLink,
		VotingLink:       election.VotingLink,
		CreatedAt:        utils.FormatUnixRFC3339(election.CreatedAt),
	}

	if election.Organization != nil {
		resp.Organization = election.Organization.Name
	}
	if election.Committee != nil {
		resp.Committee = &response_models.MemberSummary{
			ID:    election.Committee.ID.String(),
			Name:  election.Committee.Name,
			Email: election.Committee.Email,
		}
	}

	return resp
}
