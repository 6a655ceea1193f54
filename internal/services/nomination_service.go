package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"civix/internal/models/db_models"
	"civix/internal/models/request_models"
	"civix/internal/models/response_models"
	"civix/internal/repositories"
	"civix/pkg/metrics"
	"civix/pkg/utils"
)

// NominationServiceInterface carries the adjudication workflow: pending is
// the initial state, approved and rejected are set by the committee while
// the parent election is still in its nomination phase.
type NominationServiceInterface interface {
	CreateNomination(ctx context.Context, candidateID uuid.UUID, request request_models.CreateNominationRequest) (*response_models.NominationResponse, error)
	SubmitNomination(ctx context.Context, candidateID uuid.UUID, electionID, postID uuid.UUID, agenda, receiptPath string) (*response_models.NominationResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*response_models.NominationResponse, error)
	ListByElection(ctx context.Context, electionID uuid.UUID, status string) ([]response_models.NominationResponse, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]response_models.NominationResponse, error)
	Approve(ctx context.Context, id uuid.UUID) (*response_models.NominationResponse, error)
	Reject(ctx context.Context, id uuid.UUID, reason string) (*response_models.NominationResponse, error)
	UpdateNomination(ctx context.Context, callerID, id uuid.UUID, request request_models.UpdateNominationRequest) (*response_models.NominationResponse, error)
	UpdateAgenda(ctx context.Context, callerID, id uuid.UUID, agenda string) (*response_models.NominationResponse, error)
	DeleteNomination(ctx context.Context, callerID uuid.UUID, callerRole string, id uuid.UUID) error
}

type NominationService struct {
	nominationRepo repositories.NominationRepository
	electionRepo   repositories.ElectionRepository
	postRepo       repositories.PostRepository
	metrics        *metrics.Metrics
}

func NewNominationService(
	nominationRepo repositories.NominationRepository,
	electionRepo repositories.ElectionRepository,
	postRepo repositories.PostRepository,
	m *metrics.Metrics,
) NominationServiceInterface {
	return &NominationService{
		nominationRepo: nominationRepo,
		electionRepo:   electionRepo,
		postRepo:       postRepo,
		metrics:        m,
	}
}

func (n *NominationService) CreateNomination(ctx context.Context, candidateID uuid.UUID, request request_models.CreateNominationRequest) (*response_models.NominationResponse, error) {

	electionID, err := uuid.Parse(request.Election)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	postID, err := uuid.Parse(request.Post)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	nomination, err := n.buildNomination(ctx, candidateID, electionID, postID, request.Agenda, request.PaymentReceipt)
	if err != nil {
		return nil, err
	}

	if err := n.nominationRepo.Insert(ctx, nomination); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrNominationExists
		}
		return nil, utils.ErrDatabaseError
	}

	n.metrics.IncrementNominationSubmitted()

	return n.GetById(ctx, nomination.ID)
}

// SubmitNomination is the candidate self-service path: the nomination insert
// and the role upgrade to candidate land in the same transaction.
func (n *NominationService) SubmitNomination(ctx context.Context, candidateID uuid.UUID, electionID, postID uuid.UUID, agenda, receiptPath string) (*response_models.NominationResponse, error) {

	if receiptPath == "" {
		return nil, utils.ErrReceiptRequired
	}

	nomination, err := n.buildNomination(ctx, candidateID, electionID, postID, agenda, receiptPath)
	if err != nil {
		return nil, err
	}

	if err := n.nominationRepo.InsertPromotingCandidate(ctx, nomination); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrNominationExists
		}
		return nil, utils.ErrDatabaseError
	}

	n.metrics.IncrementNominationSubmitted()

	return n.GetById(ctx, nomination.ID)
}

// buildNomination runs the shared admission guards: the election must be in
// its nomination phase, the post must belong to that election, and the
// (candidate, post, election) triple must be new. The triple is also backed
// by a unique index, which closes the check-then-act window.
func (n *NominationService) buildNomination(ctx context.Context, candidateID, electionID, postID uuid.UUID, agenda, receiptPath string) (*db_models.Nomination, error) {

	election, err := n.electionRepo.FindById(ctx, electionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if election == nil {
		return nil, utils.ErrElectionNotFound
	}
	if election.Status != db_models.ElectionStatusNomination {
		return nil, utils.ErrNominationClosed
	}

	post, err := n.postRepo.FindById(ctx, postID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil || post.ElectionID != electionID {
		return nil, utils.ErrPostNotFound
	}

	existing, err := n.nominationRepo.FindTriple(ctx, candidateID, postID, electionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrNominationExists
	}

	return &db_models.Nomination{
		CandidateID:    candidateID,
		PostID:         postID,
		ElectionID:     electionID,
		Agenda:         agenda,
		PaymentReceipt: receiptPath,
		Status:         db_models.NominationStatusPending,
	}, nil
}

func (n *NominationService) GetById(ctx context.Context, id uuid.UUID) (*response_models.NominationResponse, error) {
	nomination, err := n.nominationRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if nomination == nil {
		return nil, utils.ErrNominationNotFound
	}

	resp := toNominationResponse(nomination)
	return &resp, nil
}

func (n *NominationService) ListByElection(ctx context.Context, electionID uuid.UUID, status string) ([]response_models.NominationResponse, error) {
	nominations, err := n.nominationRepo.ListByElection(ctx, electionID, status)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.NominationResponse, 0, len(nominations))
	for i := range nominations {
		out = append(out, toNominationResponse(&nominations[i]))
	}
	return out, nil
}

func (n *NominationService) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]response_models.NominationResponse, error) {
	nominations, err := n.nominationRepo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.NominationResponse, 0, len(nominations))
	for i := range nominations {
		out = append(out, toNominationResponse(&nominations[i]))
	}
	return out, nil
}

func (n *NominationService) Approve(ctx context.Context, id uuid.UUID) (*response_models.NominationResponse, error) {

	nomination, err := n.findInOpenPhase(ctx, id)
	if err != nil {
		return nil, err
	}

	nomination.Status = db_models.NominationStatusApproved
	nomination.RejectionReason = nil

	if err := n.saveNomination(ctx, nomination); err != nil {
		return nil, err
	}

	n.metrics.IncrementNominationDecided(db_models.NominationStatusApproved)

	resp := toNominationResponse(nomination)
	return &resp, nil
}

func (n *NominationService) Reject(ctx context.Context, id uuid.UUID, reason string) (*response_models.NominationResponse, error) {

	if strings.TrimSpace(reason) == "" {
		return nil, utils.ErrRejectionReasonRequired
	}

	nomination, err := n.findInOpenPhase(ctx, id)
	if err != nil {
		return nil, err
	}

	nomination.Status = db_models.NominationStatusRejected
	nomination.RejectionReason = &reason

	if err := n.saveNomination(ctx, nomination); err != nil {
		return nil, err
	}

	n.metrics.IncrementNominationDecided(db_models.NominationStatusRejected)

	resp := toNominationResponse(nomination)
	return &resp, nil
}

func (n *NominationService) UpdateNomination(ctx context.Context, callerID, id uuid.UUID, request request_models.UpdateNominationRequest) (*response_models.NominationResponse, error) {

	nomination, err := n.findInOpenPhase(ctx, id)
	if err != nil {
		return nil, err
	}

	if nomination.CandidateID != callerID {
		return nil, utils.ErrForbidden
	}

	if nomination.Status != db_models.NominationStatusPending {
		return nil, utils.ErrNominationDecided
	}

	if request.Agenda != nil {
		nomination.Agenda = *request.Agenda
	}
	if request.PaymentReceipt != nil {
		nomination.PaymentReceipt = *request.PaymentReceipt
	}

	if err := n.saveNomination(ctx, nomination); err != nil {
		return nil, err
	}

	resp := toNominationResponse(nomination)
	return &resp, nil
}

// UpdateAgenda is the candidate dashboard path; unlike the committee-facing
// update it only blocks rejected nominations.
func (n *NominationService) UpdateAgenda(ctx context.Context, callerID, id uuid.UUID, agenda string) (*response_models.NominationResponse, error) {

	nomination, err := n.nominationRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if nomination == nil {
		return nil, utils.ErrNominationNotFound
	}

	if nomination.CandidateID != callerID {
		return nil, utils.ErrForbidden
	}

	if nomination.Status == db_models.NominationStatusRejected {
		return nil, utils.ErrNominationDecided
	}

	nomination.Agenda = agenda

	if err := n.saveNomination(ctx, nomination); err != nil {
		return nil, err
	}

	resp := toNominationResponse(nomination)
	return &resp, nil
}

func (n *NominationService) DeleteNomination(ctx context.Context, callerID uuid.UUID, callerRole string, id uuid.UUID) error {

	nomination, err := n.findInOpenPhase(ctx, id)
	if err != nil {
		return err
	}

	if nomination.CandidateID != callerID && callerRole != db_models.RoleAdmin {
		return utils.ErrForbidden
	}

	if err := n.nominationRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// findInOpenPhase loads a nomination and requires its election to still be
// in the nomination phase; every mutation shares this gate.
func (n *NominationService) findInOpenPhase(ctx context.Context, id uuid.UUID) (*db_models.Nomination, error) {

	nomination, err := n.nominationRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if nomination == nil {
		return nil, utils.ErrNominationNotFound
	}

	election, err := n.electionRepo.FindById(ctx, nomination.ElectionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if election == nil {
		return nil, utils.ErrElectionNotFound
	}
	if election.Status != db_models.ElectionStatusNomination {
		return nil, utils.ErrNominationClosed
	}

	return nomination, nil
}

func (n *NominationService) saveNomination(ctx context.Context, nomination *db_models.Nomination) error {
	// Detach preloaded associations so Save only writes the nomination row.
	stripped := *nomination
	stripped.Candidate = nil
	stripped.Post = nil
	stripped.Election = nil

	if err := n.nominationRepo.Update(ctx, &stripped); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toNominationResponse(nomination *db_models.Nomination) response_models.NominationResponse {
	resp := response_models.NominationResponse{
		ID:             nomination.ID.String(),
		Agenda:         nomination.Agenda,
		PaymentReceipt: nomination.PaymentReceipt,
		Status:         nomination.Status,
		CreatedAt:      utils.FormatUnixRFC3339(nomination.CreatedAt),
	}
	if nomination.RejectionReason != nil {
		resp.RejectionReason = *nomination.RejectionReason
	}
	if nomination.Candidate != nil {
		resp.Candidate = &response_models.MemberSummary{
			ID:    nomination.Candidate.ID.String(),
			Name:  nomination.Candidate.Name,
			Email: nomination.Candidate.Email,
		}
	}
	if nomination.Post != nil {
		resp.Post = &response_models.PostSummary{
			ID:          nomination.Post.ID.String(),
			Title:       nomination.Post.Title,
			Description: nomination.Post.Description,
		}
	}
	if nomination.Election != nil {
		resp.Election = &response_models.ElectionSummary{
			ID:     nomination.Election.ID.String(),
			Title:  nomination.Election.Title,
			Status: nomination.Election.Status,
		}
	}
	return resp
}
