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

type OrganizationServiceInterface interface {
	GetAllOrganizations(ctx context.Context) ([]response_models.OrganizationResponse, error)
	GetOrganizationById(ctx context.Context, id uuid.UUID) (*response_models.OrganizationResponse, error)
	CreateOrganization(ctx context.Context, callerID uuid.UUID, request request_models.CreateOrganizationRequest) (*response_models.OrganizationResponse, error)
	UpdateOrganization(ctx context.Context, id uuid.UUID, request request_models.UpdateOrganizationRequest) (*response_models.OrganizationResponse, error)
	AssignCommitteeMembers(ctx context.Context, id uuid.UUID, memberIDs []string) (*response_models.OrganizationResponse, error)
	DeleteOrganization(ctx context.Context, id uuid.UUID) error
}

type OrganizationService struct {
	orgRepo repositories.OrganizationRepository
}

func NewOrganizationService(orgRepo repositories.OrganizationRepository) OrganizationServiceInterface {
	return &OrganizationService{
		orgRepo: orgRepo,
	}
}

func (o *OrganizationService) GetAllOrganizations(ctx context.Context) ([]response_models.OrganizationResponse, error) {
	orgs, err := o.orgRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.OrganizationResponse, 0, len(orgs))
	for i := range orgs {
		resp, err := o.toResponse(ctx, &orgs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (o *OrganizationService) GetOrganizationById(ctx context.Context, id uuid.UUID) (*response_models.OrganizationResponse, error) {
	org, err := o.orgRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if org == nil {
		return nil, utils.ErrOrganizationNotFound
	}

	return o.toResponse(ctx, org)
}

func (o *OrganizationService) CreateOrganization(ctx context.Context, callerID uuid.UUID, request request_models.CreateOrganizationRequest) (*response_models.OrganizationResponse, error) {

	if !db_models.ValidOrganizationType(request.Type) {
		return nil, utils.ErrInvalidInput
	}

	adminID := callerID
	if request.Admin != "" {
		parsed, err := uuid.Parse(request.Admin)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		adminID = parsed
	}

	org := &db_models.Organization{
		Name:           request.Name,
		Type:           request.Type,
		ContactEmail:   request.ContactInfo.Email,
		ContactPhone:   request.ContactInfo.Phone,
		ContactAddress: request.ContactInfo.Address,
		AdminID:        &adminID,
	}

	if err := o.orgRepo.Insert(ctx, org); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if len(request.CommitteeMembers) > 0 {
		added, err := parseMemberIDs(request.CommitteeMembers)
		if err != nil {
			return nil, err
		}
		if err := o.orgRepo.ApplyRoster(ctx, org.ID, added, nil); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return o.GetOrganizationById(ctx, org.ID)
}

func (o *OrganizationService) UpdateOrganization(ctx context.Context, id uuid.UUID, request request_models.UpdateOrganizationRequest) (*response_models.OrganizationResponse, error) {

	org, err := o.orgRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if org == nil {
		return nil, utils.ErrOrganizationNotFound
	}

	if request.Name != "" {
		org.Name = request.Name
	}
	if request.Type != "" {
		if !db_models.ValidOrganizationType(request.Type) {
			return nil, utils.ErrInvalidInput
		}
		org.Type = request.Type
	}
	if request.ContactInfo != nil {
		if request.ContactInfo.Email != "" {
			org.ContactEmail = request.ContactInfo.Email
		}
		if request.ContactInfo.Phone != "" {
			org.ContactPhone = request.ContactInfo.Phone
		}
		if request.ContactInfo.Address != "" {
			org.ContactAddress = request.ContactInfo.Address
		}
	}
	if request.Admin != "" {
		adminID, err := uuid.Parse(request.Admin)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		org.AdminID = &adminID
	}

	// Detach the preloaded association so Save only writes the org row.
	org.Admin = nil
	if err := o.orgRepo.Update(ctx, org); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if request.CommitteeMembers != nil {
		if err := o.replaceRoster(ctx, org.ID, *request.CommitteeMembers); err != nil {
			return nil, err
		}
	}

	return o.GetOrganizationById(ctx, org.ID)
}

func (o *OrganizationService) AssignCommitteeMembers(ctx context.Context, id uuid.UUID, memberIDs []string) (*response_models.OrganizationResponse, error) {

	org, err := o.orgRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if org == nil {
		return nil, utils.ErrOrganizationNotFound
	}

	if err := o.replaceRoster(ctx, id, memberIDs); err != nil {
		return nil, err
	}

	return o.GetOrganizationById(ctx, id)
}

func (o *OrganizationService) DeleteOrganization(ctx context.Context, id uuid.UUID) error {
	org, err := o.orgRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if org == nil {
		return utils.ErrOrganizationNotFound
	}

	if err := o.orgRepo.DeleteCascade(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// replaceRoster diffs the requested roster against the current committee set
// and applies both halves of the change in one storage transaction. The
// incoming list is treated as a set.
func (o *OrganizationService) replaceRoster(ctx context.Context, orgID uuid.UUID, memberIDs []string) error {

	requested, err := parseMemberIDs(memberIDs)
	if err != nil {
		return err
	}
	requestedSet := make(map[uuid.UUID]bool, len(requested))
	for _, id := range requested {
		requestedSet[id] = true
	}

	current, err := o.orgRepo.ListCommittee(ctx, orgID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	currentSet := make(map[uuid.UUID]bool, len(current))
	for _, member := range current {
		currentSet[member.ID] = true
	}

	var added, removed []uuid.UUID
	for id := range requestedSet {
		if !currentSet[id] {
			added = append(added, id)
		}
	}
	for id := range currentSet {
		if !requestedSet[id] {
			removed = append(removed, id)
		}
	}

	if len(added) == 0 && len(removed) == 0 {
		return nil
	}

	if err := o.orgRepo.ApplyRoster(ctx, orgID, added, removed); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (o *OrganizationService) toResponse(ctx context.Context, org *db_models.Organization) (*response_models.OrganizationResponse, error) {
	members, err := o.orgRepo.ListCommittee(ctx, org.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.OrganizationResponse{
		ID:   org.ID.String(),
		Name: org.Name,
		Type: org.Type,
		ContactInfo: response_models.ContactInfoResponse{
			Email:   org.ContactEmail,
			Phone:   org.ContactPhone,
			Address: org.ContactAddress,
		},
		CommitteeMembers: make([]response_models.MemberSummary, 0, len(members)),
	}

	if org.Admin != nil {
		resp.Admin = &response_models.MemberSummary{
			ID:    org.Admin.ID.String(),
			Name:  org.Admin.Name,
			Email: org.Admin.Email,
		}
	}

	for _, member := range members {
		resp.CommitteeMembers = append(resp.CommitteeMembers, response_models.MemberSummary{
			ID:    member.ID.String(),
			Name:  member.Name,
			Email: member.Email,
		})
	}

	return resp, nil
}

func parseMemberIDs(ids []string) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out, nil
}
