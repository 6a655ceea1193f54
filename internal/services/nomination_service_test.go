package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civix/internal/models/db_models"
	"civix/internal/models/request_models"
	"civix/pkg/utils"
)

type nominationFixture struct {
	service     NominationServiceInterface
	nominations *fakeNominationRepo
	elections   *fakeElectionRepo
	posts       *fakePostRepo
	accounts    *fakeAccountRepo

	candidate uuid.UUID
	election  uuid.UUID
	post      uuid.UUID
}

func newNominationFixture() *nominationFixture {
	accounts := newFakeAccountRepo()
	elections := newFakeElectionRepo()
	posts := newFakePostRepo()
	nominations := newFakeNominationRepo(accounts)

	candidate := accounts.add(db_models.Account{
		Name: "Cand", Email: "cand@example.com", Phone: "0711111111",
		Role: db_models.RoleVoter, IsVerified: true,
	})
	election := elections.add(db_models.Election{
		Title:  "Board 2026",
		Status: db_models.ElectionStatusNomination,
	})
	post := posts.add(db_models.Post{
		Title:      "Treasurer",
		ElectionID: election,
	})

	return &nominationFixture{
		service:     NewNominationService(nominations, elections, posts, nil),
		nominations: nominations,
		elections:   elections,
		posts:       posts,
		accounts:    accounts,
		candidate:   candidate,
		election:    election,
		post:        post,
	}
}

func (f *nominationFixture) createRequest() request_models.CreateNominationRequest {
	return request_models.CreateNominationRequest{
		Post:           f.post.String(),
		Election:       f.election.String(),
		Agenda:         "Transparent books",
		PaymentReceipt: "/uploads/receipts/receipt-1.png",
	}
}

func (f *nominationFixture) setElectionStatus(status string) {
	election := f.elections.elections[f.election]
	election.Status = status
	f.elections.elections[f.election] = election
}

func TestCreateNomination(t *testing.T) {
	f := newNominationFixture()

	resp, err := f.service.CreateNomination(context.Background(), f.candidate, f.createRequest())
	require.NoError(t, err)
	assert.Equal(t, db_models.NominationStatusPending, resp.Status)
	assert.Equal(t, "Transparent books", resp.Agenda)

	_, err = f.service.CreateNomination(context.Background(), f.candidate, f.createRequest())
	assert.ErrorIs(t, err, utils.ErrNominationExists)
}

func TestCreateNominationGuards(t *testing.T) {
	f := newNominationFixture()

	t.Run("post from another election", func(t *testing.T) {
		other := f.elections.add(db_models.Election{
			Title: "Other", Status: db_models.ElectionStatusNomination,
		})
		strayPost := f.posts.add(db_models.Post{Title: "Stray", ElectionID: other})

		req := f.createRequest()
		req.Post = strayPost.String()
		_, err := f.service.CreateNomination(context.Background(), f.candidate, req)
		assert.ErrorIs(t, err, utils.ErrPostNotFound)
	})

	t.Run("unknown election", func(t *testing.T) {
		req := f.createRequest()
		req.Election = uuid.NewString()
		_, err := f.service.CreateNomination(context.Background(), f.candidate, req)
		assert.ErrorIs(t, err, utils.ErrElectionNotFound)
	})

	t.Run("phase closed", func(t *testing.T) {
		f.setElectionStatus(db_models.ElectionStatusVoting)
		_, err := f.service.CreateNomination(context.Background(), f.candidate, f.createRequest())
		assert.ErrorIs(t, err, utils.ErrNominationClosed)
	})
}

func TestSubmitNominationPromotesCandidate(t *testing.T) {
	f := newNominationFixture()

	_, err := f.service.SubmitNomination(context.Background(), f.candidate, f.election, f.post, "agenda", "")
	assert.ErrorIs(t, err, utils.ErrReceiptRequired)

	resp, err := f.service.SubmitNomination(context.Background(), f.candidate, f.election, f.post,
		"agenda", "/uploads/receipts/receipt-2.pdf")
	require.NoError(t, err)
	assert.Equal(t, db_models.NominationStatusPending, resp.Status)

	promoted, _ := f.accounts.FindById(context.Background(), f.candidate)
	assert.Equal(t, db_models.RoleCandidate, promoted.Role)
}

func TestApproveNomination(t *testing.T) {
	f := newNominationFixture()

	created, err := f.service.CreateNomination(context.Background(), f.candidate, f.createRequest())
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	resp, err := f.service.Approve(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, db_models.NominationStatusApproved, resp.Status)
	assert.Empty(t, resp.RejectionReason)

	// Re-adjudication within the phase flips the outcome and keeps the reason.
	resp, err = f.service.Reject(context.Background(), id, "incomplete receipt")
	require.NoError(t, err)
	assert.Equal(t, db_models.NominationStatusRejected, resp.Status)
	assert.Equal(t, "incomplete receipt", resp.RejectionReason)

	resp, err = f.service.Approve(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, db_models.NominationStatusApproved, resp.Status)
	assert.Empty(t, resp.RejectionReason, "approval clears a previous rejection reason")
}

func TestRejectRequiresReason(t *testing.T) {
	f := newNominationFixture()

	created, err := f.service.CreateNomination(context.Background(), f.candidate, f.createRequest())
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = f.service.Reject(context.Background(), id, "   ")
	assert.ErrorIs(t, err, utils.ErrRejectionReasonRequired)
}

func TestAdjudicationClosesWithPhase(t *testing.T) {
	f := newNominationFixture()

	created, err := f.service.CreateNomination(context.Background(), f.candidate, f.createRequest())
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	f.setElectionStatus(db_models.ElectionStatusVoting)

	_, err = f.service.Approve(context.Background(), id)
	assert.ErrorIs(t, err, utils.ErrNominationClosed)
	_, err = f.service.Reject(context.Background(), id, "too late")
	assert.ErrorIs(t, err, utils.ErrNominationClosed)
	assert.ErrorIs(t, f.service.DeleteNomination(context.Background(), f.candidate, db_models.RoleCandidate, id),
		utils.ErrNominationClosed)
}

func TestUpdateNomination(t *testing.T) {
	f := newNominationFixture()

	created, err := f.service.CreateNomination(context.Background(), f.candidate, f.createRequest())
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	agenda := "Revised agenda"

	t.Run("owner only", func(t *testing.T) {
		_, err := f.service.UpdateNomination(context.Background(), uuid.New(), id, request_models.UpdateNominationRequest{
			Agenda: &agenda,
		})
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("pending only", func(t *testing.T) {
		_, err := f.service.Approve(context.Background(), id)
		require.NoError(t, err)

		_, err = f.service.UpdateNomination(context.Background(), f.candidate, id, request_models.UpdateNominationRequest{
			Agenda: &agenda,
		})
		assert.ErrorIs(t, err, utils.ErrNominationDecided)
	})
}

func TestUpdateAgenda(t *testing.T) {
	f := newNominationFixture()

	created, err := f.service.CreateNomination(context.Background(), f.candidate, f.createRequest())
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = f.service.UpdateAgenda(context.Background(), uuid.New(), id, "hijack")
	assert.ErrorIs(t, err, utils.ErrForbidden)

	// The dashboard path stays open after approval and even once the
	// election leaves its nomination phase.
	_, err = f.service.Approve(context.Background(), id)
	require.NoError(t, err)
	f.setElectionStatus(db_models.ElectionStatusVoting)

	resp, err := f.service.UpdateAgenda(context.Background(), f.candidate, id, "Final agenda")
	require.NoError(t, err)
	assert.Equal(t, "Final agenda", resp.Agenda)
}

func TestUpdateAgendaBlockedWhenRejected(t *testing.T) {
	f := newNominationFixture()

	created, err := f.service.CreateNomination(context.Background(), f.candidate, f.createRequest())
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = f.service.Reject(context.Background(), id, "missing receipt")
	require.NoError(t, err)

	_, err = f.service.UpdateAgenda(context.Background(), f.candidate, id, "please")
	assert.ErrorIs(t, err, utils.ErrNominationDecided)
}

func TestDeleteNomination(t *testing.T) {
	f := newNominationFixture()

	created, err := f.service.CreateNomination(context.Background(), f.candidate, f.createRequest())
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	assert.ErrorIs(t, f.service.DeleteNomination(context.Background(), uuid.New(), db_models.RoleVoter, id),
		utils.ErrForbidden)

	require.NoError(t, f.service.DeleteNomination(context.Background(), f.candidate, db_models.RoleCandidate, id))
	_, err = f.service.GetById(context.Background(), id)
	assert.ErrorIs(t, err, utils.ErrNominationNotFound)
}

func TestDeleteNominationAsAdmin(t *testing.T) {
	f := newNominationFixture()

	created, err := f.service.CreateNomination(context.Background(), f.candidate, f.createRequest())
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	require.NoError(t, f.service.DeleteNomination(context.Background(), uuid.New(), db_models.RoleAdmin, id))
}

func TestListNominations(t *testing.T) {
	f := newNominationFixture()

	created, err := f.service.CreateNomination(context.Background(), f.candidate, f.createRequest())
	require.NoError(t, err)

	other := f.accounts.add(db_models.Account{
		Name: "Other", Email: "other@example.com", Phone: "0722222222",
		Role: db_models.RoleVoter, IsVerified: true,
	})
	_, err = f.service.SubmitNomination(context.Background(), other, f.election, f.post,
		"agenda", "/uploads/receipts/receipt-3.png")
	require.NoError(t, err)

	_, err = f.service.Approve(context.Background(), uuid.MustParse(created.ID))
	require.NoError(t, err)

	all, err := f.service.ListByElection(context.Background(), f.election, "all")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := f.service.ListByElection(context.Background(), f.election, db_models.NominationStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	mine, err := f.service.ListByCandidate(context.Background(), f.candidate)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)
}
