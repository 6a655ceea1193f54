package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civix/internal/models/db_models"
	"civix/internal/models/request_models"
	"civix/pkg/utils"
)

type electionFixture struct {
	service   ElectionServiceInterface
	elections *fakeElectionRepo
	accounts  *fakeAccountRepo
	committee uuid.UUID
	orgID     uuid.UUID
}

func newElectionFixture() *electionFixture {
	accounts := newFakeAccountRepo()
	elections := newFakeElectionRepo()

	orgID := uuid.New()
	committee := accounts.add(db_models.Account{
		Name:           "Chair",
		Email:          "chair@example.com",
		Phone:          "0711111111",
		Role:           db_models.RoleCommittee,
		IsVerified:     true,
		OrganizationID: &orgID,
	})

	return &electionFixture{
		service:   NewElectionService(elections, accounts),
		elections: elections,
		accounts:  accounts,
		committee: committee,
		orgID:     orgID,
	}
}

func validSchedule() (time.Time, time.Time) {
	start := time.Now().Add(24 * time.Hour)
	return start, start.Add(48 * time.Hour)
}

func TestCreateElection(t *testing.T) {
	f := newElectionFixture()
	start, end := validSchedule()

	resp, err := f.service.CreateElection(context.Background(), f.committee, request_models.CreateElectionRequest{
		Title:       "Board 2026",
		Description: "Annual board election",
		VotingStart: start,
		VotingEnd:   end,
	})
	require.NoError(t, err)

	assert.Equal(t, db_models.ElectionStatusDraft, resp.Status)
	assert.NotEmpty(t, resp.RegistrationLink)
	assert.NotEmpty(t, resp.NominationLink)
	assert.NotEmpty(t, resp.VotingLink)
	assert.NotEqual(t, resp.RegistrationLink, resp.NominationLink)
	assert.NotEqual(t, resp.NominationLink, resp.VotingLink)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	stored, _ := f.elections.FindById(context.Background(), id)
	require.NotNil(t, stored)
	assert.Equal(t, f.orgID, stored.OrganizationID)
	assert.Equal(t, f.committee, stored.CommitteeID)
}

func TestCreateElectionRequiresOrganization(t *testing.T) {
	f := newElectionFixture()
	start, end := validSchedule()

	loner := f.accounts.add(db_models.Account{
		Email: "loner@example.com", Phone: "0722222222",
		Role: db_models.RoleCommittee, IsVerified: true,
	})

	_, err := f.service.CreateElection(context.Background(), loner, request_models.CreateElectionRequest{
		Title: "X", VotingStart: start, VotingEnd: end,
	})
	assert.ErrorIs(t, err, utils.ErrNoOrganization)

	_, err = f.service.CreateElection(context.Background(), uuid.New(), request_models.CreateElectionRequest{
		Title: "X", VotingStart: start, VotingEnd: end,
	})
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestCreateElectionSchedule(t *testing.T) {
	f := newElectionFixture()
	start, _ := validSchedule()

	_, err := f.service.CreateElection(context.Background(), f.committee, request_models.CreateElectionRequest{
		Title: "X", VotingStart: start, VotingEnd: start.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, utils.ErrInvalidSchedule)

	_, err = f.service.CreateElection(context.Background(), f.committee, request_models.CreateElectionRequest{
		Title: "X", VotingStart: start, VotingEnd: start,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidSchedule, "start must be strictly before end")
}

func TestCreateElectionStatus(t *testing.T) {
	f := newElectionFixture()
	start, end := validSchedule()

	// Draft may jump straight to nomination, nothing further.
	resp, err := f.service.CreateElection(context.Background(), f.committee, request_models.CreateElectionRequest{
		Title: "X", VotingStart: start, VotingEnd: end,
		Status: db_models.ElectionStatusNomination,
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.ElectionStatusNomination, resp.Status)

	_, err = f.service.CreateElection(context.Background(), f.committee, request_models.CreateElectionRequest{
		Title: "Y", VotingStart: start, VotingEnd: end,
		Status: db_models.ElectionStatusVoting,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidTransition)
}

func TestUpdateElection(t *testing.T) {
	f := newElectionFixture()
	start, end := validSchedule()

	id := f.elections.add(db_models.Election{
		Title:       "Board 2026",
		CommitteeID: f.committee,
		VotingStart: start.Unix(),
		VotingEnd:   end.Unix(),
		Status:      db_models.ElectionStatusDraft,
	})

	t.Run("ownership", func(t *testing.T) {
		title := "Hijacked"
		_, err := f.service.UpdateElection(context.Background(), uuid.New(), id, request_models.UpdateElectionRequest{
			Title: &title,
		})
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("skipping a phase", func(t *testing.T) {
		status := db_models.ElectionStatusVoting
		_, err := f.service.UpdateElection(context.Background(), f.committee, id, request_models.UpdateElectionRequest{
			Status: &status,
		})
		assert.ErrorIs(t, err, utils.ErrInvalidTransition)
	})

	t.Run("schedule revalidated", func(t *testing.T) {
		badEnd := start.Add(-time.Hour)
		_, err := f.service.UpdateElection(context.Background(), f.committee, id, request_models.UpdateElectionRequest{
			VotingEnd: &badEnd,
		})
		assert.ErrorIs(t, err, utils.ErrInvalidSchedule)
	})

	t.Run("forward step", func(t *testing.T) {
		title := "Board 2026 (final)"
		status := db_models.ElectionStatusNomination
		resp, err := f.service.UpdateElection(context.Background(), f.committee, id, request_models.UpdateElectionRequest{
			Title:  &title,
			Status: &status,
		})
		require.NoError(t, err)
		assert.Equal(t, title, resp.Title)
		assert.Equal(t, db_models.ElectionStatusNomination, resp.Status)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := f.service.UpdateElection(context.Background(), f.committee, uuid.New(), request_models.UpdateElectionRequest{})
		assert.ErrorIs(t, err, utils.ErrElectionNotFound)
	})
}

func TestDeleteElection(t *testing.T) {
	f := newElectionFixture()

	id := f.elections.add(db_models.Election{
		Title:       "Board 2026",
		CommitteeID: f.committee,
		Status:      db_models.ElectionStatusDraft,
	})

	assert.ErrorIs(t, f.service.DeleteElection(context.Background(), uuid.New(), id), utils.ErrForbidden)
	assert.ErrorIs(t, f.service.DeleteElection(context.Background(), f.committee, uuid.New()), utils.ErrElectionNotFound)

	require.NoError(t, f.service.DeleteElection(context.Background(), f.committee, id))
	gone, _ := f.elections.FindById(context.Background(), id)
	assert.Nil(t, gone)
}

func TestListElections(t *testing.T) {
	f := newElectionFixture()

	f.elections.add(db_models.Election{
		Title: "A", CommitteeID: f.committee, OrganizationID: f.orgID,
		Status: db_models.ElectionStatusDraft,
	})
	f.elections.add(db_models.Election{
		Title: "B", CommitteeID: f.committee, OrganizationID: f.orgID,
		Status: db_models.ElectionStatusVoting,
	})
	f.elections.add(db_models.Election{
		Title: "C", CommitteeID: uuid.New(), OrganizationID: uuid.New(),
		Status: db_models.ElectionStatusVoting,
	})

	mine, err := f.service.ListForCommittee(context.Background(), f.committee)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	voting, err := f.service.ListAll(context.Background(), "", db_models.ElectionStatusVoting)
	require.NoError(t, err)
	assert.Len(t, voting, 2)

	byOrg, err := f.service.ListAll(context.Background(), f.orgID.String(), "")
	require.NoError(t, err)
	assert.Len(t, byOrg, 2)

	_, err = f.service.ListAll(context.Background(), "not-a-uuid", "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
