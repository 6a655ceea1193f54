package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"civix/internal/models/db_models"
	"civix/internal/repositories"
)

// In-memory repository fakes backing the service tests. They mirror the
// storage behavior the services rely on: generated IDs, (nil, nil) lookups
// on missing rows and gorm.ErrDuplicatedKey on unique index violations.

func stamp(b *db_models.BaseModel) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().Unix()
	if b.CreatedAt == 0 {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

type fakeAccountRepo struct {
	accounts map[uuid.UUID]db_models.Account
	failWith error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]db_models.Account)}
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, existing := range f.accounts {
		if existing.Email == account.Email || existing.Phone == account.Phone {
			return gorm.ErrDuplicatedKey
		}
	}
	stamp(&account.BaseModel)
	f.accounts[account.ID] = *account
	return nil
}

func (f *fakeAccountRepo) Update(ctx context.Context, account *db_models.Account) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.accounts[account.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.accounts[account.ID] = *account
	return nil
}

func (f *fakeAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.accounts, id)
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if account, ok := f.accounts[id]; ok {
		return &account, nil
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, account := range f.accounts {
		if account.Email == email {
			found := account
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByPhone(ctx context.Context, phone string) (*db_models.Account, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, account := range f.accounts {
		if account.Phone == phone {
			found := account
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) ListAll(ctx context.Context) ([]db_models.Account, error) {
	out := make([]db_models.Account, 0, len(f.accounts))
	for _, account := range f.accounts {
		out = append(out, account)
	}
	return out, nil
}

func (f *fakeAccountRepo) add(account db_models.Account) uuid.UUID {
	stamp(&account.BaseModel)
	f.accounts[account.ID] = account
	return account.ID
}

type fakeElectionRepo struct {
	elections map[uuid.UUID]db_models.Election
}

func newFakeElectionRepo() *fakeElectionRepo {
	return &fakeElectionRepo{elections: make(map[uuid.UUID]db_models.Election)}
}

func (f *fakeElectionRepo) Insert(ctx context.Context, election *db_models.Election) error {
	for _, existing := range f.elections {
		if existing.RegistrationLink == election.RegistrationLink ||
			existing.NominationLink == election.NominationLink ||
			existing.VotingLink == election.VotingLink {
			return gorm.ErrDuplicatedKey
		}
	}
	stamp(&election.BaseModel)
	f.elections[election.ID] = *election
	return nil
}

func (f *fakeElectionRepo) Update(ctx context.Context, election *db_models.Election) error {
	if _, ok := f.elections[election.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.elections[election.ID] = *election
	return nil
}

func (f *fakeElectionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.elections, id)
	return nil
}

func (f *fakeElectionRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.Election, error) {
	if election, ok := f.elections[id]; ok {
		return &election, nil
	}
	return nil, nil
}

func (f *fakeElectionRepo) ListByCommittee(ctx context.Context, committeeID uuid.UUID) ([]db_models.Election, error) {
	var out []db_models.Election
	for _, election := range f.elections {
		if election.CommitteeID == committeeID {
			out = append(out, election)
		}
	}
	return out, nil
}

func (f *fakeElectionRepo) List(ctx context.Context, filter repositories.ElectionFilter) ([]db_models.Election, error) {
	var out []db_models.Election
	for _, election := range f.elections {
		if filter.OrganizationID != nil && election.OrganizationID != *filter.OrganizationID {
			continue
		}
		if filter.Status != "" && election.Status != filter.Status {
			continue
		}
		out = append(out, election)
	}
	return out, nil
}

func (f *fakeElectionRepo) add(election db_models.Election) uuid.UUID {
	stamp(&election.BaseModel)
	f.elections[election.ID] = election
	return election.ID
}

type fakeOrganizationRepo struct {
	orgs     map[uuid.UUID]db_models.Organization
	accounts *fakeAccountRepo
}

func newFakeOrganizationRepo(accounts *fakeAccountRepo) *fakeOrganizationRepo {
	return &fakeOrganizationRepo{
		orgs:     make(map[uuid.UUID]db_models.Organization),
		accounts: accounts,
	}
}

func (f *fakeOrganizationRepo) Insert(ctx context.Context, org *db_models.Organization) error {
	stamp(&org.BaseModel)
	f.orgs[org.ID] = *org
	return nil
}

func (f *fakeOrganizationRepo) Update(ctx context.Context, org *db_models.Organization) error {
	if _, ok := f.orgs[org.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.orgs[org.ID] = *org
	return nil
}

func (f *fakeOrganizationRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.Organization, error) {
	if org, ok := f.orgs[id]; ok {
		if org.AdminID != nil {
			if admin, ok := f.accounts.accounts[*org.AdminID]; ok {
				org.Admin = &admin
			}
		}
		return &org, nil
	}
	return nil, nil
}

func (f *fakeOrganizationRepo) ListAll(ctx context.Context) ([]db_models.Organization, error) {
	out := make([]db_models.Organization, 0, len(f.orgs))
	for _, org := range f.orgs {
		out = append(out, org)
	}
	return out, nil
}

func (f *fakeOrganizationRepo) ListCommittee(ctx context.Context, orgID uuid.UUID) ([]db_models.Account, error) {
	var out []db_models.Account
	for _, account := range f.accounts.accounts {
		if account.Role == db_models.RoleCommittee &&
			account.OrganizationID != nil && *account.OrganizationID == orgID {
			out = append(out, account)
		}
	}
	return out, nil
}

func (f *fakeOrganizationRepo) ApplyRoster(ctx context.Context, orgID uuid.UUID, added, removed []uuid.UUID) error {
	for _, id := range added {
		account, ok := f.accounts.accounts[id]
		if !ok {
			return errors.New("account missing")
		}
		account.Role = db_models.RoleCommittee
		orgRef := orgID
		account.OrganizationID = &orgRef
		f.accounts.accounts[id] = account
	}
	for _, id := range removed {
		account, ok := f.accounts.accounts[id]
		if !ok {
			continue
		}
		if account.OrganizationID != nil && *account.OrganizationID == orgID {
			account.Role = db_models.RoleVoter
			account.OrganizationID = nil
			f.accounts.accounts[id] = account
		}
	}
	return nil
}

func (f *fakeOrganizationRepo) DeleteCascade(ctx context.Context, orgID uuid.UUID) error {
	for id, account := range f.accounts.accounts {
		if account.OrganizationID != nil && *account.OrganizationID == orgID {
			if account.Role == db_models.RoleCommittee {
				account.Role = db_models.RoleVoter
			}
			account.OrganizationID = nil
			f.accounts.accounts[id] = account
		}
	}
	delete(f.orgs, orgID)
	return nil
}

func (f *fakeOrganizationRepo) add(org db_models.Organization) uuid.UUID {
	stamp(&org.BaseModel)
	f.orgs[org.ID] = org
	return org.ID
}

type fakePostRepo struct {
	posts map[uuid.UUID]db_models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uuid.UUID]db_models.Post)}
}

func (f *fakePostRepo) Insert(ctx context.Context, post *db_models.Post) error {
	stamp(&post.BaseModel)
	f.posts[post.ID] = *post
	return nil
}

func (f *fakePostRepo) Update(ctx context.Context, post *db_models.Post) error {
	if _, ok := f.posts[post.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.posts[post.ID] = *post
	return nil
}

func (f *fakePostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.Post, error) {
	if post, ok := f.posts[id]; ok {
		return &post, nil
	}
	return nil, nil
}

func (f *fakePostRepo) ListByElection(ctx context.Context, electionID uuid.UUID) ([]db_models.Post, error) {
	var out []db_models.Post
	for _, post := range f.posts {
		if post.ElectionID == electionID {
			out = append(out, post)
		}
	}
	return out, nil
}

func (f *fakePostRepo) add(post db_models.Post) uuid.UUID {
	stamp(&post.BaseModel)
	f.posts[post.ID] = post
	return post.ID
}

type fakeNominationRepo struct {
	nominations map[uuid.UUID]db_models.Nomination
	accounts    *fakeAccountRepo
}

func newFakeNominationRepo(accounts *fakeAccountRepo) *fakeNominationRepo {
	return &fakeNominationRepo{
		nominations: make(map[uuid.UUID]db_models.Nomination),
		accounts:    accounts,
	}
}

func (f *fakeNominationRepo) Insert(ctx context.Context, nomination *db_models.Nomination) error {
	for _, existing := range f.nominations {
		if existing.CandidateID == nomination.CandidateID &&
			existing.PostID == nomination.PostID &&
			existing.ElectionID == nomination.ElectionID {
			return gorm.ErrDuplicatedKey
		}
	}
	stamp(&nomination.BaseModel)
	f.nominations[nomination.ID] = *nomination
	return nil
}

func (f *fakeNominationRepo) InsertPromotingCandidate(ctx context.Context, nomination *db_models.Nomination) error {
	if err := f.Insert(ctx, nomination); err != nil {
		return err
	}
	if account, ok := f.accounts.accounts[nomination.CandidateID]; ok {
		account.Role = db_models.RoleCandidate
		f.accounts.accounts[nomination.CandidateID] = account
	}
	return nil
}

func (f *fakeNominationRepo) Update(ctx context.Context, nomination *db_models.Nomination) error {
	if _, ok := f.nominations[nomination.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.nominations[nomination.ID] = *nomination
	return nil
}

func (f *fakeNominationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.nominations, id)
	return nil
}

func (f *fakeNominationRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.Nomination, error) {
	if nomination, ok := f.nominations[id]; ok {
		return &nomination, nil
	}
	return nil, nil
}

func (f *fakeNominationRepo) FindTriple(ctx context.Context, candidateID, postID, electionID uuid.UUID) (*db_models.Nomination, error) {
	for _, nomination := range f.nominations {
		if nomination.CandidateID == candidateID &&
			nomination.PostID == postID &&
			nomination.ElectionID == electionID {
			found := nomination
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeNominationRepo) ListByElection(ctx context.Context, electionID uuid.UUID, status string) ([]db_models.Nomination, error) {
	var out []db_models.Nomination
	for _, nomination := range f.nominations {
		if nomination.ElectionID != electionID {
			continue
		}
		if status != "" && status != "all" && nomination.Status != status {
			continue
		}
		out = append(out, nomination)
	}
	return out, nil
}

func (f *fakeNominationRepo) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]db_models.Nomination, error) {
	var out []db_models.Nomination
	for _, nomination := range f.nominations {
		if nomination.CandidateID == candidateID {
			out = append(out, nomination)
		}
	}
	return out, nil
}

type fakeMailService struct {
	sent []string
	fail bool
}

func (f *fakeMailService) SendVerificationCode(to, name, code string) error {
	if f.fail {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, to)
	return nil
}

type fakeRevokedTokens struct {
	revoked map[string]bool
}

func newFakeRevokedTokens() *fakeRevokedTokens {
	return &fakeRevokedTokens{revoked: make(map[string]bool)}
}

func (f *fakeRevokedTokens) Revoke(token string, ttl time.Duration) {
	f.revoked[token] = true
}

func (f *fakeRevokedTokens) IsRevoked(token string) bool {
	return f.revoked[token]
}
