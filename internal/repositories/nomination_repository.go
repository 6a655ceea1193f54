package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"civix/internal/models/db_models"
)

type NominationRepository interface {
	Insert(ctx context.Context, nomination *db_models.Nomination) error

	// InsertPromotingCandidate inserts the nomination and upgrades the
	// candidate account's role in the same transaction, so neither write can
	// land without the other.
	InsertPromotingCandidate(ctx context.Context, nomination *db_models.Nomination) error

	Update(ctx context.Context, nomination *db_models.Nomination) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Nomination, error)
	FindTriple(ctx context.Context, candidateID, postID, electionID uuid.UUID) (*db_models.Nomination, error)
	ListByElection(ctx context.Context, electionID uuid.UUID, status string) ([]db_models.Nomination, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]db_models.Nomination, error)
}

type nominationRepository struct {
	db *gorm.DB
}

func NewNominationRepository(db *gorm.DB) NominationRepository {
	return &nominationRepository{
		db: db,
	}
}

func (n *nominationRepository) Insert(ctx context.Context, nomination *db_models.Nomination) error {
	return n.db.WithContext(ctx).Create(nomination).Error
}

func (n *nominationRepository) InsertPromotingCandidate(ctx context.Context, nomination *db_models.Nomination) error {
	return n.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(nomination).Error; err != nil {
			return err
		}

		return tx.Model(&db_models.Account{}).
			Where("id = ? AND role <> ?", nomination.CandidateID, db_models.RoleCandidate).
			Update("role", db_models.RoleCandidate).Error
	})
}

func (n *nominationRepository) Update(ctx context.Context, nomination *db_models.Nomination) error {
	return n.db.WithContext(ctx).Save(nomination).Error
}

func (n *nominationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return n.db.WithContext(ctx).Delete(&db_models.Nomination{}, "id = ?", id).Error
}

func (n *nominationRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Nomination, error) {
	var nomination db_models.Nomination
	err := n.db.WithContext(ctx).
		Preload("Candidate").
		Preload("Post").
		Preload("Election").
		First(&nomination, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &nomination, nil
}

func (n *nominationRepository) FindTriple(ctx context.Context, candidateID, postID, electionID uuid.UUID) (*db_models.Nomination, error) {
	var nomination db_models.Nomination
	err := n.db.WithContext(ctx).
		Where("candidate_id = ? AND post_id = ? AND election_id = ?", candidateID, postID, electionID).
		First(&nomination).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &nomination, nil
}

func (n *nominationRepository) ListByElection(ctx context.Context, electionID uuid.UUID, status string) ([]db_models.Nomination, error) {
	query := n.db.WithContext(ctx).
		Preload("Candidate").
		Preload("Post").
		Preload("Election").
		Where("election_id = ?", electionID)

	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var nominations []db_models.Nomination
	err := query.Find(&nominations).Error
	return nominations, err
}

func (n *nominationRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]db_models.Nomination, error) {
	var nominations []db_models.Nomination
	err := n.db.WithContext(ctx).
		Preload("Post").
		Preload("Election").
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&nominations).Error
	return nominations, err
}
