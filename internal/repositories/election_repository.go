package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"civix/internal/models/db_models"
)

type ElectionFilter struct {
	OrganizationID *uuid.UUID
	Status         string
}

type ElectionRepository interface {
	Insert(ctx context.Context, election *db_models.Election) error
	Update(ctx context.Context, election *db_models.Election) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Election, error)
	ListByCommittee(ctx context.Context, committeeID uuid.UUID) ([]db_models.Election, error)
	List(ctx context.Context, filter ElectionFilter) ([]db_models.Election, error)
}

type electionRepository struct {
	db *gorm.DB
}

func NewElectionRepository(db *gorm.DB) ElectionRepository {
	return &electionRepository{
		db: db,
	}
}

func (e *electionRepository) Insert(ctx context.Context, election *db_models.Election) error {
	return e.db.WithContext(ctx).Create(election).Error
}

func (e *electionRepository) Update(ctx context.Context, election *db_models.Election) error {
	return e.db.WithContext(ctx).Save(election).Error
}

func (e *electionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return e.db.WithContext(ctx).Delete(&db_models.Election{}, "id = ?", id).Error
}

func (e *electionRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Election, error) {
	var election db_models.Election
	err := e.db.WithContext(ctx).First(&election, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &election, nil
}

func (e *electionRepository) ListByCommittee(ctx context.Context, committeeID uuid.UUID) ([]db_models.Election, error) {
	var elections []db_models.Election
	err := e.db.WithContext(ctx).
		Where("committee_id = ?", committeeID).
		Order("created_at DESC").
		Find(&elections).Error
	return elections, err
}

func (e *electionRepository) List(ctx context.Context, filter ElectionFilter) ([]db_models.Election, error) {
	query := e.db.WithContext(ctx).
		Preload("Organization").
		Preload("Committee").
		Order("created_at DESC")

	if filter.OrganizationID != nil {
		query = query.Where("organization_id = ?", *filter.OrganizationID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var elections []db_models.Election
	err := query.Find(&elections).Error
	return elections, err
}
