package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"civix/internal/models/db_models"
)

type PostRepository interface {
	Insert(ctx context.Context, post *db_models.Post) error
	Update(ctx context.Context, post *db_models.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Post, error)
	ListByElection(ctx context.Context, electionID uuid.UUID) ([]db_models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{
		db: db,
	}
}

func (p *postRepository) Insert(ctx context.Context, post *db_models.Post) error {
	return p.db.WithContext(ctx).Create(post).Error
}

func (p *postRepository) Update(ctx context.Context, post *db_models.Post) error {
	return p.db.WithContext(ctx).Save(post).Error
}

func (p *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return p.db.WithContext(ctx).Delete(&db_models.Post{}, "id = ?", id).Error
}

func (p *postRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Post, error) {
	var post db_models.Post
	err := p.db.WithContext(ctx).Preload("Election").First(&post, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &post, nil
}

func (p *postRepository) ListByElection(ctx context.Context, electionID uuid.UUID) ([]db_models.Post, error) {
	var posts []db_models.Post
	err := p.db.WithContext(ctx).
		Where("election_id = ?", electionID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}
