package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"civix/internal/models/db_models"
)

type OrganizationRepository interface {
	Insert(ctx context.Context, org *db_models.Organization) error
	Update(ctx context.Context, org *db_models.Organization) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Organization, error)
	ListAll(ctx context.Context) ([]db_models.Organization, error)
	ListCommittee(ctx context.Context, orgID uuid.UUID) ([]db_models.Account, error)

	// ApplyRoster adds and removes committee memberships in one transaction:
	// added accounts become committee members of orgID, removed accounts that
	// still point at orgID fall back to voter with the link cleared.
	ApplyRoster(ctx context.Context, orgID uuid.UUID, added, removed []uuid.UUID) error

	// DeleteCascade clears every account link to the organization, demotes
	// its committee members and deletes the row, all in one transaction.
	DeleteCascade(ctx context.Context, orgID uuid.UUID) error
}

type organizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{
		db: db,
	}
}

func (o *organizationRepository) Insert(ctx context.Context, org *db_models.Organization) error {
	return o.db.WithContext(ctx).Create(org).Error
}

func (o *organizationRepository) Update(ctx context.Context, org *db_models.Organization) error {
	return o.db.WithContext(ctx).Save(org).Error
}

func (o *organizationRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Organization, error) {
	var org db_models.Organization
	err := o.db.WithContext(ctx).Preload("Admin").First(&org, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &org, nil
}

func (o *organizationRepository) ListAll(ctx context.Context) ([]db_models.Organization, error) {
	var orgs []db_models.Organization
	err := o.db.WithContext(ctx).Preload("Admin").Order("created_at DESC").Find(&orgs).Error
	return orgs, err
}

func (o *organizationRepository) ListCommittee(ctx context.Context, orgID uuid.UUID) ([]db_models.Account, error) {
	var members []db_models.Account
	err := o.db.WithContext(ctx).
		Where("organization_id = ? AND role = ?", orgID, db_models.RoleCommittee).
		Find(&members).Error
	return members, err
}

func (o *organizationRepository) ApplyRoster(ctx context.Context, orgID uuid.UUID, added, removed []uuid.UUID) error {
	return o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(added) > 0 {
			if err := tx.Model(&db_models.Account{}).
				Where("id IN ?", added).
				Updates(map[string]interface{}{
					"role":            db_models.RoleCommittee,
					"organization_id": orgID,
				}).Error; err != nil {
				return err
			}
		}

		if len(removed) > 0 {
			if err := tx.Model(&db_models.Account{}).
				Where("id IN ? AND organization_id = ?", removed, orgID).
				Updates(map[string]interface{}{
					"role":            db_models.RoleVoter,
					"organization_id": nil,
				}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (o *organizationRepository) DeleteCascade(ctx context.Context, orgID uuid.UUID) error {
	return o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db_models.Account{}).
			Where("organization_id = ? AND role = ?", orgID, db_models.RoleCommittee).
			Update("role", db_models.RoleVoter).Error; err != nil {
			return err
		}

		if err := tx.Model(&db_models.Account{}).
			Where("organization_id = ?", orgID).
			Update("organization_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&db_models.Organization{}, "id = ?", orgID).Error
	})
}
