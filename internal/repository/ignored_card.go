package repository

import (
	"context"

	"github.com/eugenezastrogin/sms-moneybot/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IgnoredCardRepository interface {
	Add(ctx context.Context, ownerID int64, cardID string) error
	Remove(ctx context.Context, ownerID int64, cardID string) error
	List(ctx context.Context, ownerID int64) ([]string, error)
	Contains(ctx context.Context, ownerID int64, cardID string) (bool, error)
}

type IgnoredCard struct {
	db *gorm.DB
}

func NewIgnoredCardRepository(db *gorm.DB) IgnoredCardRepository {
	return &IgnoredCard{db: db}
}

func (r *IgnoredCard) Add(ctx context.Context, ownerID int64, cardID string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.IgnoredCard{OwnerID: ownerID, CardID: cardID}).Error
}

func (r *IgnoredCard) Remove(ctx context.Context, ownerID int64, cardID string) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ? AND card_id = ?", ownerID, cardID).
		Delete(&model.IgnoredCard{}).Error
}

func (r *IgnoredCard) List(ctx context.Context, ownerID int64) ([]string, error) {
	var cards []string

	err := r.db.WithContext(ctx).Model(&model.IgnoredCard{}).
		Where("owner_id = ?", ownerID).
		Order("card_id ASC").
		Pluck("card_id", &cards).Error
	if err != nil {
		return nil, err
	}

	return cards, nil
}

func (r *IgnoredCard) Contains(ctx context.Context, ownerID int64, cardID string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).Model(&model.IgnoredCard{}).
		Where("owner_id = ? AND card_id = ?", ownerID, cardID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
