package repository

import (
	"context"

	"github.com/eugenezastrogin/sms-moneybot/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotifyRepository interface {
	Add(ctx context.Context, ownerID, recipientID int64) error
	Remove(ctx context.Context, ownerID, recipientID int64) error
	List(ctx context.Context, ownerID int64) ([]int64, error)
}

type Notify struct {
	db *gorm.DB
}

func NewNotifyRepository(db *gorm.DB) NotifyRepository {
	return &Notify{db: db}
}

func (r *Notify) Add(ctx context.Context, ownerID, recipientID int64) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.NotifySubscription{OwnerID: ownerID, RecipientID: recipientID}).Error
}

func (r *Notify) Remove(ctx context.Context, ownerID, recipientID int64) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ? AND recipient_id = ?", ownerID, recipientID).
		Delete(&model.NotifySubscription{}).Error
}

func (r *Notify) List(ctx context.Context, ownerID int64) ([]int64, error) {
	var recipients []int64

	err := r.db.WithContext(ctx).Model(&model.NotifySubscription{}).
		Where("owner_id = ?", ownerID).
		Order("recipient_id ASC").
		Pluck("recipient_id", &recipients).Error
	if err != nil {
		return nil, err
	}

	return recipients, nil
}
