package repository

import (
	"context"
	"errors"
	"time"

	"github.com/eugenezastrogin/sms-moneybot/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrOwnerNotFound = errors.New("OWNER_NOT_FOUND")

type LedgerRepository interface {
	Insert(ctx context.Context, tx *model.Transaction) error
	SumAmount(ctx context.Context, ownerID int64, start, end time.Time) (decimal.Decimal, error)
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
	DumpAll(ctx context.Context) ([]model.Transaction, error)
	DumpOwner(ctx context.Context, ownerID int64) ([]model.Transaction, error)
	PurgeAll(ctx context.Context) error
	PurgeOwner(ctx context.Context, ownerID int64) error
	ResolveOwnerByName(ctx context.Context, name string) (int64, error)
	ResolveNameByOwner(ctx context.Context, ownerID int64) (string, error)
}

type Ledger struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &Ledger{db: db}
}

// Insert writes one transaction; re-inserting the identical five-column tuple
// is a silent no-op.
func (l *Ledger) Insert(ctx context.Context, tx *model.Transaction) error {
	return l.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(tx).Error
}

// SumAmount totals amounts for owner with timestamp in [start, end). An empty
// window yields zero, not an absent value.
func (l *Ledger) SumAmount(ctx context.Context, ownerID int64, start, end time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal

	row := l.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("owner_id = ? AND timestamp >= ? AND timestamp < ?", ownerID, start, end).
		Select("COALESCE(SUM(amount), 0)").
		Row()

	if err := row.Scan(&sum); err != nil {
		return decimal.Zero, err
	}

	return sum, nil
}

func (l *Ledger) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var count int64

	err := l.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (l *Ledger) DumpAll(ctx context.Context) ([]model.Transaction, error) {
	var txs []model.Transaction

	err := l.db.WithContext(ctx).
		Order("timestamp ASC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}

	return txs, nil
}

func (l *Ledger) DumpOwner(ctx context.Context, ownerID int64) ([]model.Transaction, error) {
	var txs []model.Transaction

	err := l.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("timestamp ASC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}

	return txs, nil
}

func (l *Ledger) PurgeAll(ctx context.Context) error {
	return l.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Transaction{}).Error
}

func (l *Ledger) PurgeOwner(ctx context.Context, ownerID int64) error {
	return l.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.Transaction{}).Error
}

// ResolveOwnerByName maps a display name to the owner that used it most
// recently. Best-effort scan over transaction history, not an identity system.
func (l *Ledger) ResolveOwnerByName(ctx context.Context, name string) (int64, error) {
	var tx model.Transaction

	err := l.db.WithContext(ctx).
		Where("display_name = ?", name).
		Order("timestamp DESC").
		First(&tx).Error
	if err == nil {
		return tx.OwnerID, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrOwnerNotFound
	}

	return 0, err
}

func (l *Ledger) ResolveNameByOwner(ctx context.Context, ownerID int64) (string, error) {
	var tx model.Transaction

	err := l.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("timestamp DESC").
		First(&tx).Error
	if err == nil {
		return tx.DisplayName, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrOwnerNotFound
	}

	return "", err
}
