package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one accepted wage-credit SMS event. The five-column unique
// index makes re-inserting the identical tuple a no-op; this is the system's
// only dedup guarantee.
type Transaction struct {
	OwnerID     int64           `gorm:"column:owner_id;index:idx_tx_tuple,unique"`
	DisplayName string          `gorm:"column:display_name;index:idx_tx_tuple,unique"`
	CardID      string          `gorm:"column:card_id;index:idx_tx_tuple,unique"`
	Timestamp   time.Time       `gorm:"column:timestamp;index:idx_tx_tuple,unique"`
	Amount      decimal.Decimal `gorm:"column:amount;type:decimal(20,2);index:idx_tx_tuple,unique"`
}

func (Transaction) TableName() string { return "data" }
