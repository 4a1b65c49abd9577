package model

// IgnoredCard is a per-owner suppression rule: parsed transactions from this
// card are reported back to the owner but never persisted.
type IgnoredCard struct {
	OwnerID int64  `gorm:"column:owner_id;index:idx_ignored_pair,unique"`
	CardID  string `gorm:"column:card_id;index:idx_ignored_pair,unique"`
}

func (IgnoredCard) TableName() string { return "ignored_cards" }
