package model

// NotifySubscription fans a copy of every accepted-transaction notification
// from OwnerID out to RecipientID.
type NotifySubscription struct {
	OwnerID     int64 `gorm:"column:owner_id;index:idx_notify_pair,unique"`
	RecipientID int64 `gorm:"column:recipient_id;index:idx_notify_pair,unique"`
}

func (NotifySubscription) TableName() string { return "notify" }
