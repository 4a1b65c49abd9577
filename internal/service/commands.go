package service

import (
	"io"
	"time"

	"github.com/eugenezastrogin/sms-moneybot/internal/model"
	"github.com/eugenezastrogin/sms-moneybot/internal/period"
	"github.com/shopspring/decimal"
)

type SubmitTransactionCommand struct {
	OwnerID     int64
	DisplayName string
	Text        string
}

type SubmitBatchCommand struct {
	OwnerID     int64
	DisplayName string
	Lines       io.Reader
}

type QueryWageCommand struct {
	OwnerID int64
	Args    []string
	Now     time.Time
}

type QueryWageByNameCommand struct {
	Name string
	Args []string
	Now  time.Time
}

type SubmitStatus string

const (
	SubmitRejected SubmitStatus = "REJECTED"
	SubmitIgnored  SubmitStatus = "IGNORED"
	SubmitAccepted SubmitStatus = "ACCEPTED"
)

type SubmitResult struct {
	Status      SubmitStatus
	Transaction model.Transaction
	// PeriodTotal is the running sum of the pay period the transaction's own
	// timestamp falls into, not the period it was submitted in.
	PeriodTotal decimal.Decimal
	Window      period.Window
}

type BatchResult struct {
	Total    int
	Accepted int
	Ignored  int
}

type PeriodSum struct {
	Window period.Window
	Amount decimal.Decimal
}

type WageReport struct {
	Yearly bool
	Period PeriodSum
	Months []PeriodSum
	Total  PeriodSum
}
