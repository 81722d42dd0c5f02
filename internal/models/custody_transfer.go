package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Custody transfer directions.
const (
	CustodyDirectionIn  = "in"  // value taken from the counterparty into custody
	CustodyDirectionOut = "out" // value released from custody to the counterparty
)

// CustodyTransfer records one value movement across the custody boundary.
// The physical transfer is performed by the hosting environment; this row is
// the ledger-side record written atomically with the triggering mutation.
type CustodyTransfer struct {
	ID                  uint            `gorm:"primarykey" json:"id"`
	Direction           string          `gorm:"size:4;not null" json:"direction"`
	CounterpartyAddress string          `gorm:"size:100;not null;index" json:"counterparty_address"`
	Amount              decimal.Decimal `gorm:"type:decimal(30,10);not null" json:"amount"`
	Reason              string          `gorm:"size:32;not null" json:"reason"` // "invest", "fee", "close", "yield_claim"
	InvestmentID        *uint           `gorm:"index" json:"investment_id,omitempty"`
	OccurredAt          time.Time       `gorm:"not null" json:"occurred_at"`
	CreatedAt           time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

func (CustodyTransfer) TableName() string {
	return "custody_transfer"
}
