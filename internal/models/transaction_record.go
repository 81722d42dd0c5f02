package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction type tags.
const (
	TxTypeRebalance  = "rebalance"
	TxTypeDeposit    = "deposit"
	TxTypeWithdrawal = "withdrawal"
	TxTypeManual     = "manual"
)

// TransactionRecord is one append-only audit-trail entry of a portfolio.
// Records are never updated or deleted.
type TransactionRecord struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	PortfolioID uint            `gorm:"not null;index" json:"portfolio_id"`
	AssetID     string          `gorm:"size:64;not null" json:"asset_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(30,10);not null" json:"amount"`
	Price       decimal.Decimal `gorm:"type:decimal(30,10);not null" json:"price"`
	IsBuy       bool            `gorm:"not null" json:"is_buy"`
	TxType      string          `gorm:"size:20;not null;default:'manual'" json:"tx_type"`
	RecordedAt  time.Time       `gorm:"not null" json:"recorded_at"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

func (TransactionRecord) TableName() string {
	return "transaction_record"
}
