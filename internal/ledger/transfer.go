package ledger

import (
	"time"

	"portfolioledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Custody transfer reasons.
const (
	TransferReasonInvest     = "invest"
	TransferReasonFee        = "fee"
	TransferReasonClose      = "close"
	TransferReasonYieldClaim = "yield_claim"
)

// TransferPort is the custody boundary. The hosting environment performs the
// physical value movement; implementations must succeed or fail atomically
// with the surrounding ledger transaction, which is why they receive the
// transaction handle.
type TransferPort interface {
	// Debit takes amount from the counterparty into platform custody.
	Debit(tx *gorm.DB, counterparty string, amount decimal.Decimal, reason string, investmentID *uint, now time.Time) error
	// Credit releases amount from platform custody to the counterparty.
	Credit(tx *gorm.DB, counterparty string, amount decimal.Decimal, reason string, investmentID *uint, now time.Time) error
}

// recordingTransfers is the default TransferPort: it records custody movements
// as ledger rows and leaves the physical transfer to the host.
type recordingTransfers struct{}

func (recordingTransfers) Debit(tx *gorm.DB, counterparty string, amount decimal.Decimal, reason string, investmentID *uint, now time.Time) error {
	return tx.Create(&models.CustodyTransfer{
		Direction:           models.CustodyDirectionIn,
		CounterpartyAddress: counterparty,
		Amount:              amount,
		Reason:              reason,
		InvestmentID:        investmentID,
		OccurredAt:          now,
	}).Error
}

func (recordingTransfers) Credit(tx *gorm.DB, counterparty string, amount decimal.Decimal, reason string, investmentID *uint, now time.Time) error {
	return tx.Create(&models.CustodyTransfer{
		Direction:           models.CustodyDirectionOut,
		CounterpartyAddress: counterparty,
		Amount:              amount,
		Reason:              reason,
		InvestmentID:        investmentID,
		OccurredAt:          now,
	}).Error
}
