package ledger

import (
	"time"

	"portfolioledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionInput is one audit-trail entry supplied by the caller.
type TransactionInput struct {
	AssetID string          `json:"asset_id"`
	Amount  decimal.Decimal `json:"amount"`
	Price   decimal.Decimal `json:"price"`
	IsBuy   bool            `json:"is_buy"`
	TxType  string          `json:"tx_type"`
}

func validTxType(t string) bool {
	switch t {
	case models.TxTypeRebalance, models.TxTypeDeposit, models.TxTypeWithdrawal, models.TxTypeManual:
		return true
	}
	return false
}

func validateTransactionInput(in TransactionInput) error {
	if in.AssetID == "" {
		return invariantf("asset id must not be empty")
	}
	if in.Amount.IsNegative() {
		return invariantf("transaction amount must not be negative")
	}
	if in.Price.IsNegative() {
		return invariantf("transaction price must not be negative")
	}
	return nil
}

// RecordTransaction appends one entry to the portfolio's audit trail.
// Owner or manager only; the trail is read-only outside the ledger.
func (l *Ledger) RecordTransaction(caller string, now time.Time, portfolioID uint, in TransactionInput) error {
	if !validTxType(in.TxType) {
		return invariantf("unknown transaction type %q", in.TxType)
	}
	if err := validateTransactionInput(in); err != nil {
		return err
	}
	return l.run(func(tx *gorm.DB, rec *eventRecorder) error {
		if _, err := guardAllocationMutation(tx, portfolioID, caller); err != nil {
			return err
		}
		record := models.TransactionRecord{
			PortfolioID: portfolioID,
			AssetID:     in.AssetID,
			Amount:      in.Amount,
			Price:       in.Price,
			IsBuy:       in.IsBuy,
			TxType:      in.TxType,
			RecordedAt:  now,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		return emit(tx, rec, EntityPortfolio, portfolioID, "transaction_recorded", caller, map[string]interface{}{
			"asset_id": in.AssetID,
			"amount":   in.Amount,
			"tx_type":  in.TxType,
			"is_buy":   in.IsBuy,
		}, now)
	})
}

// RecordRebalance appends a batch of rebalance-typed trail entries and stamps
// the portfolio's last-rebalance time. All-or-nothing like every batch call.
func (l *Ledger) RecordRebalance(caller string, now time.Time, portfolioID uint, inputs []TransactionInput) error {
	if len(inputs) == 0 {
		return invariantf("rebalance batch must not be empty")
	}
	for _, in := range inputs {
		if err := validateTransactionInput(in); err != nil {
			return err
		}
	}
	return l.run(func(tx *gorm.DB, rec *eventRecorder) error {
		p, err := guardAllocationMutation(tx, portfolioID, caller)
		if err != nil {
			return err
		}

		for _, in := range inputs {
			record := models.TransactionRecord{
				PortfolioID: portfolioID,
				AssetID:     in.AssetID,
				Amount:      in.Amount,
				Price:       in.Price,
				IsBuy:       in.IsBuy,
				TxType:      models.TxTypeRebalance,
				RecordedAt:  now,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}

		p.LastRebalancedAt = &now
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		return emit(tx, rec, EntityPortfolio, portfolioID, "rebalance_recorded", caller, map[string]interface{}{
			"entries": len(inputs),
		}, now)
	})
}
