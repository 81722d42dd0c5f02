package ledger

import (
	"time"

	"portfolioledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ClaimYield withdraws part of an open investment's accrued yield without
// closing the position. The claim reduces the current value but never
// initial value, so the current value can never be claimed below it.
func (l *Ledger) ClaimYield(caller string, now time.Time, investmentID uint, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return boundsf("claim amount must be positive")
	}
	return l.run(func(tx *gorm.DB, rec *eventRecorder) error {
		inv, err := loadInvestment(tx, investmentID)
		if err != nil {
			return err
		}
		if inv.InvestorAddress != caller {
			return unauthorizedf("only the investor may claim yield on investment %d", investmentID)
		}
		if !inv.Active {
			return invalidStatef("investment %d is closed", investmentID)
		}

		available := inv.AvailableYield()
		if amount.GreaterThan(available) {
			return boundsf("claim %s exceeds available yield %s on investment %d", amount, available, investmentID)
		}

		inv.CurrentValue = inv.CurrentValue.Sub(amount)
		if err := tx.Save(inv).Error; err != nil {
			return err
		}

		claim := models.YieldClaim{
			InvestmentID:    investmentID,
			InvestorAddress: caller,
			Amount:          amount,
			ClaimedAt:       now,
		}
		if err := tx.Create(&claim).Error; err != nil {
			return err
		}

		if err := l.transfers.Credit(tx, caller, amount, TransferReasonYieldClaim, &inv.ID, now); err != nil {
			return err
		}
		return emit(tx, rec, EntityInvestment, investmentID, "yield_claimed", caller, map[string]interface{}{
			"amount":        amount,
			"current_value": inv.CurrentValue,
		}, now)
	})
}
