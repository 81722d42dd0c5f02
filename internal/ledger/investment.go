package ledger

import (
	"time"

	"portfolioledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateInvestment opens a position against an active strategy and returns
// its id. The full amount is taken into custody from the caller, the platform
// fee is routed to the fee collector, and the post-fee remainder becomes both
// the initial and the current value of the position.
func (l *Ledger) CreateInvestment(caller string, now time.Time, strategyID uint, amount decimal.Decimal) (uint, error) {
	if caller == "" {
		return 0, unauthorizedf("caller address required")
	}
	if !amount.IsPositive() {
		return 0, boundsf("investment amount must be positive")
	}

	var id uint
	err := l.run(func(tx *gorm.DB, rec *eventRecorder) error {
		cfg, err := platformConfig(tx)
		if err != nil {
			return err
		}
		if !cfg.InvestmentsEnabled {
			return invalidStatef("investments are disabled")
		}

		s, err := loadStrategy(tx, strategyID)
		if err != nil {
			return err
		}
		if !s.Active {
			return invalidStatef("strategy %d is inactive", strategyID)
		}
		if amount.LessThan(s.MinInvestment) {
			return boundsf("amount %s below strategy minimum %s", amount, s.MinInvestment)
		}
		if !s.MaxInvestment.IsZero() && amount.GreaterThan(s.MaxInvestment) {
			return boundsf("amount %s above strategy maximum %s", amount, s.MaxInvestment)
		}

		// Custody is taken before the record exists.
		if err := l.transfers.Debit(tx, caller, amount, TransferReasonInvest, nil, now); err != nil {
			return err
		}

		fee := platformFee(amount, cfg.FeeBp)
		if fee.IsPositive() {
			if err := l.transfers.Credit(tx, cfg.FeeCollectorAddress, fee, TransferReasonFee, nil, now); err != nil {
				return err
			}
		}
		principal := amount.Sub(fee)

		inv := models.Investment{
			OrderRef:        uuid.NewString(),
			InvestorAddress: caller,
			StrategyID:      strategyID,
			Principal:       principal,
			InitialValue:    principal,
			CurrentValue:    principal,
			StartedAt:       now,
			Active:          true,
		}
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}
		id = inv.ID
		return emit(tx, rec, EntityInvestment, inv.ID, "investment_created", caller, map[string]interface{}{
			"strategy_id": strategyID,
			"amount":      amount,
			"fee":         fee,
			"principal":   principal,
			"order_ref":   inv.OrderRef,
		}, now)
	})
	return id, err
}

// UpdateInvestmentValue overwrites the current value of an open investment
// with an oracle-fed valuation. Operator only; no history beyond the
// initial/current pair is kept.
func (l *Ledger) UpdateInvestmentValue(caller string, now time.Time, id uint, newValue decimal.Decimal) error {
	if newValue.IsNegative() {
		return invariantf("investment value must not be negative")
	}
	return l.run(func(tx *gorm.DB, rec *eventRecorder) error {
		ok, err := isOperator(tx, caller)
		if err != nil {
			return err
		}
		if !ok {
			return unauthorizedf("only the operator may update investment values")
		}

		inv, err := loadInvestment(tx, id)
		if err != nil {
			return err
		}
		if !inv.Active {
			return invalidStatef("investment %d is closed", id)
		}

		inv.CurrentValue = newValue
		if err := tx.Save(inv).Error; err != nil {
			return err
		}
		return emit(tx, rec, EntityInvestment, id, "investment_revalued", caller, map[string]interface{}{
			"value": newValue,
		}, now)
	})
}

// CloseInvestment terminates a position and releases its settled value back
// to the investor. The operator may close any open investment at the supplied
// final value; the owner may close only after the strategy's lock period has
// fully elapsed, settling at the recorded current value.
func (l *Ledger) CloseInvestment(caller string, now time.Time, id uint, finalValue decimal.Decimal) error {
	if finalValue.IsNegative() {
		return invariantf("final value must not be negative")
	}
	return l.run(func(tx *gorm.DB, rec *eventRecorder) error {
		inv, err := loadInvestment(tx, id)
		if err != nil {
			return err
		}

		operator, err := isOperator(tx, caller)
		if err != nil {
			return err
		}
		if !operator && inv.InvestorAddress != caller {
			return unauthorizedf("caller %s may not close investment %d", caller, id)
		}
		if !inv.Active {
			return invalidStatef("investment %d is already closed", id)
		}

		settled := finalValue
		if !operator {
			s, err := loadStrategy(tx, inv.StrategyID)
			if err != nil {
				return err
			}
			unlockAt := inv.StartedAt.Add(s.LockPeriod())
			if now.Before(unlockAt) {
				return boundsf("investment %d is locked until %s", id, unlockAt.UTC().Format(time.RFC3339))
			}
			// Owners settle at the recorded value; only the operator may
			// impose an explicit final valuation.
			settled = inv.CurrentValue
		}

		inv.Active = false
		inv.EndedAt = &now
		inv.CurrentValue = settled
		if err := tx.Save(inv).Error; err != nil {
			return err
		}

		if settled.IsPositive() {
			if err := l.transfers.Credit(tx, inv.InvestorAddress, settled, TransferReasonClose, &inv.ID, now); err != nil {
				return err
			}
		}
		return emit(tx, rec, EntityInvestment, id, "investment_closed", caller, map[string]interface{}{
			"final_value": settled,
		}, now)
	})
}
