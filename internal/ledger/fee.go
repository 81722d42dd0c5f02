package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaxPlatformFeeBp caps the platform fee on investment inflows at 1%.
const MaxPlatformFeeBp int64 = 100

// platformFee computes the fee on an inflow: amount * feeBp / 10000,
// floor-divided.
func platformFee(amount decimal.Decimal, feeBp int64) decimal.Decimal {
	if feeBp <= 0 {
		return decimal.Zero
	}
	return amount.
		Mul(decimal.NewFromInt(feeBp)).
		Div(decimal.NewFromInt(TotalWeightBp)).
		Floor()
}

// SetPlatformFee updates the fee rate charged on investment inflows.
// Operator only; applies to subsequently created investments.
func (l *Ledger) SetPlatformFee(caller string, now time.Time, feeBp int64) error {
	if feeBp < 0 || feeBp > MaxPlatformFeeBp {
		return invariantf("platform fee %d bp outside [0, %d]", feeBp, MaxPlatformFeeBp)
	}
	return l.run(func(tx *gorm.DB, rec *eventRecorder) error {
		cfg, err := platformConfig(tx)
		if err != nil {
			return err
		}
		if cfg.OperatorAddress != caller {
			return unauthorizedf("only the operator may set the platform fee")
		}

		cfg.FeeBp = feeBp
		if err := tx.Save(cfg).Error; err != nil {
			return err
		}
		return emit(tx, rec, EntityPlatform, cfg.ID, "platform_fee_updated", caller, map[string]interface{}{
			"fee_bp": feeBp,
		}, now)
	})
}

// SetFeeCollector updates the identity fees are routed to. Operator only.
func (l *Ledger) SetFeeCollector(caller string, now time.Time, collector string) error {
	if collector == "" {
		return invariantf("fee collector address must not be empty")
	}
	return l.run(func(tx *gorm.DB, rec *eventRecorder) error {
		cfg, err := platformConfig(tx)
		if err != nil {
			return err
		}
		if cfg.OperatorAddress != caller {
			return unauthorizedf("only the operator may set the fee collector")
		}

		cfg.FeeCollectorAddress = collector
		if err := tx.Save(cfg).Error; err != nil {
			return err
		}
		return emit(tx, rec, EntityPlatform, cfg.ID, "fee_collector_updated", caller, map[string]interface{}{
			"fee_collector": collector,
		}, now)
	})
}

// SetInvestmentsEnabled toggles the global switch gating new investments.
// Operator only; open positions are unaffected.
func (l *Ledger) SetInvestmentsEnabled(caller string, now time.Time, enabled bool) error {
	return l.run(func(tx *gorm.DB, rec *eventRecorder) error {
		cfg, err := platformConfig(tx)
		if err != nil {
			return err
		}
		if cfg.OperatorAddress != caller {
			return unauthorizedf("only the operator may toggle investments")
		}

		cfg.InvestmentsEnabled = enabled
		if err := tx.Save(cfg).Error; err != nil {
			return err
		}
		return emit(tx, rec, EntityPlatform, cfg.ID, "investments_toggled", caller, map[string]interface{}{
			"enabled": enabled,
		}, now)
	})
}
