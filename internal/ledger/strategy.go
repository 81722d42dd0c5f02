package ledger

import (
	"time"

	"portfolioledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Risk tier bounds for strategies.
const (
	MinRiskTier = 1
	MaxRiskTier = 5
)

// StrategyParams carries the operator-supplied strategy definition.
type StrategyParams struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Protocol       string          `json:"protocol"`
	AssetID        string          `json:"asset_id"`
	ApyBp          int64           `json:"apy_bp"`
	RiskTier       int             `json:"risk_tier"`
	LockPeriodSecs int64           `json:"lock_period_secs"`
	MinInvestment  decimal.Decimal `json:"min_investment"`
	MaxInvestment  decimal.Decimal `json:"max_investment"`
}

func validateStrategyParams(p StrategyParams) error {
	if p.Name == "" {
		return invariantf("strategy name must not be empty")
	}
	if p.Protocol == "" {
		return invariantf("strategy protocol must not be empty")
	}
	if p.AssetID == "" {
		return invariantf("strategy asset id must not be empty")
	}
	if p.RiskTier < MinRiskTier || p.RiskTier > MaxRiskTier {
		return invariantf("risk tier %d outside [%d, %d]", p.RiskTier, MinRiskTier, MaxRiskTier)
	}
	if p.ApyBp < 0 {
		return invariantf("apy must not be negative")
	}
	if p.LockPeriodSecs < 0 {
		return invariantf("lock period must not be negative")
	}
	if p.MinInvestment.IsNegative() {
		return invariantf("minimum investment must not be negative")
	}
	// A zero maximum means unbounded.
	if !p.MaxInvestment.IsZero() && p.MaxInvestment.LessThan(p.MinInvestment) {
		return invariantf("maximum investment below minimum")
	}
	return nil
}

// CreateStrategy registers a new yield strategy in the catalog and returns
// its id. Operator only.
func (l *Ledger) CreateStrategy(caller string, now time.Time, params StrategyParams) (uint, error) {
	if err := validateStrategyParams(params); err != nil {
		return 0, err
	}
	var id uint
	err := l.run(func(tx *gorm.DB, rec *eventRecorder) error {
		ok, err := isOperator(tx, caller)
		if err != nil {
			return err
		}
		if !ok {
			return unauthorizedf("only the operator may create strategies")
		}

		s := models.Strategy{
			Name:           params.Name,
			Description:    params.Description,
			Protocol:       params.Protocol,
			AssetID:        params.AssetID,
			ApyBp:          params.ApyBp,
			RiskTier:       params.RiskTier,
			LockPeriodSecs: params.LockPeriodSecs,
			MinInvestment:  params.MinInvestment,
			MaxInvestment:  params.MaxInvestment,
			Active:         true,
		}
		if err := tx.Create(&s).Error; err != nil {
			return err
		}
		id = s.ID
		return emit(tx, rec, EntityStrategy, s.ID, "strategy_created", caller, map[string]interface{}{
			"name":      params.Name,
			"protocol":  params.Protocol,
			"asset_id":  params.AssetID,
			"risk_tier": params.RiskTier,
		}, now)
	})
	return id, err
}

// UpdateStrategy overwrites an active strategy's definition. Operator only;
// the strategy must still be active.
func (l *Ledger) UpdateStrategy(caller string, now time.Time, id uint, params StrategyParams) error {
	if err := validateStrategyParams(params); err != nil {
		return err
	}
	return l.run(func(tx *gorm.DB, rec *eventRecorder) error {
		ok, err := isOperator(tx, caller)
		if err != nil {
			return err
		}
		if !ok {
			return unauthorizedf("only the operator may update strategies")
		}

		s, err := loadStrategy(tx, id)
		if err != nil {
			return err
		}
		if !s.Active {
			return invalidStatef("strategy %d is inactive", id)
		}

		s.Name = params.Name
		s.Description = params.Description
		s.Protocol = params.Protocol
		s.AssetID = params.AssetID
		s.ApyBp = params.ApyBp
		s.RiskTier = params.RiskTier
		s.LockPeriodSecs = params.LockPeriodSecs
		s.MinInvestment = params.MinInvestment
		s.MaxInvestment = params.MaxInvestment
		if err := tx.Save(s).Error; err != nil {
			return err
		}
		return emit(tx, rec, EntityStrategy, id, "strategy_updated", caller, map[string]interface{}{
			"name": params.Name,
		}, now)
	})
}

// DeactivateStrategy retires a strategy from new investments. Terminal:
// there is no reactivation path, so positions already open keep referencing
// a stable definition.
func (l *Ledger) DeactivateStrategy(caller string, now time.Time, id uint) error {
	return l.run(func(tx *gorm.DB, rec *eventRecorder) error {
		ok, err := isOperator(tx, caller)
		if err != nil {
			return err
		}
		if !ok {
			return unauthorizedf("only the operator may deactivate strategies")
		}

		s, err := loadStrategy(tx, id)
		if err != nil {
			return err
		}
		if !s.Active {
			return invalidStatef("strategy %d is already inactive", id)
		}

		s.Active = false
		if err := tx.Save(s).Error; err != nil {
			return err
		}
		return emit(tx, rec, EntityStrategy, id, "strategy_deactivated", caller, nil, now)
	})
}
