package ledger

import (
	"portfolioledger/internal/models"

	"gorm.io/gorm"
)

// isOwner reports whether caller owns the portfolio.
func isOwner(p *models.Portfolio, caller string) bool {
	return p.OwnerAddress == caller
}

// isManager reports whether caller is in the portfolio's manager set.
func isManager(tx *gorm.DB, portfolioID uint, caller string) (bool, error) {
	var count int64
	err := tx.Model(&models.PortfolioManager{}).
		Where("portfolio_id = ? AND manager_address = ?", portfolioID, caller).
		Count(&count).Error
	return count > 0, err
}

// isOwnerOrManager reports whether caller may mutate the portfolio.
func isOwnerOrManager(tx *gorm.DB, p *models.Portfolio, caller string) (bool, error) {
	if isOwner(p, caller) {
		return true, nil
	}
	return isManager(tx, p.ID, caller)
}

// isOperator reports whether caller is the platform operator.
func isOperator(tx *gorm.DB, caller string) (bool, error) {
	cfg, err := platformConfig(tx)
	if err != nil {
		return false, err
	}
	return cfg.OperatorAddress == caller, nil
}
