package ledger

import (
	"portfolioledger/internal/models"
)

// GetPortfolioAssets returns the portfolio's active allocations.
func (l *Ledger) GetPortfolioAssets(portfolioID uint) ([]models.AssetAllocation, error) {
	var allocs []models.AssetAllocation
	err := l.db.Where("portfolio_id = ? AND active = ?", portfolioID, true).
		Order("id").Find(&allocs).Error
	return allocs, err
}

// GetPortfolioManagers returns the manager addresses of a portfolio.
func (l *Ledger) GetPortfolioManagers(portfolioID uint) ([]string, error) {
	var managers []string
	err := l.db.Model(&models.PortfolioManager{}).
		Where("portfolio_id = ?", portfolioID).
		Order("id").Pluck("manager_address", &managers).Error
	return managers, err
}

// GetUserPortfolios returns every portfolio owned by the address, active or not.
func (l *Ledger) GetUserPortfolios(owner string) ([]models.Portfolio, error) {
	var portfolios []models.Portfolio
	err := l.db.Where("owner_address = ?", owner).Order("id").Find(&portfolios).Error
	return portfolios, err
}

// GetPortfolioTransactionCount returns the length of the portfolio's audit trail.
func (l *Ledger) GetPortfolioTransactionCount(portfolioID uint) (int64, error) {
	var count int64
	err := l.db.Model(&models.TransactionRecord{}).
		Where("portfolio_id = ?", portfolioID).Count(&count).Error
	return count, err
}

// GetPortfolioTransactions returns a page of the portfolio's audit trail in
// insertion order. Returns an empty page when start is at or past the end.
func (l *Ledger) GetPortfolioTransactions(portfolioID uint, start, count int) ([]models.TransactionRecord, error) {
	if start < 0 || count <= 0 {
		return []models.TransactionRecord{}, nil
	}
	records := []models.TransactionRecord{}
	err := l.db.Where("portfolio_id = ?", portfolioID).
		Order("id").Offset(start).Limit(count).Find(&records).Error
	return records, err
}

// GetActiveStrategies returns a page over only the active catalog entries.
func (l *Ledger) GetActiveStrategies(start, count int) ([]models.Strategy, error) {
	if start < 0 || count <= 0 {
		return []models.Strategy{}, nil
	}
	strategies := []models.Strategy{}
	err := l.db.Where("active = ?", true).
		Order("id").Offset(start).Limit(count).Find(&strategies).Error
	return strategies, err
}

// GetActiveInvestmentsForUser returns the address's open positions.
func (l *Ledger) GetActiveInvestmentsForUser(investor string) ([]models.Investment, error) {
	var investments []models.Investment
	err := l.db.Where("investor_address = ? AND active = ?", investor, true).
		Order("id").Find(&investments).Error
	return investments, err
}

// GetUserYieldClaims returns every yield claim made by the address.
func (l *Ledger) GetUserYieldClaims(investor string) ([]models.YieldClaim, error) {
	var claims []models.YieldClaim
	err := l.db.Where("investor_address = ?", investor).Order("id").Find(&claims).Error
	return claims, err
}
