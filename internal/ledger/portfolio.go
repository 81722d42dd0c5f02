package ledger

import (
	"time"

	"portfolioledger/internal/models"

	"gorm.io/gorm"
)

// CreatePortfolio registers a new active portfolio owned by the caller and
// returns its id.
func (l *Ledger) CreatePortfolio(caller string, now time.Time, name, description string) (uint, error) {
	if caller == "" {
		return 0, unauthorizedf("caller address required")
	}
	if name == "" {
		return 0, invariantf("portfolio name must not be empty")
	}

	var id uint
	err := l.run(func(tx *gorm.DB, rec *eventRecorder) error {
		p := models.Portfolio{
			OwnerAddress: caller,
			Name:         name,
			Description:  description,
			Active:       true,
		}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		id = p.ID
		return emit(tx, rec, EntityPortfolio, p.ID, "portfolio_created", caller, map[string]interface{}{
			"name":  name,
			"owner": caller,
		}, now)
	})
	return id, err
}

// UpdatePortfolio changes a portfolio's name and description. Owner or
// manager only.
func (l *Ledger) UpdatePortfolio(caller string, now time.Time, id uint, name, description string) error {
	if name == "" {
		return invariantf("portfolio name must not be empty")
	}
	return l.run(func(tx *gorm.DB, rec *eventRecorder) error {
		p, err := loadPortfolio(tx, id)
		if err != nil {
			return err
		}
		ok, err := isOwnerOrManager(tx, p, caller)
		if err != nil {
			return err
		}
		if !ok {
			return unauthorizedf("caller %s is neither owner nor manager of portfolio %d", caller, id)
		}

		p.Name = name
		p.Description = description
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		return emit(tx, rec, EntityPortfolio, id, "portfolio_updated", caller, map[string]interface{}{
			"name": name,
		}, now)
	})
}

// AddManager adds an address to the portfolio's manager set. Owner only;
// adding an address twice fails.
func (l *Ledger) AddManager(caller string, now time.Time, id uint, manager string) error {
	if manager == "" {
		return invariantf("manager address must not be empty")
	}
	return l.run(func(tx *gorm.DB, rec *eventRecorder) error {
		p, err := loadPortfolio(tx, id)
		if err != nil {
			return err
		}
		if !isOwner(p, caller) {
			return unauthorizedf("only the owner may add managers to portfolio %d", id)
		}

		exists, err := isManager(tx, id, manager)
		if err != nil {
			return err
		}
		if exists {
			return invariantf("address %s is already a manager of portfolio %d", manager, id)
		}

		if err := tx.Create(&models.PortfolioManager{
			PortfolioID:    id,
			ManagerAddress: manager,
		}).Error; err != nil {
			return err
		}
		return emit(tx, rec, EntityPortfolio, id, "manager_added", caller, map[string]interface{}{
			"manager": manager,
		}, now)
	})
}

// RemoveManager removes an address from the portfolio's manager set. Owner
// only; removing an address that was never added fails.
func (l *Ledger) RemoveManager(caller string, now time.Time, id uint, manager string) error {
	return l.run(func(tx *gorm.DB, rec *eventRecorder) error {
		p, err := loadPortfolio(tx, id)
		if err != nil {
			return err
		}
		if !isOwner(p, caller) {
			return unauthorizedf("only the owner may remove managers from portfolio %d", id)
		}

		res := tx.Where("portfolio_id = ? AND manager_address = ?", id, manager).
			Delete(&models.PortfolioManager{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return notFoundf("address %s is not a manager of portfolio %d", manager, id)
		}
		return emit(tx, rec, EntityPortfolio, id, "manager_removed", caller, map[string]interface{}{
			"manager": manager,
		}, now)
	})
}

// DeactivatePortfolio flips an active portfolio to inactive. Owner only;
// deactivating twice fails.
func (l *Ledger) DeactivatePortfolio(caller string, now time.Time, id uint) error {
	return l.setPortfolioActive(caller, now, id, false)
}

// ReactivatePortfolio flips an inactive portfolio back to active. Owner only;
// reactivating an active portfolio fails.
func (l *Ledger) ReactivatePortfolio(caller string, now time.Time, id uint) error {
	return l.setPortfolioActive(caller, now, id, true)
}

func (l *Ledger) setPortfolioActive(caller string, now time.Time, id uint, active bool) error {
	return l.run(func(tx *gorm.DB, rec *eventRecorder) error {
		p, err := loadPortfolio(tx, id)
		if err != nil {
			return err
		}
		if !isOwner(p, caller) {
			return unauthorizedf("only the owner may change activation of portfolio %d", id)
		}
		if p.Active == active {
			if active {
				return invalidStatef("portfolio %d is already active", id)
			}
			return invalidStatef("portfolio %d is already inactive", id)
		}

		p.Active = active
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		action := "portfolio_deactivated"
		if active {
			action = "portfolio_reactivated"
		}
		return emit(tx, rec, EntityPortfolio, id, action, caller, map[string]interface{}{
			"active": active,
		}, now)
	})
}
