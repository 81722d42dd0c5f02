package handlers

import (
	"net/http"
	"time"

	"portfolioledger/internal/ledger"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// StrategyRequest represents the request body for creating/updating a strategy
type StrategyRequest struct {
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description"`
	Protocol       string          `json:"protocol" binding:"required"`
	AssetID        string          `json:"asset_id" binding:"required"`
	ApyBp          int64           `json:"apy_bp"`
	RiskTier       int             `json:"risk_tier" binding:"required"`
	LockPeriodSecs int64           `json:"lock_period_secs"`
	MinInvestment  decimal.Decimal `json:"min_investment"`
	MaxInvestment  decimal.Decimal `json:"max_investment"`
}

func (r StrategyRequest) toParams() ledger.StrategyParams {
	return ledger.StrategyParams{
		Name:           r.Name,
		Description:    r.Description,
		Protocol:       r.Protocol,
		AssetID:        r.AssetID,
		ApyBp:          r.ApyBp,
		RiskTier:       r.RiskTier,
		LockPeriodSecs: r.LockPeriodSecs,
		MinInvestment:  r.MinInvestment,
		MaxInvestment:  r.MaxInvestment,
	}
}

// CreateStrategy creates a new yield strategy (operator only)
func CreateStrategy(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var request StrategyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := Ledger.CreateStrategy(caller, time.Now().UTC(), request.toParams())
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateStrategy updates an active strategy (operator only)
func UpdateStrategy(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request StrategyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Ledger.UpdateStrategy(caller, time.Now().UTC(), id, request.toParams()); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Strategy updated successfully"})
}

// DeactivateStrategy retires a strategy from new investments (operator only)
func DeactivateStrategy(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := Ledger.DeactivateStrategy(caller, time.Now().UTC(), id); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Strategy deactivated successfully"})
}

// ListActiveStrategies returns a page over active catalog entries
func ListActiveStrategies(c *gin.Context) {
	start, count, ok := parsePageQuery(c)
	if !ok {
		return
	}

	strategies, err := Ledger.GetActiveStrategies(start, count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, strategies)
}
