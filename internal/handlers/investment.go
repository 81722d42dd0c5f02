package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CreateInvestmentRequest represents the request body for opening a position
type CreateInvestmentRequest struct {
	StrategyID uint            `json:"strategy_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
}

// InvestmentValueRequest represents an oracle-fed revaluation
type InvestmentValueRequest struct {
	Value decimal.Decimal `json:"value"`
}

// CloseInvestmentRequest represents the request body for closing a position
type CloseInvestmentRequest struct {
	FinalValue decimal.Decimal `json:"final_value"`
}

// ClaimYieldRequest represents a partial yield withdrawal
type ClaimYieldRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CreateInvestment opens a position against a strategy
func CreateInvestment(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var request CreateInvestmentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := Ledger.CreateInvestment(caller, time.Now().UTC(), request.StrategyID, request.Amount)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateInvestmentValue overwrites an open investment's value (operator only)
func UpdateInvestmentValue(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request InvestmentValueRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Ledger.UpdateInvestmentValue(caller, time.Now().UTC(), id, request.Value); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Investment value updated successfully"})
}

// CloseInvestment terminates a position and releases its settled value
func CloseInvestment(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request CloseInvestmentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Ledger.CloseInvestment(caller, time.Now().UTC(), id, request.FinalValue); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Investment closed successfully"})
}

// ClaimYield withdraws accrued yield from an open position
func ClaimYield(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request ClaimYieldRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Ledger.ClaimYield(caller, time.Now().UTC(), id, request.Amount); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Yield claimed successfully"})
}

// ListActiveInvestmentsForUser returns an address's open positions
func ListActiveInvestmentsForUser(c *gin.Context) {
	investments, err := Ledger.GetActiveInvestmentsForUser(c.Param("address"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, investments)
}

// ListUserYieldClaims returns every yield claim made by an address
func ListUserYieldClaims(c *gin.Context) {
	claims, err := Ledger.GetUserYieldClaims(c.Param("address"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, claims)
}
