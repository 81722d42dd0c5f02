package handlers

import (
	"net/http"
	"time"

	"portfolioledger/internal/ledger"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TransactionRequest represents one audit-trail entry
type TransactionRequest struct {
	AssetID string          `json:"asset_id" binding:"required"`
	Amount  decimal.Decimal `json:"amount"`
	Price   decimal.Decimal `json:"price"`
	IsBuy   bool            `json:"is_buy"`
	TxType  string          `json:"tx_type" binding:"required"`
}

// RebalanceRequest represents a batch of rebalance trail entries
type RebalanceRequest struct {
	Transactions []TransactionRequest `json:"transactions" binding:"required"`
}

func (r TransactionRequest) toInput() ledger.TransactionInput {
	return ledger.TransactionInput{
		AssetID: r.AssetID,
		Amount:  r.Amount,
		Price:   r.Price,
		IsBuy:   r.IsBuy,
		TxType:  r.TxType,
	}
}

// RecordTransaction appends one entry to a portfolio's audit trail
func RecordTransaction(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request TransactionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Ledger.RecordTransaction(caller, time.Now().UTC(), id, request.toInput()); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Transaction recorded successfully"})
}

// RecordRebalance appends a rebalance batch and stamps the rebalance time
func RecordRebalance(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request RebalanceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inputs := make([]ledger.TransactionInput, 0, len(request.Transactions))
	for _, tr := range request.Transactions {
		inputs = append(inputs, tr.toInput())
	}

	if err := Ledger.RecordRebalance(caller, time.Now().UTC(), id, inputs); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Rebalance recorded successfully"})
}

// ListPortfolioTransactions returns a page of a portfolio's audit trail
func ListPortfolioTransactions(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	start, count, ok := parsePageQuery(c)
	if !ok {
		return
	}

	records, err := Ledger.GetPortfolioTransactions(id, start, count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetPortfolioTransactionCount returns the audit trail length
func GetPortfolioTransactionCount(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	count, err := Ledger.GetPortfolioTransactionCount(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
