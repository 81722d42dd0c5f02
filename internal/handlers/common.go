package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"portfolioledger/internal/ledger"
	"portfolioledger/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Ledger is the shared accounting core, set once at startup.
var Ledger *ledger.Ledger

// Init wires the handlers to the ledger instance.
func Init(l *ledger.Ledger) {
	Ledger = l
}

// requireCaller returns the caller identity or aborts with 401 when the
// upstream authentication layer supplied none.
func requireCaller(c *gin.Context) (string, bool) {
	caller := middleware.CallerAddress(c)
	if caller == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing " + middleware.CallerHeader + " header"})
		return "", false
	}
	return caller, true
}

// parseIDParam parses a numeric path parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}

// parsePageQuery reads start/count pagination query parameters.
func parsePageQuery(c *gin.Context) (start, count int, ok bool) {
	start, err := strconv.Atoi(c.DefaultQuery("start", "0"))
	if err != nil || start < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start parameter"})
		return 0, 0, false
	}
	count, err = strconv.Atoi(c.DefaultQuery("count", "50"))
	if err != nil || count <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid count parameter"})
		return 0, 0, false
	}
	return start, count, true
}

// writeLedgerError maps a rejected ledger operation to an HTTP response.
// The ledger guarantees its state is unchanged on any rejection.
func writeLedgerError(c *gin.Context, err error) {
	var lerr *ledger.Error
	if !errors.As(err, &lerr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := http.StatusInternalServerError
	switch lerr.Kind {
	case ledger.KindUnauthorized:
		status = http.StatusForbidden
	case ledger.KindNotFound:
		status = http.StatusNotFound
	case ledger.KindInvalidState:
		status = http.StatusConflict
	case ledger.KindInvariantViolation, ledger.KindBoundsViolation:
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{
		"error":      lerr.Message,
		"error_code": lerr.Kind.String(),
	})
}
