package controllers

import (
	"errors"
	"net/http"
	"time"

	"attendpro-backend/ledger"
	"attendpro-backend/utils"

	"github.com/gin-gonic/gin"
)

// scopeFromContext builds the tenant scope from the claims the auth middleware
// stored on the request. A request that reaches a handler without them is
// treated as unauthorized, never given a fallback partition.
func scopeFromContext(c *gin.Context) (ledger.Scope, error) {
	userID, _ := c.Get("userId")
	tenantID, _ := c.Get("tenantId")

	uid, _ := userID.(string)
	tid, _ := tenantID.(string)
	return ledger.ResolveScope(uid, tid)
}

// respondLedgerError maps the ledger error taxonomy onto HTTP statuses.
func respondLedgerError(c *gin.Context, err error) {
	var validation *ledger.ValidationError
	switch {
	case errors.Is(err, ledger.ErrUnauthorized):
		utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
	case errors.As(err, &validation):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": validation.Message,
			"field": validation.Field,
		})
	case errors.Is(err, ledger.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, ledger.ErrStoreUnavailable):
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Store unavailable")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal error")
	}
}

// parseDateRange reads ?start= and ?end= in YYYY-MM-DD form. The defaults
// mirror the history screen: first of the current month through today.
func parseDateRange(startParam, endParam string) (time.Time, time.Time, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := now

	if startParam != "" {
		t, err := time.ParseInLocation("2006-01-02", startParam, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid start date, expected YYYY-MM-DD")
		}
		start = t
	}
	if endParam != "" {
		t, err := time.ParseInLocation("2006-01-02", endParam, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid end date, expected YYYY-MM-DD")
		}
		end = t
	}
	return start, end, nil
}
